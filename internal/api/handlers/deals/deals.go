// Package deals exposes deal feed import and deal browsing.
package deals

import (
	"errors"
	"net/http"
	"time"

	"smartcart/internal/core/deals"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves deal requests.
type Handler struct {
	deals *deals.Service
}

// NewHandler creates a deals handler.
func NewHandler(dealSvc *deals.Service) *Handler {
	return &Handler{deals: dealSvc}
}

// HandleImport loads one store/date feed payload into the index.
func (h *Handler) HandleImport(c *gin.Context) {
	var req deals.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "storeId, storeName, date and at least one deal are required",
		})
		return
	}

	count, err := h.deals.Import(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": count,
		"storeId":  req.StoreID,
		"date":     req.Date,
	})
}

// HandleList returns deals for a date, optionally scoped to one
// store. The date defaults to today.
func (h *Handler) HandleList(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = deals.FormatDate(time.Now())
	} else if !validDate(date) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "date must be YYYYMMDD",
		})
		return
	}

	var (
		result []deals.Deal
		err    error
	)
	if storeID := c.Query("storeId"); storeID != "" {
		result, err = h.deals.ByStoreAndDate(c.Request.Context(), storeID, date)
	} else {
		result, err = h.deals.ByDate(c.Request.Context(), date)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		result = []deals.Deal{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"deals": result,
	})
}

func validDate(date string) bool {
	_, err := time.Parse("20060102", date)
	return err == nil
}

func respondError(c *gin.Context, err error) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, common.ErrorResponse{
			Code:    customErr.Code,
			Message: customErr.Message,
		})
		return
	}
	common.LogError("deal request failed", zap.Error(err))
	c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
		Code:    common.ErrCodeDealSourceUnavailable,
		Message: "deal index unavailable",
	})
}
