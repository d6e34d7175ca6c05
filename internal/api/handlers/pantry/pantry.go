// Package pantry exposes pantry CRUD plus the explicit quantity
// adjustment used after shopping or cooking.
package pantry

import (
	"errors"
	"net/http"

	"smartcart/internal/api/middleware"
	"smartcart/internal/core/pantry"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves pantry requests.
type Handler struct {
	pantry *pantry.Service
}

// NewHandler creates a pantry handler.
func NewHandler(pantrySvc *pantry.Service) *Handler {
	return &Handler{pantry: pantrySvc}
}

// HandleList returns the user's pantry.
func (h *Handler) HandleList(c *gin.Context) {
	items, err := h.pantry.All(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []pantry.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// HandleAlerts returns items at or past their expiry window.
func (h *Handler) HandleAlerts(c *gin.Context) {
	alerts, err := h.pantry.ExpiringSoon(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// HandleCreate adds an item.
func (h *Handler) HandleCreate(c *gin.Context) {
	var req pantry.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "name and a non-negative quantity are required",
		})
		return
	}

	item, err := h.pantry.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// HandleUpdate replaces an item's fields.
func (h *Handler) HandleUpdate(c *gin.Context) {
	var req pantry.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "name and a non-negative quantity are required",
		})
		return
	}

	item, err := h.pantry.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("productId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleDelete removes an item.
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.pantry.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleAdjust applies a signed quantity delta, clamped at zero.
func (h *Handler) HandleAdjust(c *gin.Context) {
	var req pantry.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "delta is required and must be non-zero",
		})
		return
	}

	item, err := h.pantry.Adjust(c.Request.Context(), middleware.CurrentUser(c), c.Param("productId"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
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
	common.LogError("pantry request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "internal server error",
	})
}
