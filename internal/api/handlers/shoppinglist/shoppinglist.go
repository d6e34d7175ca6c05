// Package shoppinglist exposes the saved shopping list history.
package shoppinglist

import (
	"errors"
	"net/http"

	"smartcart/internal/api/middleware"
	"smartcart/internal/core/shoppinglist"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves shopping list history requests.
type Handler struct {
	lists *shoppinglist.Service
}

// NewHandler creates a shopping list handler.
func NewHandler(listSvc *shoppinglist.Service) *Handler {
	return &Handler{lists: listSvc}
}

// HandleHistory returns the user's saved lists, newest first.
func (h *Handler) HandleHistory(c *gin.Context) {
	lists, err := h.lists.History(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

// HandleGet returns one saved list.
func (h *Handler) HandleGet(c *gin.Context) {
	list, err := h.lists.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("listId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// HandleDelete removes one saved list.
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.lists.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("listId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
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
	common.LogError("shopping list request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "internal server error",
	})
}
