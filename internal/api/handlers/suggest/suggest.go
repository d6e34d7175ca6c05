// Package suggest exposes ranked meal ideas built from the user's
// pantry and the current deals.
package suggest

import (
	"errors"
	"net/http"

	"smartcart/internal/api/middleware"
	"smartcart/internal/core/suggest"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves suggestion requests.
type Handler struct {
	suggest *suggest.Service
}

// NewHandler creates a suggestion handler.
func NewHandler(suggestSvc *suggest.Service) *Handler {
	return &Handler{suggest: suggestSvc}
}

// HandleSuggestions returns the top meal ideas for the user.
func (h *Handler) HandleSuggestions(c *gin.Context) {
	suggestions, err := h.suggest.Suggest(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
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
	common.LogError("suggestion request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "internal server error",
	})
}
