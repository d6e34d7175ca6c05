// Package favorites exposes saved meal selections.
package favorites

import (
	"errors"
	"net/http"

	"smartcart/internal/api/middleware"
	"smartcart/internal/core/favorites"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves favorite requests.
type Handler struct {
	favorites *favorites.Service
}

// NewHandler creates a favorites handler.
func NewHandler(favSvc *favorites.Service) *Handler {
	return &Handler{favorites: favSvc}
}

// HandleList returns the user's favorites, newest first.
func (h *Handler) HandleList(c *gin.Context) {
	favs, err := h.favorites.All(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// HandleCreate saves a named meal selection.
func (h *Handler) HandleCreate(c *gin.Context) {
	var req favorites.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "name and a non-empty mealServings selection are required",
		})
		return
	}

	fav, err := h.favorites.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// HandleGet returns one favorite.
func (h *Handler) HandleGet(c *gin.Context) {
	fav, err := h.favorites.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("favoriteId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// HandleUse stamps a favorite as just used and returns it.
func (h *Handler) HandleUse(c *gin.Context) {
	fav, err := h.favorites.MarkUsed(c.Request.Context(), middleware.CurrentUser(c), c.Param("favoriteId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// HandleDelete removes one favorite.
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.favorites.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("favoriteId")); err != nil {
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
	common.LogError("favorites request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "internal server error",
	})
}
