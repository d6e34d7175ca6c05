// Package optimize exposes the shopping list optimizer and the meal
// catalog it draws from.
package optimize

import (
	"errors"
	"net/http"

	"smartcart/internal/api/middleware"
	"smartcart/internal/core/optimizer"
	"smartcart/internal/core/shoppinglist"
	"smartcart/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves optimize and catalog requests.
type Handler struct {
	optimizer *optimizer.Service
	lists     *shoppinglist.Service
}

// NewHandler creates an optimize handler.
func NewHandler(optimizerSvc *optimizer.Service, listSvc *shoppinglist.Service) *Handler {
	return &Handler{
		optimizer: optimizerSvc,
		lists:     listSvc,
	}
}

// HandleOptimize builds a purchase plan for the selected meals and
// records it in the user's history.
func (h *Handler) HandleOptimize(c *gin.Context) {
	var req optimizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "mealServings is required and must select at least one meal",
		})
		return
	}

	userID := middleware.CurrentUser(c)
	resp, err := h.optimizer.Optimize(c.Request.Context(), userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// history persistence never blocks the plan the user asked for
	if _, err := h.lists.SaveResult(c.Request.Context(), userID, &req, resp); err != nil {
		common.LogWarn("optimize result not recorded", zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}

// HandleMeals lists meal ids, optionally filtered by category.
func (h *Handler) HandleMeals(c *gin.Context) {
	cat := h.optimizer.Catalog()

	category := c.Query("category")
	mealIDs := cat.AllMealIDs()
	if category != "" {
		mealIDs = cat.MealsByCategory(category)
	}

	meals := make([]gin.H, 0, len(mealIDs))
	for _, id := range mealIDs {
		meals = append(meals, gin.H{
			"mealId":   id,
			"category": cat.Category(id),
		})
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// HandleCategories lists the active meal categories.
func (h *Handler) HandleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.optimizer.Catalog().Categories()})
}

// respondError maps optimizer errors onto the API error contract.
// Selection problems are the caller's fault; collaborator outages are
// 503 because a guessed list is worse than none.
func (h *Handler) respondError(c *gin.Context, err error) {
	var unknownMeal *optimizer.UnknownMealError
	var invalidServings *optimizer.InvalidServingsError
	var incompatibleUnits *optimizer.IncompatibleUnitsError
	var customErr *common.CustomError

	switch {
	case errors.As(err, &unknownMeal):
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeUnknownMeal,
			Message: unknownMeal.Error(),
		})
	case errors.As(err, &invalidServings):
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidServings,
			Message: invalidServings.Error(),
		})
	case errors.As(err, &incompatibleUnits):
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeIncompatibleUnits,
			Message: incompatibleUnits.Error(),
		})
	case errors.As(err, &customErr):
		c.JSON(customErr.Status, common.ErrorResponse{
			Code:    customErr.Code,
			Message: customErr.Message,
		})
	default:
		common.LogError("optimize failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "internal server error",
		})
	}
}
