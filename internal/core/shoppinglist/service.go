package shoppinglist

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartcart/internal/core/optimizer"
	"smartcart/internal/pkg/common"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service records optimization results and serves history reads.
type Service struct {
	repo *Repository
}

// NewService creates a shopping list service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// SaveResult persists one optimization result as a history entry and
// returns it. Failures are logged, not fatal: the caller already has
// the plan in hand.
func (s *Service) SaveResult(ctx context.Context, userID string, req *optimizer.Request, resp *optimizer.Response) (*List, error) {
	totalServings := 0
	for _, servings := range req.MealServings {
		totalServings += servings
	}

	items := make([]SavedItem, 0, len(resp.List))
	for _, item := range resp.List {
		items = append(items, SavedItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Unit:      item.Unit,
			StoreID:   item.StoreID,
			Price:     item.Price,
		})
	}

	total := decimal.Zero
	for _, cost := range resp.CostByStore {
		total = total.Add(decimal.NewFromFloat(cost))
	}
	totalCost, _ := total.Round(2).Float64()

	list := &List{
		ListID:        common.GenerateUUID(),
		CreatedAt:     time.Now().UnixMilli(),
		Meals:         req.MealServings,
		TotalServings: totalServings,
		UsesPantry:    resp.UsesPantry,
		Items:         items,
		CostByStore:   resp.CostByStore,
		TotalCost:     totalCost,
	}

	if err := s.repo.Save(ctx, userID, list); err != nil {
		common.LogWarn("failed to save shopping list history",
			zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// History returns the user's saved lists, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]List, error) {
	lists, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []List{}
	}
	return lists, nil
}

// Get returns one saved list.
func (s *Service) Get(ctx context.Context, userID, listID string) (*List, error) {
	list, err := s.repo.Find(ctx, userID, listID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

// Delete removes one saved list.
func (s *Service) Delete(ctx context.Context, userID, listID string) error {
	if err := s.repo.Delete(ctx, userID, listID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrListNotFound
		}
		return err
	}
	return nil
}
