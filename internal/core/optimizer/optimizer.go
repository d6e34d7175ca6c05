package optimizer

import (
	"context"
	"time"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/pantry"
	"smartcart/internal/infrastructure/config"
	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

// Optimize computes the purchase plan for one request against one
// snapshot. Pure and deterministic: identical inputs yield identical
// output.
func Optimize(req *Request, snap *Snapshot) (*Response, error) {
	reqs, err := aggregate(req, snap.Catalog)
	if err != nil {
		return nil, err
	}
	nr := net(reqs, snap.Pantry)
	items, stats := price(nr.shortfalls, snap, req.SingleStore)
	return assemble(items, nr, stats, snap), nil
}

// Service resolves the collaborator snapshots and runs Optimize.
type Service struct {
	catalog *catalog.Catalog
	pantry  *pantry.Service
	deals   *deals.Service
	cfg     *config.DealsConfig
}

// NewService creates an optimizer service.
func NewService(cat *catalog.Catalog, pantrySvc *pantry.Service, dealSvc *deals.Service, cfg *config.DealsConfig) *Service {
	return &Service{
		catalog: cat,
		pantry:  pantrySvc,
		deals:   dealSvc,
		cfg:     cfg,
	}
}

// Catalog exposes the meal index for listing endpoints.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Optimize snapshots the user's pantry and the deal index and builds
// the plan. Collaborator failures fail the call; a wrong list is
// worse than no list.
func (s *Service) Optimize(ctx context.Context, userID string, req *Request) (*Response, error) {
	pantryItems, err := s.pantry.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dealSet, dealDate, err := s.deals.Snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Catalog:      s.catalog,
		Pantry:       pantryItems,
		Deals:        dealSet,
		Today:        now,
		DealDate:     dealDate,
		DefaultPrice: s.cfg.DefaultPrice,
		DefaultStore: s.cfg.DefaultStore,
	}

	resp, err := Optimize(req, snap)
	if err != nil {
		return nil, err
	}

	common.LogInfo("shopping list optimized",
		zap.String("user_id", userID),
		zap.Int("meals", len(req.MealServings)),
		zap.Int("items", len(resp.List)),
		zap.Int("pantry_covered", len(resp.UsesPantry)),
		zap.Bool("single_store", req.SingleStore),
	)
	return resp, nil
}
