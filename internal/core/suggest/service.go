package suggest

import (
	"context"
	"time"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/pantry"
	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

// Service resolves the collaborator snapshots and runs Rank.
type Service struct {
	catalog *catalog.Catalog
	pantry  *pantry.Service
	deals   *deals.Service
}

// NewService creates a suggestion service.
func NewService(cat *catalog.Catalog, pantrySvc *pantry.Service, dealSvc *deals.Service) *Service {
	return &Service{
		catalog: cat,
		pantry:  pantrySvc,
		deals:   dealSvc,
	}
}

// Suggest ranks meal ideas for a user. Collaborator failures fail the
// call, same as optimize: suggestions built on a half-read pantry
// would mislead.
func (s *Service) Suggest(ctx context.Context, userID string) ([]Suggestion, error) {
	pantryItems, err := s.pantry.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dealSet, _, err := s.deals.Snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	suggestions := Rank(s.catalog, pantryItems, dealSet, now, defaultLimit)
	common.LogInfo("meal suggestions generated",
		zap.String("user_id", userID),
		zap.Int("count", len(suggestions)),
	)
	return suggestions, nil
}
