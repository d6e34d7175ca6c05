package pantry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

// Service owns pantry reads and writes.
type Service struct {
	repo *Repository
}

// NewService creates a pantry service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new item with a generated product id.
func (s *Service) Create(ctx context.Context, userID string, req *CreateItemRequest) (*Item, error) {
	item := &Item{
		ProductID:   common.GenerateUUID(),
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        unitOrDefault(req.Unit),
		EstExpiry:   req.EstExpiry,
		Source:      "manual",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Save(ctx, userID, item); err != nil {
		return nil, common.ErrPantrySourceUnavailable
	}
	common.LogInfo("pantry item created",
		zap.String("user_id", userID),
		zap.String("name", item.Name),
	)
	return item, nil
}

// All returns the user's pantry items.
func (s *Service) All(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrPantrySourceUnavailable
	}
	return items, nil
}

// Snapshot is the read the optimizer takes: the full pantry, failing
// closed when the store is unreachable.
func (s *Service) Snapshot(ctx context.Context, userID string) ([]Item, error) {
	return s.All(ctx, userID)
}

// ExpiringSoon lists items expiring within the alert window, expired
// items included. Items without a readable estExpiry never alert.
func (s *Service) ExpiringSoon(ctx context.Context, userID string) ([]Alert, error) {
	items, err := s.All(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	alerts := []Alert{}
	for _, item := range items {
		if alert, ok := expiryAlert(item, today); ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts, nil
}

// Update replaces an existing item's fields.
func (s *Service) Update(ctx context.Context, userID, productID string, req *CreateItemRequest) (*Item, error) {
	existing, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrPantryItemNotFound
		}
		return nil, common.ErrPantrySourceUnavailable
	}

	existing.Name = req.Name
	existing.Quantity = req.Quantity
	existing.Unit = unitOrDefault(req.Unit)
	existing.EstExpiry = req.EstExpiry
	existing.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Save(ctx, userID, existing); err != nil {
		return nil, common.ErrPantrySourceUnavailable
	}
	return existing, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, userID, productID string) error {
	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrPantryItemNotFound
		}
		return common.ErrPantrySourceUnavailable
	}
	return nil
}

// Adjust changes an item's quantity by delta, clamped at zero. This is
// the explicit depletion operation: building a shopping list never
// touches pantry quantities.
func (s *Service) Adjust(ctx context.Context, userID, productID string, delta float64) (*Item, error) {
	existing, err := s.repo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrPantryItemNotFound
		}
		return nil, common.ErrPantrySourceUnavailable
	}

	existing.Quantity += delta
	if existing.Quantity < 0 {
		existing.Quantity = 0
	}
	existing.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Save(ctx, userID, existing); err != nil {
		return nil, common.ErrPantrySourceUnavailable
	}
	common.LogDebug("pantry quantity adjusted",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Float64("delta", delta),
		zap.Float64("quantity", existing.Quantity),
	)
	return existing, nil
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return "unit"
	}
	return unit
}
