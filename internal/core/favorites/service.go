package favorites

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

// Service owns favorite reads and writes.
type Service struct {
	repo *Repository
}

// NewService creates a favorites service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create saves a named meal selection with a generated id.
func (s *Service) Create(ctx context.Context, userID string, req *CreateRequest) (*Favorite, error) {
	now := time.Now().UnixMilli()
	fav := &Favorite{
		FavoriteID:   common.GenerateUUID(),
		Name:         req.Name,
		MealServings: req.MealServings,
		CreatedAt:    now,
		LastUsed:     now,
	}
	if err := s.repo.Save(ctx, userID, fav); err != nil {
		return nil, err
	}
	common.LogInfo("favorite created",
		zap.String("user_id", userID),
		zap.String("name", fav.Name),
		zap.Int("meals", len(fav.MealServings)),
	)
	return fav, nil
}

// All returns the user's favorites, newest first.
func (s *Service) All(ctx context.Context, userID string) ([]Favorite, error) {
	favs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []Favorite{}
	}
	return favs, nil
}

// Get returns one favorite.
func (s *Service) Get(ctx context.Context, userID, favoriteID string) (*Favorite, error) {
	fav, err := s.repo.Find(ctx, userID, favoriteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrFavoriteNotFound
		}
		return nil, err
	}
	return fav, nil
}

// MarkUsed stamps a favorite as just used and returns it. Called when
// the client reruns the saved selection.
func (s *Service) MarkUsed(ctx context.Context, userID, favoriteID string) (*Favorite, error) {
	fav, err := s.Get(ctx, userID, favoriteID)
	if err != nil {
		return nil, err
	}
	fav.LastUsed = time.Now().UnixMilli()
	if err := s.repo.Save(ctx, userID, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// Delete removes one favorite.
func (s *Service) Delete(ctx context.Context, userID, favoriteID string) error {
	if err := s.repo.Delete(ctx, userID, favoriteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrFavoriteNotFound
		}
		return err
	}
	return nil
}
