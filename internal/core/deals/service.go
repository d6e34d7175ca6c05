package deals

import (
	"context"
	"fmt"
	"time"

	"smartcart/internal/core/match"
	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

// Service validates and stores deal imports and serves price
// snapshots to the optimizer.
type Service struct {
	repo *Repository
}

// NewService creates a deal service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Import validates a feed payload and replaces the store/date
// partition. Items with malformed promoEnds keep their unit price but
// drop the promotion; missing product ids are derived from the
// product name. Returns the number of deals written.
func (s *Service) Import(ctx context.Context, req *ImportRequest) (int, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return 0, common.NewError(common.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid date %q, expected YYYYMMDD", req.Date), 400, err)
	}

	common.LogInfo("importing deals",
		zap.String("store", req.StoreName),
		zap.String("date", req.Date),
		zap.Int("items", len(req.Deals)),
	)

	deals := make([]Deal, 0, len(req.Deals))
	for _, item := range req.Deals {
		promoEnds := item.PromoEnds
		promoPrice := item.PromoPrice
		if promoEnds != "" {
			if _, err := time.Parse(promoLayout, promoEnds); err != nil {
				common.LogWarn("invalid promoEnds date, dropping promotion",
					zap.String("product", item.ProductName),
					zap.String("promoEnds", promoEnds),
				)
				promoEnds = ""
				promoPrice = nil
			}
		}

		productID := item.ProductID
		if productID == "" {
			productID = match.ProductKey(item.ProductName)
		}

		deals = append(deals, Deal{
			StoreID:     req.StoreID,
			StoreName:   req.StoreName,
			Date:        req.Date,
			ProductID:   productID,
			ProductName: item.ProductName,
			SizeText:    item.SizeText,
			UnitPrice:   item.UnitPrice,
			PromoPrice:  promoPrice,
			PromoEnds:   promoEnds,
			SourceURL:   req.SourceURL,
		})
	}

	if err := s.repo.ReplaceStoreDate(ctx, req.StoreID, req.Date, deals); err != nil {
		return 0, err
	}

	common.LogInfo("deals imported",
		zap.String("store", req.StoreName),
		zap.String("date", req.Date),
		zap.Int("count", len(deals)),
	)
	return len(deals), nil
}

// ByStoreAndDate returns one store's deals for a date.
func (s *Service) ByStoreAndDate(ctx context.Context, storeID, date string) ([]Deal, error) {
	return s.repo.FindByStoreAndDate(ctx, storeID, date)
}

// ByDate returns every deal for a date.
func (s *Service) ByDate(ctx context.Context, date string) ([]Deal, error) {
	return s.repo.FindByDate(ctx, date)
}

// Snapshot returns the deal set the optimizer should price against
// for the given day: today's partition when present, otherwise the
// most recent one. The second return value is the date actually used,
// so callers can disclose stale pricing. Fails closed when the index
// is unreachable.
func (s *Service) Snapshot(ctx context.Context, today time.Time) ([]Deal, string, error) {
	date := FormatDate(today)
	deals, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, "", common.ErrDealSourceUnavailable
	}
	if len(deals) > 0 {
		return deals, date, nil
	}

	dates, err := s.repo.Dates(ctx)
	if err != nil {
		return nil, "", common.ErrDealSourceUnavailable
	}
	for _, d := range dates {
		if d >= date {
			continue
		}
		deals, err = s.repo.FindByDate(ctx, d)
		if err != nil {
			return nil, "", common.ErrDealSourceUnavailable
		}
		if len(deals) > 0 {
			common.LogDebug("no deals for today, using most recent partition",
				zap.String("today", date),
				zap.String("used", d),
			)
			return deals, d, nil
		}
	}

	// empty index is not an error; the optimizer falls back to
	// default pricing and says so
	return nil, date, nil
}
