package deals

import (
	"context"
	"fmt"
	"time"

	"smartcart/internal/infrastructure/config"
	"smartcart/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Importer pulls a JSON deal feed over HTTP and loads it through the
// deal service. A background loop re-imports once per configured
// interval, always under today's date so the optimizer prices against
// current data.
type Importer struct {
	service *Service
	cfg     *config.DealsConfig
	client  *resty.Client
}

// NewImporter creates a feed importer.
func NewImporter(service *Service, cfg *config.DealsConfig) *Importer {
	client := resty.New().
		SetTimeout(cfg.FeedTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(5 * time.Second)

	return &Importer{
		service: service,
		cfg:     cfg,
		client:  client,
	}
}

// ImportOnce fetches the feed and imports it for today.
func (i *Importer) ImportOnce(ctx context.Context) (int, error) {
	var feed ImportRequest
	resp, err := i.client.R().
		SetContext(ctx).
		SetResult(&feed).
		Get(i.cfg.FeedURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch deal feed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("deal feed returned status %d", resp.StatusCode())
	}

	today := FormatDate(time.Now())
	if feed.Date != today {
		common.LogInfo("deal feed dated differently, importing for today",
			zap.String("feed_date", feed.Date),
			zap.String("today", today),
		)
		feed.Date = today
	}

	return i.service.Import(ctx, &feed)
}

// Run imports immediately and then on every tick until ctx is
// cancelled. Intended to run in its own goroutine.
func (i *Importer) Run(ctx context.Context) {
	if !i.cfg.ImportEnabled {
		common.LogDebug("deal feed import disabled")
		return
	}

	if n, err := i.ImportOnce(ctx); err != nil {
		common.LogWarn("initial deal import failed", zap.Error(err))
	} else {
		common.LogInfo("initial deal import complete", zap.Int("deals", n))
	}

	ticker := time.NewTicker(i.cfg.ImportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := i.ImportOnce(ctx); err != nil {
				common.LogWarn("scheduled deal import failed", zap.Error(err))
			} else {
				common.LogInfo("scheduled deal import complete", zap.Int("deals", n))
			}
		}
	}
}
