package deals

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"smartcart/internal/infrastructure/config"
	"smartcart/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Repository stores deals in redis: one hash per date
// (deals:<YYYYMMDD>), fields keyed <storeId>#<productId>. A store's
// daily import replaces its whole partition so stale promotions never
// linger next to fresh ones.
type Repository struct {
	client *redis.Client
}

// NewRepository connects to redis and verifies the connection.
func NewRepository(cfg *config.RedisConfig) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Repository{client: client}, nil
}

// Close releases the redis connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

// Ping reports whether the deal index is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func dateKey(date string) string {
	return "deals:" + date
}

func fieldKey(storeID, productID string) string {
	return storeID + "#" + productID
}

// ReplaceStoreDate deletes a store's existing deals for the date and
// writes the new set in one pipeline.
func (r *Repository) ReplaceStoreDate(ctx context.Context, storeID, date string, deals []Deal) error {
	key := dateKey(date)

	fields, err := r.client.HKeys(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to list deal fields: %w", err)
	}

	pipe := r.client.TxPipeline()
	prefix := storeID + "#"
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			pipe.HDel(ctx, key, f)
		}
	}
	for _, d := range deals {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal deal %s: %w", d.ProductID, err)
		}
		pipe.HSet(ctx, key, fieldKey(d.StoreID, d.ProductID), data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write deals: %w", err)
	}
	return nil
}

// FindByDate returns every deal stored for a date.
func (r *Repository) FindByDate(ctx context.Context, date string) ([]Deal, error) {
	raw, err := r.client.HGetAll(ctx, dateKey(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read deals for %s: %w", date, err)
	}
	return decodeAll(raw)
}

// FindByStoreAndDate returns one store's deals for a date.
func (r *Repository) FindByStoreAndDate(ctx context.Context, storeID, date string) ([]Deal, error) {
	all, err := r.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	var out []Deal
	for _, d := range all {
		if d.StoreID == storeID {
			out = append(out, d)
		}
	}
	return out, nil
}

// Dates returns every partition date present, newest first.
func (r *Repository) Dates(ctx context.Context) ([]string, error) {
	keys, err := r.client.Keys(ctx, "deals:*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan deal dates: %w", err)
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, "deals:"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

func decodeAll(raw map[string]string) ([]Deal, error) {
	deals := make([]Deal, 0, len(raw))
	for field, data := range raw {
		var d Deal
		if err := common.ParseJSON(data, &d); err != nil {
			return nil, fmt.Errorf("corrupt deal record %s: %w", field, err)
		}
		deals = append(deals, d)
	}
	// hash iteration order is random; sort for reproducible snapshots
	sort.Slice(deals, func(i, j int) bool {
		if deals[i].StoreID != deals[j].StoreID {
			return deals[i].StoreID < deals[j].StoreID
		}
		return deals[i].ProductID < deals[j].ProductID
	})
	return deals, nil
}
