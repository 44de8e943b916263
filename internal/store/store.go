package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"restro-analytics-service/internal/models"

	"go.uber.org/zap"
)

// FetchBatchSize caps how many orders a single report request will pull.
const FetchBatchSize = 1000

// OrderSource is the raw retrieval primitive. Each method trades
// server-side work for broader compatibility: the ordered form needs a
// composite (restaurant, created_at) index, the unordered form only the
// restaurant filter, and the full scan needs nothing beyond the restaurant
// key.
type OrderSource interface {
	FetchRangeOrdered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error)
	FetchRangeUnordered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error)
	FetchByRestaurant(ctx context.Context, restaurantID string) ([]models.Order, error)
}

type CreditSource interface {
	FetchAll(ctx context.Context, restaurantID string) ([]models.CreditTransaction, error)
}

// Degrading wraps an OrderSource with the three-tier fallback. Tier
// selection is invisible to callers: the result is identical regardless of
// which layer performed the filtering, only the split between server-side
// and client-side work changes. Tiers are attempted sequentially, never
// raced, so behavior stays deterministic and no duplicate reads are issued.
type Degrading struct {
	source OrderSource
	logger *zap.Logger
}

func NewDegrading(source OrderSource, logger *zap.Logger) *Degrading {
	return &Degrading{source: source, logger: logger}
}

// FetchInRange returns orders for the restaurant within [start, end],
// newest first. It errors only when every tier fails.
func (d *Degrading) FetchInRange(ctx context.Context, restaurantID string, start, end time.Time) ([]models.Order, error) {
	orders, err := d.source.FetchRangeOrdered(ctx, restaurantID, start, end, FetchBatchSize)
	if err == nil {
		return orders, nil
	}
	d.logger.Warn("ordered range query failed, falling back to unordered",
		zap.String("restaurantId", restaurantID), zap.Error(err))

	orders, err = d.source.FetchRangeUnordered(ctx, restaurantID, start, end, FetchBatchSize)
	if err == nil {
		sortNewestFirst(orders)
		return orders, nil
	}
	d.logger.Warn("unordered range query failed, falling back to full fetch",
		zap.String("restaurantId", restaurantID), zap.Error(err))

	orders, err = d.source.FetchByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fetch orders for restaurant %s: %w", restaurantID, err)
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		filtered = append(filtered, order)
	}
	sortNewestFirst(filtered)
	if len(filtered) > FetchBatchSize {
		filtered = filtered[:FetchBatchSize]
	}
	return filtered, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
