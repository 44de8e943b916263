package analytics

import (
	"context"
	"fmt"

	"restro-analytics-service/internal/daterange"
	"restro-analytics-service/internal/models"
	"restro-analytics-service/internal/store"

	"go.uber.org/zap"
)

// Engine computes a fresh SalesAnalytics per request. It holds no mutable
// state: each Generate call is a pure function of its inputs plus the data
// fetched for the call.
type Engine struct {
	Orders            *store.Degrading
	Credits           store.CreditSource
	Logger            *zap.Logger
	SyntheticFallback bool
}

func NewEngine(orders *store.Degrading, credits store.CreditSource, logger *zap.Logger, syntheticFallback bool) *Engine {
	return &Engine{
		Orders:            orders,
		Credits:           credits,
		Logger:            logger,
		SyntheticFallback: syntheticFallback,
	}
}

// Generate is the main entry point. It fetches the current window, the
// preceding window of equal length (concurrently, since the two reads are
// independent), and the credit ledger, then aggregates everything into one
// immutable result. On an empty window it synthesizes a demonstration
// dataset, flagged via DataSource, unless the fallback is disabled.
func (e *Engine) Generate(ctx context.Context, restaurantID string, rng models.DateRange, lookups LookupSet) (*models.SalesAnalytics, error) {
	if rng.Start.After(rng.End) {
		return nil, fmt.Errorf("invalid date range: start %s after end %s", rng.Start, rng.End)
	}

	previous := daterange.Previous(rng)

	type fetchResult struct {
		orders []models.Order
		err    error
	}
	prevCh := make(chan fetchResult, 1)
	go func() {
		orders, err := e.Orders.FetchInRange(ctx, restaurantID, previous.Start, previous.End)
		prevCh <- fetchResult{orders: orders, err: err}
	}()

	type creditResult struct {
		credits []models.CreditTransaction
		err     error
	}
	creditCh := make(chan creditResult, 1)
	go func() {
		credits, err := e.Credits.FetchAll(ctx, restaurantID)
		creditCh <- creditResult{credits: credits, err: err}
	}()

	current, err := e.Orders.FetchInRange(ctx, restaurantID, rng.Start, rng.End)
	prevRes := <-prevCh
	creditRes := <-creditCh
	if err != nil {
		return nil, err
	}

	eligible := FilterEligible(current)
	dataSource := models.DataSourceReal
	if len(eligible) == 0 && e.SyntheticFallback {
		var demoMenu map[string]models.MenuItemRef
		eligible, demoMenu = SynthesizeOrders(restaurantID, rng)
		lookups = lookups.withMenuItems(demoMenu)
		dataSource = models.DataSourceSynthesized
		e.Logger.Info("no orders in window, synthesizing demonstration dataset",
			zap.String("restaurantId", restaurantID), zap.String("range", rng.Label))
	}

	result := Aggregate(eligible, rng, lookups)
	result.DataSource = dataSource

	if prevRes.err != nil {
		// Growth is a comparison extra, not the report itself. Degrade
		// to an absent section instead of failing the request.
		e.Logger.Warn("previous window fetch failed, omitting growth",
			zap.String("restaurantId", restaurantID), zap.Error(prevRes.err))
	} else {
		result.Growth = Growth(result, FilterEligible(prevRes.orders))
	}

	if creditRes.err != nil {
		e.Logger.Warn("credit ledger fetch failed, omitting credit summary",
			zap.String("restaurantId", restaurantID), zap.Error(creditRes.err))
	} else {
		result.Credit = ReconcileCredit(creditRes.credits, rng, result.TotalRevenue)
	}

	result.Insights = Synthesize(result)
	return &result, nil
}

func (l LookupSet) withMenuItems(extra map[string]models.MenuItemRef) LookupSet {
	merged := make(map[string]models.MenuItemRef, len(l.MenuItems)+len(extra))
	for id, ref := range l.MenuItems {
		merged[id] = ref
	}
	for id, ref := range extra {
		merged[id] = ref
	}
	l.MenuItems = merged
	return l
}
