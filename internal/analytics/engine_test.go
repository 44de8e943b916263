package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"restro-analytics-service/internal/models"
	"restro-analytics-service/internal/store"

	"go.uber.org/zap"
)

type stubOrderSource struct {
	orders []models.Order
	err    error
}

func (s *stubOrderSource) FetchRangeOrdered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (s *stubOrderSource) FetchRangeUnordered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error) {
	return s.FetchRangeOrdered(ctx, restaurantID, start, end, limit)
}

func (s *stubOrderSource) FetchByRestaurant(ctx context.Context, restaurantID string) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

type stubCreditSource struct {
	credits []models.CreditTransaction
	err     error
}

func (s *stubCreditSource) FetchAll(ctx context.Context, restaurantID string) ([]models.CreditTransaction, error) {
	return s.credits, s.err
}

func newTestEngine(orders *stubOrderSource, credits *stubCreditSource, synthetic bool) *Engine {
	logger := zap.NewNop()
	return NewEngine(store.NewDegrading(orders, logger), credits, logger, synthetic)
}

func TestEngineGenerateRealData(t *testing.T) {
	rng := testRange()
	at := rng.Start.Add(36 * time.Hour)
	source := &stubOrderSource{orders: []models.Order{
		paidOrder("o1", 100, "cash", at,
			models.OrderItem{MenuItemID: "m1", Name: "Garlic Naan", Quantity: 2, Total: 100}),
		paidOrder("o2", 200, "upi", at.Add(time.Hour),
			models.OrderItem{MenuItemID: "m2", Name: "Chicken Biryani", Quantity: 1, Total: 200}),
		// In the previous window, feeds growth only.
		paidOrder("prev", 150, "cash", rng.Start.Add(-24*time.Hour),
			models.OrderItem{MenuItemID: "m1", Name: "Garlic Naan", Quantity: 3, Total: 150}),
	}}
	credits := &stubCreditSource{credits: []models.CreditTransaction{
		{ID: "cr1", TotalAmount: 50, CreatedAt: at},
	}}

	engine := newTestEngine(source, credits, true)
	result, err := engine.Generate(context.Background(), "rest-1", rng, LookupSet{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DataSource != models.DataSourceReal {
		t.Fatalf("expected real data source, got %s", result.DataSource)
	}
	if result.TotalRevenue != 300 {
		t.Fatalf("expected revenue 300, got %v", result.TotalRevenue)
	}
	if result.Growth == nil {
		t.Fatal("expected growth section")
	}
	if result.Growth.RevenueGrowth != 100 {
		t.Fatalf("expected 100%% revenue growth, got %v", result.Growth.RevenueGrowth)
	}
	if result.Credit == nil {
		t.Fatal("expected credit section")
	}
	if result.Credit.PendingAmount != 50 {
		t.Fatalf("expected pending credit 50, got %v", result.Credit.PendingAmount)
	}
	if result.Insights == nil {
		t.Fatal("expected insights section")
	}
}

func TestEngineSyntheticFallback(t *testing.T) {
	engine := newTestEngine(&stubOrderSource{}, &stubCreditSource{}, true)
	result, err := engine.Generate(context.Background(), "rest-1", testRange(), LookupSet{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DataSource != models.DataSourceSynthesized {
		t.Fatalf("expected synthesized data source, got %s", result.DataSource)
	}
	if result.TotalOrders == 0 {
		t.Fatal("expected synthesized orders in the result")
	}
	for _, row := range result.MenuItemSales {
		if row.Category == labelUncategorized {
			t.Fatalf("synthetic item %s not categorized", row.Name)
		}
	}
}

func TestEngineSyntheticFallbackDisabled(t *testing.T) {
	engine := newTestEngine(&stubOrderSource{}, &stubCreditSource{}, false)
	result, err := engine.Generate(context.Background(), "rest-1", testRange(), LookupSet{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DataSource != models.DataSourceReal {
		t.Fatalf("expected real data source, got %s", result.DataSource)
	}
	if result.TotalOrders != 0 {
		t.Fatalf("expected empty result, got %d orders", result.TotalOrders)
	}
}

func TestEngineDegradesOptionalSections(t *testing.T) {
	rng := testRange()
	at := rng.Start.Add(time.Hour)
	source := &stubOrderSource{orders: []models.Order{
		paidOrder("o1", 100, "cash", at,
			models.OrderItem{MenuItemID: "m1", Name: "Garlic Naan", Quantity: 2, Total: 100}),
	}}
	credits := &stubCreditSource{err: errors.New("ledger unavailable")}

	engine := newTestEngine(source, credits, false)
	result, err := engine.Generate(context.Background(), "rest-1", rng, LookupSet{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Credit != nil {
		t.Fatal("expected credit section omitted on ledger failure")
	}
	if result.Insights == nil {
		t.Fatal("insights must survive a missing credit section")
	}
	if result.TotalRevenue != 100 {
		t.Fatalf("expected revenue 100, got %v", result.TotalRevenue)
	}
}

func TestEngineRejectsInvertedRange(t *testing.T) {
	rng := testRange()
	rng.Start, rng.End = rng.End, rng.Start

	engine := newTestEngine(&stubOrderSource{}, &stubCreditSource{}, true)
	if _, err := engine.Generate(context.Background(), "rest-1", rng, LookupSet{}); err == nil {
		t.Fatal("expected error for inverted range")
	}
}
