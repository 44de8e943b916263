package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"restro-analytics-service/internal/config"

	"go.uber.org/zap"
)

func testHandler() *Handler {
	return &Handler{
		Logger: zap.NewNop(),
		Config: config.Config{ReportCacheTTL: 5 * time.Minute},
	}
}

func TestResolveRangeExplicitDates(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/api/restaurant/analytics/sales?startDate=2026-08-01&endDate=2026-08-07", nil)

	rng, err := h.resolveRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Start.Format("2006-01-02") != "2026-08-01" {
		t.Fatalf("unexpected start: %s", rng.Start)
	}
	if rng.End.Format("2006-01-02") != "2026-08-07" {
		t.Fatalf("unexpected end: %s", rng.End)
	}
	// Date-only bounds cover whole days, like the presets do.
	if rng.Start.Hour() != 0 || rng.Start.Minute() != 0 {
		t.Fatalf("start must be midnight: %s", rng.Start)
	}
	if rng.End.Hour() != 23 || rng.End.Minute() != 59 || rng.End.Second() != 59 {
		t.Fatalf("end must cover the whole end day: %s", rng.End)
	}
	if rng.Label != "Custom Range" {
		t.Fatalf("unexpected label: %s", rng.Label)
	}
}

func TestResolveRangeSingleDay(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/sales?startDate=2026-08-01&endDate=2026-08-01", nil)

	rng, err := h.resolveRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rng.Start.Before(rng.End) {
		t.Fatalf("single-day window collapsed: %s -> %s", rng.Start, rng.End)
	}
	if rng.End.Sub(rng.Start) < 23*time.Hour {
		t.Fatalf("single-day window must span the business day, got %s", rng.End.Sub(rng.Start))
	}
	// An order placed that afternoon falls inside the window.
	noon := time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
	if !rng.Contains(noon) {
		t.Fatalf("window %s -> %s excludes %s", rng.Start, rng.End, noon)
	}
}

func TestResolveRangeRFC3339(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET",
		"/sales?startDate=2026-08-01T00:00:00Z&endDate=2026-08-07T23:59:59Z&label=First+Week", nil)

	rng, err := h.resolveRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Label != "First Week" {
		t.Fatalf("unexpected label: %s", rng.Label)
	}
	// Explicit timestamps are taken as given, not expanded to day bounds.
	if rng.End.Hour() != 23 || rng.End.Minute() != 59 || rng.End.Second() != 59 {
		t.Fatalf("explicit end timestamp not preserved: %s", rng.End)
	}
	if rng.End.Nanosecond() != 0 {
		t.Fatalf("explicit end timestamp not preserved: %s", rng.End)
	}
}

func TestResolveRangePreset(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/sales?preset=Last+7+Days", nil)

	rng, err := h.resolveRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Label != "Last 7 Days" {
		t.Fatalf("unexpected label: %s", rng.Label)
	}
	if !rng.Start.Before(rng.End) {
		t.Fatalf("inverted preset window: %s to %s", rng.Start, rng.End)
	}
}

func TestResolveRangeErrors(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{name: "missing dates", url: "/sales"},
		{name: "bad start", url: "/sales?startDate=nope&endDate=2026-08-07"},
		{name: "inverted", url: "/sales?startDate=2026-08-07&endDate=2026-08-01"},
		{name: "unknown preset", url: "/sales?preset=Fortnight"},
	}

	h := testHandler()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			if _, err := h.resolveRange(r); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseReportOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/report.pdf", nil)
	opts := parseReportOptions(r)

	if !opts.IncludeMenuAnalysis || !opts.IncludeCreditAnalysis || !opts.IncludeOrderDetails {
		t.Fatalf("expected all sections by default, got %+v", opts)
	}
}

func TestParseReportOptionsExplicitSections(t *testing.T) {
	r := httptest.NewRequest("GET", "/report.pdf?sections=menu,credit&title=Monthly&notes=hello", nil)
	opts := parseReportOptions(r)

	if !opts.IncludeMenuAnalysis || !opts.IncludeCreditAnalysis {
		t.Fatalf("requested sections missing: %+v", opts)
	}
	if opts.IncludeStaffAnalysis || opts.IncludeOrderDetails || opts.IncludeTaxBreakdown {
		t.Fatalf("unrequested sections enabled: %+v", opts)
	}
	if opts.ReportTitle != "Monthly" || opts.AdditionalNotes != "hello" {
		t.Fatalf("title or notes not carried: %+v", opts)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	key := cacheKey("sales_analytics", "rest-1", "a", "b")
	if _, ok := getCached(key); ok {
		t.Fatal("unexpected cache hit")
	}

	setCached(key, 42, time.Minute)
	value, ok := getCached(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if value.(int) != 42 {
		t.Fatalf("unexpected cached value: %v", value)
	}
}

func TestCacheExpiry(t *testing.T) {
	key := cacheKey("sales_analytics", "rest-2", "x")
	setCached(key, "stale", -time.Second)
	if _, ok := getCached(key); ok {
		t.Fatal("expired entry must not be served")
	}
}
