package daterange

import (
	"testing"
	"time"

	"restro-analytics-service/internal/models"
)

func findRange(t *testing.T, ranges []models.DateRange, label string) models.DateRange {
	t.Helper()
	for _, rng := range ranges {
		if rng.Label == label {
			return rng
		}
	}
	t.Fatalf("range %q not found", label)
	return models.DateRange{}
}

func TestPresets(t *testing.T) {
	// A Wednesday.
	now := time.Date(2026, 8, 19, 15, 30, 0, 0, time.UTC)
	ranges := Presets(now)

	if len(ranges) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(ranges))
	}

	yesterday := findRange(t, ranges, "Yesterday")
	if !yesterday.Start.Equal(time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected yesterday start: %s", yesterday.Start)
	}
	if yesterday.End.Day() != 18 || yesterday.End.Hour() != 23 || yesterday.End.Minute() != 59 {
		t.Fatalf("unexpected yesterday end: %s", yesterday.End)
	}

	week := findRange(t, ranges, "This Week")
	if week.Start.Weekday() != time.Monday {
		t.Fatalf("week must start on Monday, got %s", week.Start.Weekday())
	}
	if !week.Start.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start: %s", week.Start)
	}

	last7 := findRange(t, ranges, "Last 7 Days")
	if !last7.Start.Equal(time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last 7 days start: %s", last7.Start)
	}

	month := findRange(t, ranges, "This Month")
	if !month.Start.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month start: %s", month.Start)
	}

	last30 := findRange(t, ranges, "Last 30 Days")
	if !last30.Start.Equal(time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last 30 days start: %s", last30.Start)
	}

	quarter := findRange(t, ranges, "Last 3 Months")
	if !quarter.Start.Equal(time.Date(2026, 5, 19, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last 3 months start: %s", quarter.Start)
	}

	for _, rng := range ranges {
		if rng.Start.Hour() != 0 || rng.Start.Minute() != 0 || rng.Start.Second() != 0 {
			t.Fatalf("%s does not start at midnight: %s", rng.Label, rng.Start)
		}
		if rng.End.Hour() != 23 || rng.End.Minute() != 59 || rng.End.Second() != 59 {
			t.Fatalf("%s does not end at 23:59:59: %s", rng.Label, rng.End)
		}
		if rng.Start.After(rng.End) {
			t.Fatalf("%s is inverted", rng.Label)
		}
	}
}

func TestPresetsMondayWeekStart(t *testing.T) {
	// On a Monday, This Week starts the same day.
	monday := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	week := findRange(t, Presets(monday), "This Week")
	if !week.Start.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start on a Monday: %s", week.Start)
	}

	// On a Sunday, the week reaches back six days.
	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	week = findRange(t, Presets(sunday), "This Week")
	if !week.Start.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start on a Sunday: %s", week.Start)
	}
}

func TestPrevious(t *testing.T) {
	rng := models.DateRange{
		Label: "Last 7 Days",
		Start: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 19, 23, 59, 59, 0, time.UTC),
	}

	prev := Previous(rng)

	if !prev.End.Equal(rng.Start) {
		t.Fatalf("previous window must end where the current starts, got %s", prev.End)
	}
	if prev.Duration() != rng.Duration() {
		t.Fatalf("previous window length %s != current %s", prev.Duration(), rng.Duration())
	}
}
