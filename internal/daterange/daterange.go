package daterange

import (
	"time"

	"restro-analytics-service/internal/models"
)

// Presets returns the canonical named windows anchored to now, ordered the
// way the back office lists them. Every window spans whole days: start at
// 00:00:00.000, end at 23:59:59.999.
func Presets(now time.Time) []models.DateRange {
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	return []models.DateRange{
		{Label: "Yesterday", Start: yesterday, End: endOfDay(yesterday)},
		{Label: "This Week", Start: startOfWeek(now), End: endOfDay(today)},
		{Label: "Last 7 Days", Start: today.AddDate(0, 0, -6), End: endOfDay(today)},
		{Label: "This Month", Start: startOfMonth(now), End: endOfDay(today)},
		{Label: "Last 30 Days", Start: today.AddDate(0, 0, -29), End: endOfDay(today)},
		{Label: "Last 3 Months", Start: startOfDay(now.AddDate(0, -3, 0)), End: endOfDay(today)},
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Weeks start on Monday.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Previous derives the immediately preceding window of identical length,
// used for period-over-period comparison.
func Previous(r models.DateRange) models.DateRange {
	span := r.End.Sub(r.Start)
	return models.DateRange{
		Label: "Previous Period",
		Start: r.Start.Add(-span),
		End:   r.Start,
	}
}
