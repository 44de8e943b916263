package analytics

import (
	"restro-analytics-service/internal/models"
)

// Growth computes relative deltas between the current window and the
// immediately preceding window of equal length. Zero baselines yield zero
// growth rather than a divide-by-zero artifact.
func Growth(current models.SalesAnalytics, previous []models.Order) *models.GrowthMetrics {
	prevRevenue := 0.0
	prevOrders := int64(0)
	prevCustomers := make(map[string]struct{})
	for _, order := range previous {
		prevRevenue += order.Total
		prevOrders++
		if order.CustomerID != "" {
			prevCustomers[order.CustomerID] = struct{}{}
		}
	}

	return &models.GrowthMetrics{
		RevenueGrowth:   relativeDelta(current.TotalRevenue, prevRevenue),
		OrderGrowth:     relativeDelta(float64(current.TotalOrders), float64(prevOrders)),
		CustomerGrowth:  relativeDelta(float64(current.DistinctCustomers), float64(len(prevCustomers))),
		PreviousRevenue: prevRevenue,
		PreviousOrders:  prevOrders,
	}
}

func relativeDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
