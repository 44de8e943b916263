package analytics

import (
	"restro-analytics-service/internal/models"
)

// Trend labels.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

const (
	trendThresholdPct      = 5
	lowTableUtilizationPct = 60
	lowRepeatCustomerPct   = 30
	lowCollectionRatePct   = 80
)

// Synthesize derives qualitative signals from the computed numbers. It is
// a pure rule evaluator: no state, no randomness, deterministic given the
// aggregate.
func Synthesize(result models.SalesAnalytics) *models.Insights {
	insights := &models.Insights{
		ProfitabilityTrend: TrendStable,
		Recommendations:    make([]string, 0),
	}

	revenueGrowth := 0.0
	if result.Growth != nil {
		revenueGrowth = result.Growth.RevenueGrowth
	}

	switch {
	case revenueGrowth > trendThresholdPct:
		insights.ProfitabilityTrend = TrendImproving
	case revenueGrowth < -trendThresholdPct:
		insights.ProfitabilityTrend = TrendDeclining
	}

	if revenueGrowth < 0 {
		insights.Recommendations = append(insights.Recommendations,
			"Revenue is down versus the previous period. Focus on customer retention and win-back campaigns.")
	}
	if result.TableUtilization > 0 && result.TableUtilization < lowTableUtilizationPct {
		insights.Recommendations = append(insights.Recommendations,
			"Table utilization is below 60%. Review the floor layout and reservation policy.")
	}
	if result.DistinctCustomers > 0 && result.RepeatCustomerPct < lowRepeatCustomerPct {
		insights.Recommendations = append(insights.Recommendations,
			"Fewer than 30% of customers ordered more than once. Consider a loyalty program.")
	}
	if result.Credit != nil && result.Credit.CollectionRate < lowCollectionRatePct {
		insights.Recommendations = append(insights.Recommendations,
			"Credit collection rate is low. Follow up on outstanding customer credit.")
	}

	return insights
}
