package analytics

import (
	"strings"
	"testing"

	"restro-analytics-service/internal/models"
)

func TestSynthesizeTrend(t *testing.T) {
	cases := []struct {
		name     string
		growth   *models.GrowthMetrics
		expected string
	}{
		{name: "no growth section", growth: nil, expected: TrendStable},
		{name: "within threshold", growth: &models.GrowthMetrics{RevenueGrowth: 4.9}, expected: TrendStable},
		{name: "improving", growth: &models.GrowthMetrics{RevenueGrowth: 12}, expected: TrendImproving},
		{name: "declining", growth: &models.GrowthMetrics{RevenueGrowth: -8}, expected: TrendDeclining},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := models.SalesAnalytics{Growth: tc.growth}
			insights := Synthesize(result)
			if insights.ProfitabilityTrend != tc.expected {
				t.Fatalf("expected trend %q, got %q", tc.expected, insights.ProfitabilityTrend)
			}
		})
	}
}

func TestSynthesizeRecommendations(t *testing.T) {
	result := models.SalesAnalytics{
		Growth:            &models.GrowthMetrics{RevenueGrowth: -10},
		TableUtilization:  40,
		DistinctCustomers: 20,
		RepeatCustomerPct: 10,
		Credit:            &models.CreditSummary{CollectionRate: 50},
	}

	insights := Synthesize(result)

	if insights.ProfitabilityTrend != TrendDeclining {
		t.Fatalf("expected declining trend, got %s", insights.ProfitabilityTrend)
	}
	if len(insights.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d: %v",
			len(insights.Recommendations), insights.Recommendations)
	}

	joined := strings.Join(insights.Recommendations, "\n")
	for _, fragment := range []string{"retention", "utilization", "loyalty", "collection"} {
		if !strings.Contains(strings.ToLower(joined), fragment) {
			t.Fatalf("missing %q recommendation in %v", fragment, insights.Recommendations)
		}
	}
}

func TestSynthesizeQuietWhenHealthy(t *testing.T) {
	result := models.SalesAnalytics{
		Growth:            &models.GrowthMetrics{RevenueGrowth: 8},
		TableUtilization:  85,
		DistinctCustomers: 40,
		RepeatCustomerPct: 55,
		Credit:            &models.CreditSummary{CollectionRate: 95},
	}

	insights := Synthesize(result)

	if insights.ProfitabilityTrend != TrendImproving {
		t.Fatalf("expected improving trend, got %s", insights.ProfitabilityTrend)
	}
	if len(insights.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", insights.Recommendations)
	}
}
