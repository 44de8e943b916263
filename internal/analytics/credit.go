package analytics

import (
	"restro-analytics-service/internal/models"
)

// ReconcileCredit merges the credit ledger into the analytics result.
// Only transactions created inside the reporting window are counted.
// Ledger rows claiming more received than owed are clamped, not trusted.
func ReconcileCredit(credits []models.CreditTransaction, rng models.DateRange, totalRevenue float64) *models.CreditSummary {
	summary := &models.CreditSummary{
		Transactions: make([]models.CreditDetail, 0),
	}

	for _, credit := range credits {
		if !rng.Contains(credit.CreatedAt) {
			continue
		}

		outstanding := credit.TotalAmount - credit.AmountReceived
		if outstanding < 0 {
			outstanding = 0
		}
		summary.TotalOutstanding += outstanding
		summary.PendingAmount += credit.Remaining()
		summary.PaidAmount += credit.PaidTotal()

		summary.Transactions = append(summary.Transactions, models.CreditDetail{
			Transaction: credit,
			Remaining:   credit.Remaining(),
			Status:      credit.Status(),
		})
	}

	if totalRevenue == 0 {
		summary.CollectionRate = 100
	} else {
		summary.CollectionRate = (totalRevenue - summary.PendingAmount) / totalRevenue * 100
	}
	return summary
}
