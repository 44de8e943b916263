package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"restro-analytics-service/internal/models"
)

func sampleAnalytics() *models.SalesAnalytics {
	return &models.SalesAnalytics{
		DataSource:        models.DataSourceReal,
		TotalRevenue:      300,
		TotalOrders:       2,
		AverageOrderValue: 150,
		DistinctCustomers: 2,
		MenuItemSales: []models.MenuItemSales{
			{MenuItemID: "m1", Name: "Garlic Naan", Category: "Breads", Quantity: 2, Revenue: 100, Percentage: 33.33},
		},
		PaymentMethods: []models.PaymentMethodSales{
			{Method: "Cash", OrderCount: 1, Revenue: 100, Percentage: 33.33},
			{Method: "UPI", OrderCount: 1, Revenue: 200, Percentage: 66.67},
		},
		Credit: &models.CreditSummary{
			PendingAmount:  50,
			CollectionRate: 83.33,
			Transactions: []models.CreditDetail{
				{
					Transaction: models.CreditTransaction{CustomerName: "Asha", OrderID: "o1", TotalAmount: 60},
					Remaining:   50,
					Status:      models.CreditPartiallyPaid,
				},
			},
		},
	}
}

func sampleRange() models.DateRange {
	return models.DateRange{
		Label: "Last 7 Days",
		Start: time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 19, 23, 59, 59, 0, time.UTC),
	}
}

func TestFlatContainsSections(t *testing.T) {
	flat, err := Flat(sampleAnalytics(), sampleRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sections := []string{
		"Sales Report",
		"Summary",
		"Menu Item Sales",
		"Category Sales",
		"Table Sales",
		"Hourly Sales",
		"Daily Sales",
		"Payment Methods",
		"Order Types",
		"Staff Sales",
		"Peak Hours",
		"Item Combinations",
		"Top Customers",
		"Credit Summary",
		"Credit Transactions",
	}
	for _, section := range sections {
		if !strings.Contains(flat, section) {
			t.Fatalf("export missing section %q", section)
		}
	}

	if !strings.Contains(flat, "Garlic Naan") {
		t.Fatal("export missing menu item row")
	}
	if !strings.Contains(flat, "Asha") {
		t.Fatal("export missing credit transaction row")
	}
}

func TestFlatIsValidCSV(t *testing.T) {
	flat, err := Flat(sampleAnalytics(), sampleRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(flat))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected rows in the export")
	}
	if records[0][0] != "Sales Report" {
		t.Fatalf("unexpected first record: %v", records[0])
	}
}

func TestFlatOmitsCreditWhenAbsent(t *testing.T) {
	analytics := sampleAnalytics()
	analytics.Credit = nil

	flat, err := Flat(analytics, sampleRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(flat, "Credit Summary") {
		t.Fatal("credit section must be omitted when no summary was computed")
	}
}
