package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"restro-analytics-service/internal/models"
)

// Flat serializes the analytics result to delimited text, one labeled
// section per breakdown. The layout mirrors the PDF report so the two
// artifacts stay comparable.
func Flat(analytics *models.SalesAnalytics, rng models.DateRange) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(record ...string) {
		_ = w.Write(record)
	}
	blank := func() { write("") }

	write("Sales Report")
	write("Period", rng.Label, rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))
	write("Data Source", string(analytics.DataSource))
	blank()

	write("Summary")
	write("Total Revenue", money(analytics.TotalRevenue))
	write("Total Orders", fmt.Sprintf("%d", analytics.TotalOrders))
	write("Average Order Value", money(analytics.AverageOrderValue))
	write("Distinct Customers", fmt.Sprintf("%d", analytics.DistinctCustomers))
	write("Total Tax", money(analytics.TotalTax))
	write("Total Discount", money(analytics.TotalDiscount))
	if analytics.Growth != nil {
		write("Revenue Growth %", money(analytics.Growth.RevenueGrowth))
		write("Order Growth %", money(analytics.Growth.OrderGrowth))
		write("Customer Growth %", money(analytics.Growth.CustomerGrowth))
	}
	blank()

	write("Menu Item Sales")
	write("Item", "Category", "Quantity", "Revenue", "Percentage")
	for _, item := range analytics.MenuItemSales {
		write(item.Name, item.Category, fmt.Sprintf("%d", item.Quantity), money(item.Revenue), money(item.Percentage))
	}
	blank()

	write("Category Sales")
	write("Category", "Quantity", "Revenue", "Percentage")
	for _, category := range analytics.CategorySales {
		write(category.Category, fmt.Sprintf("%d", category.Quantity), money(category.Revenue), money(category.Percentage))
	}
	blank()

	write("Table Sales")
	write("Table", "Orders", "Revenue", "Percentage")
	for _, table := range analytics.TableSales {
		write(table.Label, fmt.Sprintf("%d", table.OrderCount), money(table.Revenue), money(table.Percentage))
	}
	blank()

	write("Hourly Sales")
	write("Hour", "Orders", "Revenue", "Percentage")
	for _, hour := range analytics.HourlySales {
		write(fmt.Sprintf("%02d:00", hour.Hour), fmt.Sprintf("%d", hour.OrderCount), money(hour.Revenue), money(hour.Percentage))
	}
	blank()

	write("Daily Sales")
	write("Date", "Orders", "Customers", "Revenue", "Percentage")
	for _, day := range analytics.DailySales {
		write(day.Date, fmt.Sprintf("%d", day.OrderCount), fmt.Sprintf("%d", day.Customers), money(day.Revenue), money(day.Percentage))
	}
	blank()

	write("Payment Methods")
	write("Method", "Orders", "Revenue", "Percentage")
	for _, method := range analytics.PaymentMethods {
		write(method.Method, fmt.Sprintf("%d", method.OrderCount), money(method.Revenue), money(method.Percentage))
	}
	blank()

	write("Order Types")
	write("Type", "Orders", "Revenue", "Percentage")
	for _, orderType := range analytics.OrderTypes {
		write(orderType.OrderType, fmt.Sprintf("%d", orderType.OrderCount), money(orderType.Revenue), money(orderType.Percentage))
	}
	blank()

	write("Staff Sales")
	write("Staff", "Orders", "Revenue", "Percentage")
	for _, member := range analytics.StaffSales {
		write(member.Name, fmt.Sprintf("%d", member.OrderCount), money(member.Revenue), money(member.Percentage))
	}
	blank()

	write("Peak Hours")
	write("Hour", "Orders", "Majority")
	for _, peak := range analytics.PeakHours {
		kind := "Weekday"
		if peak.IsWeekend {
			kind = "Weekend"
		}
		write(fmt.Sprintf("%02d:00", peak.Hour), fmt.Sprintf("%d", peak.OrderCount), kind)
	}
	blank()

	write("Item Combinations")
	write("Combination", "Orders", "Revenue")
	for _, combo := range analytics.ItemCombinations {
		write(strings.Join(combo.Items, " + "), fmt.Sprintf("%d", combo.Frequency), money(combo.Revenue))
	}
	blank()

	write("Top Customers")
	write("Customer", "Orders", "Spend", "Percentage")
	for _, customer := range analytics.TopCustomers {
		write(customer.Name, fmt.Sprintf("%d", customer.OrderCount), money(customer.Spend), money(customer.Percentage))
	}
	blank()

	if analytics.Credit != nil {
		write("Credit Summary")
		write("Outstanding", money(analytics.Credit.TotalOutstanding))
		write("Pending", money(analytics.Credit.PendingAmount))
		write("Collected", money(analytics.Credit.PaidAmount))
		write("Collection Rate %", money(analytics.Credit.CollectionRate))
		blank()

		write("Credit Transactions")
		write("Customer", "Order", "Table", "Total", "Received", "Remaining", "Status")
		for _, detail := range analytics.Credit.Transactions {
			write(detail.Transaction.CustomerName, detail.Transaction.OrderID,
				detail.Transaction.TableLabel, money(detail.Transaction.TotalAmount),
				money(detail.Transaction.AmountReceived), money(detail.Remaining), detail.Status)
		}
		blank()
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
