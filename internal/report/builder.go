package report

import (
	"bytes"
	"fmt"

	"restro-analytics-service/internal/models"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// Options toggles the report sections and carries free-text extras.
type Options struct {
	IncludeMenuAnalysis     bool   `json:"includeMenuAnalysis"`
	IncludeTableAnalysis    bool   `json:"includeTableAnalysis"`
	IncludeCustomerAnalysis bool   `json:"includeCustomerAnalysis"`
	IncludeStaffAnalysis    bool   `json:"includeStaffAnalysis"`
	IncludeTimeAnalysis     bool   `json:"includeTimeAnalysis"`
	IncludeTaxBreakdown     bool   `json:"includeTaxBreakdown"`
	IncludeDiscountAnalysis bool   `json:"includeDiscountAnalysis"`
	IncludeCreditAnalysis   bool   `json:"includeCreditAnalysis"`
	IncludeOrderDetails     bool   `json:"includeOrderDetails"`
	ReportTitle             string `json:"reportTitle"`
	AdditionalNotes         string `json:"additionalNotes"`
}

// AllSections enables every section.
func AllSections() Options {
	return Options{
		IncludeMenuAnalysis:     true,
		IncludeTableAnalysis:    true,
		IncludeCustomerAnalysis: true,
		IncludeStaffAnalysis:    true,
		IncludeTimeAnalysis:     true,
		IncludeTaxBreakdown:     true,
		IncludeDiscountAnalysis: true,
		IncludeCreditAnalysis:   true,
		IncludeOrderDetails:     true,
	}
}

// Builder assembles the paginated report document. The table strategy is
// selected once at construction; if the preferred strategy fails at any
// call site the builder switches to manual positioning permanently, so a
// report is never left partially generated by a missing capability.
type Builder struct {
	pdf           *gofpdf.Fpdf
	preferred     TableRenderer
	fallback      TableRenderer
	usingFallback bool
	logger        *zap.Logger
}

func NewBuilder(logger *zap.Logger) *Builder {
	return NewBuilderWithRenderer(GridTableRenderer{}, logger)
}

// NewBuilderWithRenderer injects the preferred strategy; a nil renderer
// means the grid capability is absent and manual positioning is used from
// the start.
func NewBuilderWithRenderer(preferred TableRenderer, logger *zap.Logger) *Builder {
	return &Builder{
		preferred:     preferred,
		fallback:      ManualPositionRenderer{},
		usingFallback: preferred == nil,
		logger:        logger,
	}
}

// Build renders the analytics result into a PDF.
func (b *Builder) Build(analytics *models.SalesAnalytics, rng models.DateRange, title string, opts Options) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	b.pdf = pdf

	if opts.ReportTitle != "" {
		title = opts.ReportTitle
	}
	if title == "" {
		title = "Sales Report"
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  (%s - %s)", rng.Label,
		rng.Start.Format("02 Jan 2006"), rng.End.Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	if analytics.DataSource == models.DataSourceSynthesized {
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(160, 60, 60)
		pdf.CellFormat(0, 6, "Demonstration data: no orders were found in this period.", "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(3)

	b.summarySection(analytics)

	if opts.IncludeMenuAnalysis {
		b.menuSection(analytics)
	}
	if opts.IncludeTableAnalysis {
		b.tableSection(analytics)
	}
	if opts.IncludeCustomerAnalysis {
		b.customerSection(analytics)
	}
	if opts.IncludeStaffAnalysis {
		b.staffSection(analytics)
	}
	if opts.IncludeTimeAnalysis {
		b.timeSection(analytics)
	}
	if opts.IncludeTaxBreakdown {
		b.taxSection(analytics)
	}
	if opts.IncludeDiscountAnalysis {
		b.discountSection(analytics)
	}
	if opts.IncludeCreditAnalysis && analytics.Credit != nil {
		b.creditSection(analytics.Credit)
	}
	if opts.IncludeOrderDetails {
		b.orderDetailSection(analytics)
	}

	if opts.AdditionalNotes != "" {
		b.sectionTitle("Notes")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, opts.AdditionalNotes, "", "L", false)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// table is the single entry point every section goes through. It tries
// the preferred strategy and transparently substitutes the fallback on
// any failure, including panics.
func (b *Builder) table(headers []string, widths []float64, rows [][]string) {
	if !b.usingFallback {
		if err := b.renderWith(b.preferred, headers, widths, rows); err == nil {
			return
		} else if b.logger != nil {
			b.logger.Warn("grid table rendering failed, switching to manual positioning", zap.Error(err))
		}
		b.usingFallback = true
	}
	if err := b.renderWith(b.fallback, headers, widths, rows); err != nil && b.logger != nil {
		b.logger.Error("manual table rendering failed", zap.Error(err))
	}
}

func (b *Builder) renderWith(renderer TableRenderer, headers []string, widths []float64, rows [][]string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("table renderer panic: %v", rec)
		}
	}()
	return renderer.RenderTable(b.pdf, headers, widths, rows)
}

func (b *Builder) sectionTitle(title string) {
	_, _, _, bottom := b.pdf.GetMargins()
	_, pageHeight := b.pdf.GetPageSize()
	if b.pdf.GetY()+24 > pageHeight-bottom {
		b.pdf.AddPage()
	}
	b.pdf.SetFont("Arial", "B", 12)
	b.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

func (b *Builder) summarySection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Summary")
	rows := [][]string{
		{"Total Revenue", money(analytics.TotalRevenue)},
		{"Total Orders", fmt.Sprintf("%d", analytics.TotalOrders)},
		{"Average Order Value", money(analytics.AverageOrderValue)},
		{"Distinct Customers", fmt.Sprintf("%d", analytics.DistinctCustomers)},
	}
	if analytics.Growth != nil {
		rows = append(rows,
			[]string{"Revenue Growth", percentSigned(analytics.Growth.RevenueGrowth)},
			[]string{"Order Growth", percentSigned(analytics.Growth.OrderGrowth)},
			[]string{"Customer Growth", percentSigned(analytics.Growth.CustomerGrowth)},
		)
	}
	if analytics.Insights != nil {
		rows = append(rows, []string{"Profitability Trend", analytics.Insights.ProfitabilityTrend})
	}
	b.table([]string{"Metric", "Value"}, []float64{100, 86}, rows)

	if analytics.Insights != nil && len(analytics.Insights.Recommendations) > 0 {
		b.pdf.SetFont("Arial", "I", 9)
		for _, rec := range analytics.Insights.Recommendations {
			b.pdf.MultiCell(0, 5, "- "+rec, "", "L", false)
		}
		b.pdf.Ln(2)
	}
}

func (b *Builder) menuSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Menu Performance")
	rows := make([][]string, 0, len(analytics.MenuItemSales))
	for _, item := range analytics.MenuItemSales {
		rows = append(rows, []string{item.Name, item.Category,
			fmt.Sprintf("%d", item.Quantity), money(item.Revenue), percent(item.Percentage)})
	}
	b.table([]string{"Item", "Category", "Qty", "Revenue", "Share"},
		[]float64{60, 40, 20, 36, 30}, rows)

	if len(analytics.CategorySales) > 0 {
		b.sectionTitle("Category Breakdown")
		rows = rows[:0]
		for _, category := range analytics.CategorySales {
			rows = append(rows, []string{category.Category,
				fmt.Sprintf("%d", category.Quantity), money(category.Revenue), percent(category.Percentage)})
		}
		b.table([]string{"Category", "Qty", "Revenue", "Share"},
			[]float64{80, 30, 40, 36}, rows)
	}

	if len(analytics.ItemCombinations) > 0 {
		b.sectionTitle("Frequent Item Combinations")
		rows = rows[:0]
		for _, combo := range analytics.ItemCombinations {
			rows = append(rows, []string{joinItems(combo.Items),
				fmt.Sprintf("%d", combo.Frequency), money(combo.Revenue)})
		}
		b.table([]string{"Combination", "Orders", "Revenue"},
			[]float64{110, 30, 46}, rows)
	}
}

func (b *Builder) tableSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Table Performance")
	rows := make([][]string, 0, len(analytics.TableSales))
	for _, table := range analytics.TableSales {
		rows = append(rows, []string{table.Label,
			fmt.Sprintf("%d", table.OrderCount), money(table.Revenue), percent(table.Percentage)})
	}
	b.table([]string{"Table", "Orders", "Revenue", "Share"},
		[]float64{80, 30, 40, 36}, rows)

	if analytics.TableUtilization > 0 {
		b.pdf.SetFont("Arial", "", 9)
		b.pdf.CellFormat(0, 5, fmt.Sprintf("Table utilization: %s", percent(analytics.TableUtilization)), "", 1, "L", false, 0, "")
		b.pdf.Ln(2)
	}
}

func (b *Builder) customerSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Top Customers")
	rows := make([][]string, 0, len(analytics.TopCustomers))
	for _, customer := range analytics.TopCustomers {
		rows = append(rows, []string{customer.Name,
			fmt.Sprintf("%d", customer.OrderCount), money(customer.Spend), percent(customer.Percentage)})
	}
	b.table([]string{"Customer", "Orders", "Spend", "Share"},
		[]float64{80, 30, 40, 36}, rows)
}

func (b *Builder) staffSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Staff Performance")
	rows := make([][]string, 0, len(analytics.StaffSales))
	for _, member := range analytics.StaffSales {
		rows = append(rows, []string{member.Name,
			fmt.Sprintf("%d", member.OrderCount), money(member.Revenue), percent(member.Percentage)})
	}
	b.table([]string{"Staff", "Orders", "Revenue", "Share"},
		[]float64{80, 30, 40, 36}, rows)
}

func (b *Builder) timeSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Sales by Hour")
	rows := make([][]string, 0, 24)
	for _, hour := range analytics.HourlySales {
		if hour.OrderCount == 0 {
			continue
		}
		rows = append(rows, []string{fmt.Sprintf("%02d:00", hour.Hour),
			fmt.Sprintf("%d", hour.OrderCount), money(hour.Revenue), percent(hour.Percentage)})
	}
	b.table([]string{"Hour", "Orders", "Revenue", "Share"},
		[]float64{50, 40, 50, 46}, rows)

	if len(analytics.PeakHours) > 0 {
		b.sectionTitle("Peak Hours")
		rows = rows[:0]
		for _, peak := range analytics.PeakHours {
			kind := "Weekday"
			if peak.IsWeekend {
				kind = "Weekend"
			}
			rows = append(rows, []string{fmt.Sprintf("%02d:00", peak.Hour),
				fmt.Sprintf("%d", peak.OrderCount), kind})
		}
		b.table([]string{"Hour", "Orders", "Majority"},
			[]float64{50, 50, 86}, rows)
	}

	if len(analytics.DailySales) > 0 {
		b.sectionTitle("Sales by Day")
		rows = rows[:0]
		for _, day := range analytics.DailySales {
			rows = append(rows, []string{day.Date,
				fmt.Sprintf("%d", day.OrderCount), fmt.Sprintf("%d", day.Customers),
				money(day.Revenue), percent(day.Percentage)})
		}
		b.table([]string{"Date", "Orders", "Customers", "Revenue", "Share"},
			[]float64{44, 30, 32, 42, 38}, rows)
	}
}

func (b *Builder) taxSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Tax Breakdown")
	b.table([]string{"Line", "Amount"}, []float64{100, 86}, [][]string{
		{"Subtotal", money(analytics.TotalSubtotal)},
		{"Tax Collected", money(analytics.TotalTax)},
		{"Gross Revenue", money(analytics.TotalRevenue)},
	})
}

func (b *Builder) discountSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Discount Analysis")
	rate := 0.0
	if analytics.TotalSubtotal > 0 {
		rate = analytics.TotalDiscount / analytics.TotalSubtotal * 100
	}
	b.table([]string{"Line", "Amount"}, []float64{100, 86}, [][]string{
		{"Total Discounts", money(analytics.TotalDiscount)},
		{"Discount Rate", percent(rate)},
	})
}

func (b *Builder) creditSection(credit *models.CreditSummary) {
	b.sectionTitle("Credit Summary")
	b.table([]string{"Metric", "Amount"}, []float64{100, 86}, [][]string{
		{"Outstanding Credit", money(credit.TotalOutstanding)},
		{"Pending Amount", money(credit.PendingAmount)},
		{"Collected Against Credit", money(credit.PaidAmount)},
		{"Collection Rate", percent(credit.CollectionRate)},
	})

	if len(credit.Transactions) > 0 {
		b.sectionTitle("Credit Transactions")
		rows := make([][]string, 0, len(credit.Transactions))
		for _, detail := range credit.Transactions {
			rows = append(rows, []string{detail.Transaction.CustomerName,
				detail.Transaction.TableLabel, money(detail.Transaction.TotalAmount),
				money(detail.Remaining), detail.Status})
		}
		b.table([]string{"Customer", "Table", "Total", "Remaining", "Status"},
			[]float64{56, 30, 34, 34, 32}, rows)
	}
}

func (b *Builder) orderDetailSection(analytics *models.SalesAnalytics) {
	b.sectionTitle("Order Details")
	rows := make([][]string, 0, len(analytics.RecentOrders))
	for _, order := range analytics.RecentOrders {
		rows = append(rows, []string{order.OrderID, order.PlacedAt, order.OrderType,
			order.PaymentMethod, fmt.Sprintf("%d", order.ItemCount), money(order.Total)})
	}
	b.table([]string{"Order", "Placed", "Type", "Payment", "Items", "Total"},
		[]float64{42, 32, 26, 30, 22, 34}, rows)
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func percentSigned(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += " + "
		}
		out += item
	}
	return out
}
