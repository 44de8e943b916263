package models

// DataSource flags whether an analytics result was computed from real
// orders or synthesized as a demonstration dataset for an empty window.
type DataSource string

const (
	DataSourceReal        DataSource = "real"
	DataSourceSynthesized DataSource = "synthesized"
)

type MenuItemSales struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   int64   `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type CategorySales struct {
	Category   string  `json:"category"`
	Quantity   int64   `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type TableSales struct {
	TableID    string  `json:"tableId"`
	Label      string  `json:"label"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type HourlySales struct {
	Hour       int     `json:"hour"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type DailySales struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Customers  int64   `json:"customers"`
	Percentage float64 `json:"percentage"`
}

type PaymentMethodSales struct {
	Method     string  `json:"method"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type OrderTypeSales struct {
	OrderType  string  `json:"orderType"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type StaffSales struct {
	StaffID    string  `json:"staffId"`
	Name       string  `json:"name"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type PeakHour struct {
	Hour       int   `json:"hour"`
	OrderCount int64 `json:"orderCount"`
	IsWeekend  bool  `json:"isWeekend"`
}

type ItemCombination struct {
	Items     []string `json:"items"`
	Frequency int64    `json:"frequency"`
	Revenue   float64  `json:"revenue"`
}

type CustomerSales struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	OrderCount int64   `json:"orderCount"`
	Spend      float64 `json:"spend"`
	Percentage float64 `json:"percentage"`
}

type OrderSummary struct {
	OrderID       string  `json:"orderId"`
	PlacedAt      string  `json:"placedAt"`
	OrderType     string  `json:"orderType"`
	PaymentMethod string  `json:"paymentMethod"`
	ItemCount     int     `json:"itemCount"`
	Total         float64 `json:"total"`
}

type GrowthMetrics struct {
	RevenueGrowth   float64 `json:"revenueGrowth"`
	OrderGrowth     float64 `json:"orderGrowth"`
	CustomerGrowth  float64 `json:"customerGrowth"`
	PreviousRevenue float64 `json:"previousRevenue"`
	PreviousOrders  int64   `json:"previousOrders"`
}

type CreditDetail struct {
	Transaction CreditTransaction `json:"transaction"`
	Remaining   float64           `json:"remaining"`
	Status      string            `json:"status"`
}

type CreditSummary struct {
	TotalOutstanding float64        `json:"totalOutstanding"`
	PendingAmount    float64        `json:"pendingAmount"`
	PaidAmount       float64        `json:"paidAmount"`
	CollectionRate   float64        `json:"collectionRate"`
	Transactions     []CreditDetail `json:"transactions"`
}

type Insights struct {
	ProfitabilityTrend string   `json:"profitabilityTrend"`
	Recommendations    []string `json:"recommendations"`
}

// SalesAnalytics is the engine's sole output. It is built once per report
// request and never mutated afterwards. Optional sections are nil when the
// corresponding computation was not requested or had no inputs.
type SalesAnalytics struct {
	DataSource DataSource `json:"dataSource"`
	Range      DateRange  `json:"range"`

	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int64   `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalTax          float64 `json:"totalTax"`
	TotalDiscount     float64 `json:"totalDiscount"`
	TotalSubtotal     float64 `json:"totalSubtotal"`
	DistinctCustomers int64   `json:"distinctCustomers"`
	RepeatCustomerPct float64 `json:"repeatCustomerPct"`
	TableUtilization  float64 `json:"tableUtilization"`

	MenuItemSales    []MenuItemSales      `json:"menuItemSales"`
	CategorySales    []CategorySales      `json:"categorySales"`
	TableSales       []TableSales         `json:"tableSales"`
	HourlySales      []HourlySales        `json:"hourlySales"`
	DailySales       []DailySales         `json:"dailySales"`
	PaymentMethods   []PaymentMethodSales `json:"paymentMethods"`
	OrderTypes       []OrderTypeSales     `json:"orderTypes"`
	StaffSales       []StaffSales         `json:"staffSales"`
	PeakHours        []PeakHour           `json:"peakHours"`
	ItemCombinations []ItemCombination    `json:"itemCombinations"`
	TopCustomers     []CustomerSales      `json:"topCustomers"`
	RecentOrders     []OrderSummary       `json:"recentOrders"`

	Growth   *GrowthMetrics `json:"growth,omitempty"`
	Credit   *CreditSummary `json:"credit,omitempty"`
	Insights *Insights      `json:"insights,omitempty"`
}
