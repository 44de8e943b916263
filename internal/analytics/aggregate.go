package analytics

import (
	"sort"
	"strings"
	"time"

	"restro-analytics-service/internal/models"
)

// Placeholder labels for unresolved references.
const (
	labelUncategorized = "Uncategorized"
	labelUnknown       = "Unknown"
	labelAnonymous     = "Anonymous"
)

const (
	peakHourLimit        = 5
	topCustomerLimit     = 10
	itemCombinationLimit = 10
	combinationItemCap   = 3
	recentOrderLimit     = 50
)

// LookupSet carries the reference data used to resolve display labels.
// Missing entries degrade to placeholders, never to errors.
type LookupSet struct {
	MenuItems map[string]models.MenuItemRef
	Tables    map[string]models.TableRef
	Customers map[string]models.CustomerRef
	Staff     map[string]models.StaffRef
}

// Aggregate folds a window's revenue-eligible orders into every breakdown
// of the analytics result. The input must already be filtered to completed,
// paid orders; cancelled and unpaid orders are excluded upstream.
func Aggregate(orders []models.Order, rng models.DateRange, lookups LookupSet) models.SalesAnalytics {
	result := models.SalesAnalytics{
		DataSource: models.DataSourceReal,
		Range:      rng,
	}

	type itemAgg struct {
		name     string
		category string
		quantity int64
		revenue  float64
	}
	type bucketAgg struct {
		count   int64
		revenue float64
	}
	type dayAgg struct {
		count     int64
		revenue   float64
		customers map[string]struct{}
	}
	type hourAgg struct {
		count   int64
		revenue float64
		weekend int64
		weekday int64
	}
	type comboAgg struct {
		items     []string
		frequency int64
		revenue   float64
	}
	type customerAgg struct {
		orders int64
		spend  float64
	}

	items := make(map[string]*itemAgg)
	categories := make(map[string]*bucketAgg)
	tables := make(map[string]*bucketAgg)
	hours := make(map[int]*hourAgg)
	days := make(map[string]*dayAgg)
	payments := make(map[string]*bucketAgg)
	orderTypes := make(map[string]*bucketAgg)
	staff := make(map[string]*bucketAgg)
	combos := make(map[string]*comboAgg)
	customers := make(map[string]*customerAgg)

	for _, order := range orders {
		result.TotalOrders++
		result.TotalRevenue += order.Total
		result.TotalTax += order.Tax
		result.TotalDiscount += order.Discount
		result.TotalSubtotal += order.Subtotal

		for _, line := range order.Items {
			entry := items[line.MenuItemID]
			if entry == nil {
				entry = &itemAgg{name: line.Name, category: labelUncategorized}
				if ref, ok := lookups.MenuItems[line.MenuItemID]; ok && ref.Category != "" {
					entry.category = ref.Category
				}
				items[line.MenuItemID] = entry
			}
			entry.quantity += int64(line.Quantity)
			entry.revenue += line.Total

			category := categories[entry.category]
			if category == nil {
				category = &bucketAgg{}
				categories[entry.category] = category
			}
			category.count += int64(line.Quantity)
			category.revenue += line.Total
		}

		if order.TableID != "" {
			table := tables[order.TableID]
			if table == nil {
				table = &bucketAgg{}
				tables[order.TableID] = table
			}
			table.count++
			table.revenue += order.Total
		}

		hourKey := order.CreatedAt.Hour()
		hour := hours[hourKey]
		if hour == nil {
			hour = &hourAgg{}
			hours[hourKey] = hour
		}
		hour.count++
		hour.revenue += order.Total
		switch order.CreatedAt.Weekday() {
		case time.Saturday, time.Sunday:
			hour.weekend++
		default:
			hour.weekday++
		}

		dayKey := order.CreatedAt.Format("2006-01-02")
		day := days[dayKey]
		if day == nil {
			day = &dayAgg{customers: make(map[string]struct{})}
			days[dayKey] = day
		}
		day.count++
		day.revenue += order.Total
		if order.CustomerID != "" {
			day.customers[order.CustomerID] = struct{}{}
		}

		method := NormalizePaymentMethod(order.PaymentMethod)
		payment := payments[method]
		if payment == nil {
			payment = &bucketAgg{}
			payments[method] = payment
		}
		payment.count++
		payment.revenue += order.Total

		orderType := orderTypes[order.OrderType]
		if orderType == nil {
			orderType = &bucketAgg{}
			orderTypes[order.OrderType] = orderType
		}
		orderType.count++
		orderType.revenue += order.Total

		if order.StaffID != "" {
			member := staff[order.StaffID]
			if member == nil {
				member = &bucketAgg{}
				staff[order.StaffID] = member
			}
			member.count++
			member.revenue += order.Total
		}

		if key, names := combinationKey(order.Items); key != "" {
			combo := combos[key]
			if combo == nil {
				combo = &comboAgg{items: names}
				combos[key] = combo
			}
			combo.frequency++
			combo.revenue += order.Total
		}

		if order.CustomerID != "" {
			customer := customers[order.CustomerID]
			if customer == nil {
				customer = &customerAgg{}
				customers[order.CustomerID] = customer
			}
			customer.orders++
			customer.spend += order.Total
		}
	}

	if result.TotalOrders > 0 {
		result.AverageOrderValue = result.TotalRevenue / float64(result.TotalOrders)
	}
	result.DistinctCustomers = int64(len(customers))

	repeat := int64(0)
	for _, customer := range customers {
		if customer.orders > 1 {
			repeat++
		}
	}
	if result.DistinctCustomers > 0 {
		result.RepeatCustomerPct = float64(repeat) / float64(result.DistinctCustomers) * 100
	}
	if len(lookups.Tables) > 0 {
		result.TableUtilization = float64(len(tables)) / float64(len(lookups.Tables)) * 100
	}

	total := result.TotalRevenue
	pct := func(amount float64) float64 {
		if total == 0 {
			return 0
		}
		return amount / total * 100
	}

	for id, entry := range items {
		result.MenuItemSales = append(result.MenuItemSales, models.MenuItemSales{
			MenuItemID: id,
			Name:       entry.name,
			Category:   entry.category,
			Quantity:   entry.quantity,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.MenuItemSales, func(i, j int) bool {
		return result.MenuItemSales[i].Revenue > result.MenuItemSales[j].Revenue
	})

	for name, entry := range categories {
		result.CategorySales = append(result.CategorySales, models.CategorySales{
			Category:   name,
			Quantity:   entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.CategorySales, func(i, j int) bool {
		return result.CategorySales[i].Revenue > result.CategorySales[j].Revenue
	})

	for id, entry := range tables {
		label := labelUnknown
		if ref, ok := lookups.Tables[id]; ok {
			label = "Table " + ref.Number
			if ref.Area != "" {
				label += " (" + ref.Area + ")"
			}
		}
		result.TableSales = append(result.TableSales, models.TableSales{
			TableID:    id,
			Label:      label,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.TableSales, func(i, j int) bool {
		return result.TableSales[i].Revenue > result.TableSales[j].Revenue
	})

	for hour := 0; hour < 24; hour++ {
		entry := hours[hour]
		if entry == nil {
			entry = &hourAgg{}
		}
		result.HourlySales = append(result.HourlySales, models.HourlySales{
			Hour:       hour,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}

	dayKeys := make([]string, 0, len(days))
	for key := range days {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)
	for _, key := range dayKeys {
		entry := days[key]
		result.DailySales = append(result.DailySales, models.DailySales{
			Date:       key,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Customers:  int64(len(entry.customers)),
			Percentage: pct(entry.revenue),
		})
	}

	for method, entry := range payments {
		result.PaymentMethods = append(result.PaymentMethods, models.PaymentMethodSales{
			Method:     method,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.PaymentMethods, func(i, j int) bool {
		return result.PaymentMethods[i].Revenue > result.PaymentMethods[j].Revenue
	})

	for orderType, entry := range orderTypes {
		result.OrderTypes = append(result.OrderTypes, models.OrderTypeSales{
			OrderType:  orderType,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.OrderTypes, func(i, j int) bool {
		return result.OrderTypes[i].Revenue > result.OrderTypes[j].Revenue
	})

	for id, entry := range staff {
		name := labelUnknown
		if ref, ok := lookups.Staff[id]; ok {
			name = ref.Name
		}
		result.StaffSales = append(result.StaffSales, models.StaffSales{
			StaffID:    id,
			Name:       name,
			OrderCount: entry.count,
			Revenue:    entry.revenue,
			Percentage: pct(entry.revenue),
		})
	}
	sort.Slice(result.StaffSales, func(i, j int) bool {
		return result.StaffSales[i].Revenue > result.StaffSales[j].Revenue
	})

	for hour, entry := range hours {
		result.PeakHours = append(result.PeakHours, models.PeakHour{
			Hour:       hour,
			OrderCount: entry.count,
			IsWeekend:  entry.weekend > entry.weekday,
		})
	}
	sort.Slice(result.PeakHours, func(i, j int) bool {
		if result.PeakHours[i].OrderCount == result.PeakHours[j].OrderCount {
			return result.PeakHours[i].Hour < result.PeakHours[j].Hour
		}
		return result.PeakHours[i].OrderCount > result.PeakHours[j].OrderCount
	})
	if len(result.PeakHours) > peakHourLimit {
		result.PeakHours = result.PeakHours[:peakHourLimit]
	}

	for _, entry := range combos {
		if entry.frequency <= 1 {
			continue
		}
		result.ItemCombinations = append(result.ItemCombinations, models.ItemCombination{
			Items:     entry.items,
			Frequency: entry.frequency,
			Revenue:   entry.revenue,
		})
	}
	sort.Slice(result.ItemCombinations, func(i, j int) bool {
		if result.ItemCombinations[i].Frequency == result.ItemCombinations[j].Frequency {
			return strings.Join(result.ItemCombinations[i].Items, "|") < strings.Join(result.ItemCombinations[j].Items, "|")
		}
		return result.ItemCombinations[i].Frequency > result.ItemCombinations[j].Frequency
	})
	if len(result.ItemCombinations) > itemCombinationLimit {
		result.ItemCombinations = result.ItemCombinations[:itemCombinationLimit]
	}

	for id, entry := range customers {
		name := labelAnonymous
		if ref, ok := lookups.Customers[id]; ok {
			name = ref.Name
		}
		result.TopCustomers = append(result.TopCustomers, models.CustomerSales{
			CustomerID: id,
			Name:       name,
			OrderCount: entry.orders,
			Spend:      entry.spend,
			Percentage: pct(entry.spend),
		})
	}
	sort.Slice(result.TopCustomers, func(i, j int) bool {
		return result.TopCustomers[i].Spend > result.TopCustomers[j].Spend
	})
	if len(result.TopCustomers) > topCustomerLimit {
		result.TopCustomers = result.TopCustomers[:topCustomerLimit]
	}

	// Detail rows for the report's order-details section. Input arrives
	// newest-first from retrieval, so the cap keeps the latest orders.
	for i, order := range orders {
		if i == recentOrderLimit {
			break
		}
		result.RecentOrders = append(result.RecentOrders, models.OrderSummary{
			OrderID:       order.ID,
			PlacedAt:      order.CreatedAt.Format("2006-01-02 15:04"),
			OrderType:     order.OrderType,
			PaymentMethod: NormalizePaymentMethod(order.PaymentMethod),
			ItemCount:     len(order.Items),
			Total:         order.Total,
		})
	}

	return result
}

// combinationKey canonicalizes an order's line items into a combination
// key: up to the first three distinct item names, lexicographically sorted.
// Orders with fewer than two distinct items produce no key.
func combinationKey(items []models.OrderItem) (string, []string) {
	seen := make(map[string]struct{})
	names := make([]string, 0, combinationItemCap)
	for _, item := range items {
		if _, ok := seen[item.Name]; ok {
			continue
		}
		seen[item.Name] = struct{}{}
		names = append(names, item.Name)
		if len(names) == combinationItemCap {
			break
		}
	}
	if len(names) < 2 {
		return "", nil
	}
	sort.Strings(names)
	return strings.Join(names, " + "), names
}

// FilterEligible drops orders excluded from revenue aggregation.
func FilterEligible(orders []models.Order) []models.Order {
	eligible := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.RevenueEligible() {
			eligible = append(eligible, order)
		}
	}
	return eligible
}
