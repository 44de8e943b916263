package analytics

import (
	"math/rand"
	"time"

	"restro-analytics-service/internal/models"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

var demoMenu = []models.MenuItemRef{
	{Name: "Margherita Pizza", Category: "Pizza"},
	{Name: "Pepperoni Pizza", Category: "Pizza"},
	{Name: "Chicken Tikka Masala", Category: "Curry"},
	{Name: "Paneer Butter Masala", Category: "Curry"},
	{Name: "Garlic Naan", Category: "Breads"},
	{Name: "Veg Biryani", Category: "Rice"},
	{Name: "Chicken Biryani", Category: "Rice"},
	{Name: "Caesar Salad", Category: "Salads"},
	{Name: "Masala Chai", Category: "Beverages"},
	{Name: "Fresh Lime Soda", Category: "Beverages"},
	{Name: "Gulab Jamun", Category: "Desserts"},
	{Name: "Chocolate Brownie", Category: "Desserts"},
}

var demoPayments = []string{"Cash", "UPI", "Card", "Cash", "UPI"}

var demoOrderTypes = []string{
	models.OrderTypeDineIn,
	models.OrderTypeDineIn,
	models.OrderTypeTakeaway,
	models.OrderTypeDelivery,
	models.OrderTypePortal,
}

// SynthesizeOrders fabricates a demonstration dataset for an empty window
// so first-run restaurants see a populated report instead of a blank one.
// The shape is deterministic (order count, statuses, paid totals that sum
// correctly); the values are randomized. Results carry synthetic menu refs
// so category resolution works, and every order satisfies
// total == sum(line totals).
func SynthesizeOrders(restaurantID string, rng models.DateRange) ([]models.Order, map[string]models.MenuItemRef) {
	menu := make(map[string]models.MenuItemRef, len(demoMenu))
	menuIDs := make([]string, 0, len(demoMenu))
	prices := make(map[string]float64, len(demoMenu))
	for _, ref := range demoMenu {
		id := cuid.New()
		menu[id] = models.MenuItemRef{ID: id, Name: ref.Name, Category: ref.Category}
		menuIDs = append(menuIDs, id)
		prices[id] = fake.Float64(2, 4, 28)
	}

	span := rng.End.Sub(rng.Start)
	orderCount := 24

	orders := make([]models.Order, 0, orderCount)
	for i := 0; i < orderCount; i++ {
		createdAt := rng.Start.Add(time.Duration(float64(span) * float64(i) / float64(orderCount)))
		// Bias toward lunch and dinner hours.
		hour := []int{12, 13, 19, 20, 21, 18, 11, 14}[i%8]
		createdAt = time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), hour, rand.Intn(60), 0, 0, createdAt.Location())
		if createdAt.After(rng.End) {
			createdAt = rng.End
		}

		lineCount := 1 + rand.Intn(3)
		items := make([]models.OrderItem, 0, lineCount)
		subtotal := 0.0
		for j := 0; j < lineCount; j++ {
			id := menuIDs[rand.Intn(len(menuIDs))]
			quantity := 1 + rand.Intn(3)
			lineTotal := prices[id] * float64(quantity)
			items = append(items, models.OrderItem{
				MenuItemID: id,
				Name:       menu[id].Name,
				Price:      prices[id],
				Quantity:   quantity,
				Total:      lineTotal,
			})
			subtotal += lineTotal
		}

		order := models.Order{
			ID:            cuid.New(),
			RestaurantID:  restaurantID,
			Items:         items,
			Subtotal:      subtotal,
			Total:         subtotal,
			Status:        models.StatusCompleted,
			PaymentMethod: demoPayments[i%len(demoPayments)],
			PaymentStatus: models.PaymentStatusPaid,
			OrderType:     demoOrderTypes[i%len(demoOrderTypes)],
			CreatedAt:     createdAt,
		}
		if i%3 != 0 {
			order.TableID = cuid.Slug()
		}
		if i%2 == 0 {
			order.CustomerID = cuid.Slug()
		}
		orders = append(orders, order)
	}

	return orders, menu
}
