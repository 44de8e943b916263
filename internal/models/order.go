package models

import "time"

// Order statuses as stored by the back office.
const (
	StatusPlaced    = "placed"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Fulfillment types.
const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
	OrderTypePortal   = "portal"
)

const PaymentStatusPaid = "paid"

type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
	Notes      string  `json:"notes,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	RestaurantID  string      `json:"restaurantId"`
	TableID       string      `json:"tableId,omitempty"`
	CustomerID    string      `json:"customerId,omitempty"`
	StaffID       string      `json:"staffId,omitempty"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	OrderType     string      `json:"orderType"`
	// Legacy clients encode provenance ("Customer Portal") or the table
	// label inside notes instead of a structured field.
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Revenue eligibility: completed and actually paid.
func (o Order) RevenueEligible() bool {
	return o.Status == StatusCompleted && o.PaymentStatus == PaymentStatusPaid
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Duration is inclusive of both endpoints.
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Reference data resolved through lookups; absence falls back to
// placeholder labels downstream.
type MenuItemRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type TableRef struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Area   string `json:"area,omitempty"`
}

type CustomerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StaffRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
