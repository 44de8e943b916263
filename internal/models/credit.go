package models

import "time"

// Credit ledger statuses derived from received amounts, never stored.
const (
	CreditPending       = "pending"
	CreditPartiallyPaid = "partially_paid"
	CreditPaid          = "paid"
)

type CreditPayment struct {
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	PaidAt time.Time `json:"paidAt"`
}

type CreditTransaction struct {
	ID             string          `json:"id"`
	CustomerName   string          `json:"customerName"`
	CustomerPhone  string          `json:"customerPhone,omitempty"`
	OrderID        string          `json:"orderId"`
	TableLabel     string          `json:"tableLabel,omitempty"`
	TotalAmount    float64         `json:"totalAmount"`
	AmountReceived float64         `json:"amountReceived"`
	PaymentHistory []CreditPayment `json:"paymentHistory"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PaidTotal sums subsequent payments recorded against the credit.
func (c CreditTransaction) PaidTotal() float64 {
	total := 0.0
	for _, p := range c.PaymentHistory {
		total += p.Amount
	}
	return total
}

// Remaining clamps at zero: a ledger row claiming more received than owed
// is treated as settled, not trusted.
func (c CreditTransaction) Remaining() float64 {
	remaining := c.TotalAmount - c.AmountReceived - c.PaidTotal()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c CreditTransaction) Status() string {
	remaining := c.Remaining()
	if remaining <= 0 {
		return CreditPaid
	}
	if c.AmountReceived > 0 || c.PaidTotal() > 0 {
		return CreditPartiallyPaid
	}
	return CreditPending
}
