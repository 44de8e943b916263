package store

import (
	"context"
	"encoding/json"
	"time"

	"restro-analytics-service/internal/models"
	"restro-analytics-service/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `
	id, restaurant_id, table_id, customer_id, staff_id, items,
	subtotal, tax_amount, discount_amount, total_amount,
	status, payment_method, payment_status, order_type, notes, created_at
`

type PostgresOrderSource struct {
	db *pgxpool.Pool
}

func NewPostgresOrderSource(db *pgxpool.Pool) *PostgresOrderSource {
	return &PostgresOrderSource{db: db}
}

func (s *PostgresOrderSource) FetchRangeOrdered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, `
		select `+orderColumns+`
		from orders
		where restaurant_id = $1
		  and created_at >= $2
		  and created_at <= $3
		order by created_at desc
		limit $4
	`, restaurantID, start, end, limit)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (s *PostgresOrderSource) FetchRangeUnordered(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, `
		select `+orderColumns+`
		from orders
		where restaurant_id = $1
		  and created_at >= $2
		  and created_at <= $3
		limit $4
	`, restaurantID, start, end, limit)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (s *PostgresOrderSource) FetchByRestaurant(ctx context.Context, restaurantID string) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, `
		select `+orderColumns+`
		from orders
		where restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var (
			order         models.Order
			tableID       pgtype.Text
			customerID    pgtype.Text
			staffID       pgtype.Text
			itemsRaw      []byte
			subtotal      pgtype.Numeric
			tax           pgtype.Numeric
			discount      pgtype.Numeric
			total         pgtype.Numeric
			paymentMethod pgtype.Text
			paymentStatus pgtype.Text
			notes         pgtype.Text
		)
		if err := rows.Scan(&order.ID, &order.RestaurantID, &tableID, &customerID, &staffID, &itemsRaw,
			&subtotal, &tax, &discount, &total,
			&order.Status, &paymentMethod, &paymentStatus, &order.OrderType, &notes, &order.CreatedAt); err != nil {
			return nil, err
		}
		order.TableID = textValue(tableID)
		order.CustomerID = textValue(customerID)
		order.StaffID = textValue(staffID)
		order.PaymentMethod = textValue(paymentMethod)
		order.PaymentStatus = textValue(paymentStatus)
		order.Notes = textValue(notes)
		order.Subtotal = utils.NumericToFloat64(subtotal)
		order.Tax = utils.NumericToFloat64(tax)
		order.Discount = utils.NumericToFloat64(discount)
		order.Total = utils.NumericToFloat64(total)
		if len(itemsRaw) > 0 {
			if err := json.Unmarshal(itemsRaw, &order.Items); err != nil {
				return nil, err
			}
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

type PostgresCreditSource struct {
	db *pgxpool.Pool
}

func NewPostgresCreditSource(db *pgxpool.Pool) *PostgresCreditSource {
	return &PostgresCreditSource{db: db}
}

func (s *PostgresCreditSource) FetchAll(ctx context.Context, restaurantID string) ([]models.CreditTransaction, error) {
	rows, err := s.db.Query(ctx, `
		select id, customer_name, customer_phone, order_id, table_label,
		       total_amount, amount_received, payment_history, created_at
		from credit_transactions
		where restaurant_id = $1
		order by created_at desc
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	credits := make([]models.CreditTransaction, 0)
	for rows.Next() {
		var (
			credit     models.CreditTransaction
			phone      pgtype.Text
			tableLabel pgtype.Text
			total      pgtype.Numeric
			received   pgtype.Numeric
			historyRaw []byte
		)
		if err := rows.Scan(&credit.ID, &credit.CustomerName, &phone, &credit.OrderID, &tableLabel,
			&total, &received, &historyRaw, &credit.CreatedAt); err != nil {
			return nil, err
		}
		credit.CustomerPhone = textValue(phone)
		credit.TableLabel = textValue(tableLabel)
		credit.TotalAmount = utils.NumericToFloat64(total)
		credit.AmountReceived = utils.NumericToFloat64(received)
		if len(historyRaw) > 0 {
			if err := json.Unmarshal(historyRaw, &credit.PaymentHistory); err != nil {
				return nil, err
			}
		}
		credits = append(credits, credit)
	}
	return credits, rows.Err()
}

func textValue(value pgtype.Text) string {
	if !value.Valid {
		return ""
	}
	return value.String
}
