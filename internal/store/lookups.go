package store

import (
	"context"

	"restro-analytics-service/internal/models"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lookups resolve display labels only. Missing rows are simply absent from
// the returned maps; the analytics layer substitutes placeholder labels.
type Lookups struct {
	db *pgxpool.Pool
}

func NewLookups(db *pgxpool.Pool) *Lookups {
	return &Lookups{db: db}
}

func (l *Lookups) MenuItems(ctx context.Context, restaurantID string) (map[string]models.MenuItemRef, error) {
	rows, err := l.db.Query(ctx, `
		select id, name, category from menu_items where restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string]models.MenuItemRef)
	for rows.Next() {
		var item models.MenuItemRef
		var category pgtype.Text
		if err := rows.Scan(&item.ID, &item.Name, &category); err != nil {
			return nil, err
		}
		item.Category = textValue(category)
		items[item.ID] = item
	}
	return items, rows.Err()
}

func (l *Lookups) Tables(ctx context.Context, restaurantID string) (map[string]models.TableRef, error) {
	rows, err := l.db.Query(ctx, `
		select id, number, area from restaurant_tables where restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]models.TableRef)
	for rows.Next() {
		var table models.TableRef
		var area pgtype.Text
		if err := rows.Scan(&table.ID, &table.Number, &area); err != nil {
			return nil, err
		}
		table.Area = textValue(area)
		tables[table.ID] = table
	}
	return tables, rows.Err()
}

func (l *Lookups) Customers(ctx context.Context, restaurantID string) (map[string]models.CustomerRef, error) {
	rows, err := l.db.Query(ctx, `
		select id, name from customers where restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make(map[string]models.CustomerRef)
	for rows.Next() {
		var customer models.CustomerRef
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, err
		}
		customers[customer.ID] = customer
	}
	return customers, rows.Err()
}

func (l *Lookups) Staff(ctx context.Context, restaurantID string) (map[string]models.StaffRef, error) {
	rows, err := l.db.Query(ctx, `
		select id, name from staff where restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make(map[string]models.StaffRef)
	for rows.Next() {
		var member models.StaffRef
		if err := rows.Scan(&member.ID, &member.Name); err != nil {
			return nil, err
		}
		staff[member.ID] = member
	}
	return staff, rows.Err()
}
