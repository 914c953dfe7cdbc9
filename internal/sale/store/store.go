package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

// Store reads and writes the transactions table. The *sql.DB pool is handed
// in by the caller; nothing here holds package-level state, so tests can
// substitute their own handle.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectSaleColumns = `
	id, transaction_id, date, customer_id, customer_name, phone_number, gender,
	age, customer_region, customer_type, product_id, product_name, brand,
	product_category, tags, quantity, price_per_unit, discount_percentage,
	total_amount, final_amount, payment_method, order_status, delivery_type,
	store_id, store_location, salesperson_id, employee_name
`

// scanSale reads one row in selectSaleColumns order.
func scanSale(s scanner) (*sale.Sale, error) {
	var row sale.Sale

	var date sql.NullTime

	var age sql.NullInt64

	if err := s.Scan(
		&row.ID, &row.TransactionID, &date, &row.CustomerID, &row.CustomerName,
		&row.PhoneNumber, &row.Gender, &age, &row.CustomerRegion,
		&row.CustomerType, &row.ProductID, &row.ProductName, &row.Brand,
		&row.ProductCategory, &row.Tags, &row.Quantity, &row.PricePerUnit,
		&row.DiscountPercentage, &row.TotalAmount, &row.FinalAmount,
		&row.PaymentMethod, &row.OrderStatus, &row.DeliveryType, &row.StoreID,
		&row.StoreLocation, &row.SalespersonID, &row.EmployeeName,
	); err != nil {
		return nil, err
	}

	if date.Valid {
		d := date.Time
		row.Date = &d
	}

	if age.Valid {
		a := int(age.Int64)
		row.Age = &a
	}

	return &row, nil
}

// ListSales runs the data query: filter predicate, whitelisted ORDER BY, then
// LIMIT/OFFSET appended as the final two parameters.
func (s *Store) ListSales(ctx context.Context, q sale.ListQuery) ([]*sale.Sale, error) {
	where, args := filterClause(q.Filter)

	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM transactions %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		selectSaleColumns, where, orderColumn(q.SortBy), direction,
		len(args)+1, len(args)+2,
	)

	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		row, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	return sales, nil
}

// CountSales runs the twin count query with the identical predicate and args.
func (s *Store) CountSales(ctx context.Context, f sale.ListFilter) (int64, error) {
	where, args := filterClause(f)

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting sales: %w", err)
	}

	return total, nil
}

// SumStats aggregates over the filtered set. SUM over zero rows is NULL and
// is returned as such.
func (s *Store) SumStats(ctx context.Context, f sale.ListFilter) (*sale.Stats, error) {
	where, args := filterClause(f)

	query := `
		SELECT
			SUM(quantity) AS total_units,
			SUM(total_amount) AS total_amount,
			SUM(final_amount) AS total_final
		FROM transactions ` + where

	var stats sale.Stats
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalUnits, &stats.TotalAmount, &stats.TotalFinal,
	); err != nil {
		return nil, fmt.Errorf("summing stats: %w", err)
	}

	return &stats, nil
}

// InsertSale stores one imported row. Used only by the offline bulk importer.
func (s *Store) InsertSale(ctx context.Context, p sale.CreateParams) error {
	query := `
		INSERT INTO transactions (
			transaction_id, date, customer_id, customer_name, phone_number, gender,
			age, customer_region, customer_type, product_id, product_name, brand,
			product_category, tags, quantity, price_per_unit, discount_percentage,
			total_amount, final_amount, payment_method, order_status, delivery_type,
			store_id, store_location, salesperson_id, employee_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
		)
	`

	var age any
	if p.Age != nil {
		age = *p.Age
	}

	var date any
	if p.Date != nil {
		date = *p.Date
	}

	_, err := s.db.ExecContext(ctx, query,
		p.TransactionID, date, p.CustomerID, p.CustomerName, p.PhoneNumber,
		p.Gender, age, p.CustomerRegion, p.CustomerType, p.ProductID,
		p.ProductName, p.Brand, p.ProductCategory, p.Tags, p.Quantity,
		p.PricePerUnit, p.DiscountPercentage, p.TotalAmount, p.FinalAmount,
		p.PaymentMethod, p.OrderStatus, p.DeliveryType, p.StoreID,
		p.StoreLocation, p.SalespersonID, p.EmployeeName,
	)
	if err != nil {
		return fmt.Errorf("inserting sale: %w", err)
	}

	return nil
}
