package dashboard

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) countAll(ctx context.Context) (*Stats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM products),
		(SELECT COUNT(*) FROM stock),
		(SELECT COUNT(*) FROM clients),
		(SELECT COUNT(*) FROM orders)`

	var stats Stats
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalProducts,
		&stats.TotalStock,
		&stats.TotalClients,
		&stats.TotalOrders,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get collection counts from dashboard store: %w",
			err,
		)
	}

	return &stats, nil
}

func (s *Store) findRecentOrders(ctx context.Context, limit int) ([]*RecentOrderDTO, error) {
	query := `SELECT o.order_id, c.name, o.total_amount, o.status, o.created_at
		FROM orders o
		JOIN clients c ON c.client_id = o.client_id
		ORDER BY o.created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get recent orders from dashboard store: %w",
			err,
		)
	}
	defer rows.Close()

	var orders []*RecentOrderDTO
	for rows.Next() {
		var order RecentOrderDTO
		err := rows.Scan(
			&order.OrderID,
			&order.ClientName,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan recent order from dashboard store: %w",
				err,
			)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (s *Store) findLowStock(ctx context.Context, threshold, limit int) ([]*LowStockDTO, error) {
	query := `SELECT s.stock_id, p.name, p.selling_unit, s.specs, s.quantity
		FROM stock s
		JOIN products p ON p.product_id = s.product_id
		WHERE s.quantity < $1
		ORDER BY s.quantity
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get low stock from dashboard store: %w",
			err,
		)
	}
	defer rows.Close()

	var lowStock []*LowStockDTO
	for rows.Next() {
		var item LowStockDTO
		err := rows.Scan(
			&item.StockID,
			&item.ProductName,
			&item.SellingUnit,
			&item.Specs,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan low stock from dashboard store: %w",
				err,
			)
		}
		lowStock = append(lowStock, &item)
	}

	return lowStock, rows.Err()
}
