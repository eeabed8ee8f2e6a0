package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// createOne inserts the order row and all of its item rows in one
// transaction so a failed item insert can never leave an order without
// items behind.
func (s *Store) createOne(ctx context.Context, clientID uuid.UUID, totalAmount float64, items []*CreateOrderItemRequest) (*Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to begin tx in order store: %w",
			err,
		)
	}

	orderQuery := `INSERT INTO orders(client_id, total_amount, status)
		VALUES($1, $2, $3)
		RETURNING order_id, client_id, total_amount, status, created_at`

	var order Order
	err = tx.QueryRowContext(
		ctx,
		orderQuery,
		clientID,
		totalAmount,
		OrderStatusPending,
	).Scan(
		&order.OrderID,
		&order.ClientID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf(
			"failed to insert new order in order store: %w",
			err,
		)
	}

	itemQuery := `INSERT INTO order_items(order_id, product_id, specs, quantity)
		VALUES($1, $2, $3, $4)`

	for _, item := range items {
		_, err = tx.ExecContext(
			ctx,
			itemQuery,
			order.OrderID,
			item.ProductID,
			item.Specs,
			int(item.Quantity),
		)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf(
				"failed to insert order item in order store: %w",
				err,
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf(
			"failed to commit tx in order store: %w",
			err,
		)
	}

	return &order, nil
}

func (s *Store) findAll(ctx context.Context) ([]*OrderAndClientDTO, error) {
	query := `SELECT o.order_id, o.client_id, o.total_amount, o.status,
			o.created_at, c.name
		FROM orders o
		JOIN clients c ON c.client_id = o.client_id
		ORDER BY o.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all orders from order store: %w",
			err,
		)
	}
	defer rows.Close()

	var orders []*OrderAndClientDTO
	for rows.Next() {
		var order OrderAndClientDTO
		err := rows.Scan(
			&order.OrderID,
			&order.ClientID,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.ClientName,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan order from order store: %w",
				err,
			)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (s *Store) findByID(ctx context.Context, orderID uuid.UUID) (*OrderWithItemsDTO, error) {
	orderQuery := `SELECT o.order_id, o.client_id, o.total_amount, o.status,
			o.created_at, c.name
		FROM orders o
		JOIN clients c ON c.client_id = o.client_id
		WHERE o.order_id = $1`

	var order OrderWithItemsDTO
	err := s.db.QueryRowContext(ctx, orderQuery, orderID).Scan(
		&order.OrderID,
		&order.ClientID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.ClientName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan order from order store: %w",
			err,
		)
	}

	itemsQuery := `SELECT order_item_id, order_id, product_id, specs, quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get order items from order store: %w",
			err,
		)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		err := rows.Scan(
			&item.OrderItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Specs,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan order item from order store: %w",
				err,
			)
		}
		order.Items = append(order.Items, &item)
	}

	return &order, rows.Err()
}

// deleteOne removes the order and its items in one transaction, since the
// order owns them.
func (s *Store) deleteOne(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf(
			"failed to begin tx in order store: %w",
			err,
		)
	}

	_, err = tx.ExecContext(
		ctx,
		`DELETE FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf(
			"failed to delete order items in order store: %w",
			err,
		)
	}

	result, err := tx.ExecContext(
		ctx,
		`DELETE FROM orders WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf(
			"failed to delete order in order store: %w",
			err,
		)
	}

	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf(
			"failed to commit tx in order store: %w",
			err,
		)
	}

	return rowsDeleted, nil
}
