package stock

import (
	"context"
	"database/sql"
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

func (s *Store) createOne(ctx context.Context, newStock *CreateStockRequest) (*Stock, error) {
	query := `INSERT INTO stock(product_id, specs, quantity)
		VALUES($1, $2, $3)
		RETURNING stock_id, product_id, specs, quantity, created_at, updated_at`

	var stock Stock
	err := s.db.QueryRowContext(
		ctx,
		query,
		newStock.ProductID,
		newStock.Specs,
		int(newStock.Quantity),
	).Scan(
		&stock.StockID,
		&stock.ProductID,
		&stock.Specs,
		&stock.Quantity,
		&stock.CreatedAt,
		&stock.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to insert new stock in stock store: %w",
			err,
		)
	}

	return &stock, nil
}

func (s *Store) findAll(ctx context.Context, productID uuid.UUID) ([]*StockAndProductDTO, error) {
	query := `SELECT s.stock_id, s.product_id, s.specs, s.quantity,
			s.created_at, s.updated_at, p.name, p.selling_unit
		FROM stock s
		JOIN products p ON p.product_id = s.product_id`

	queryParams := []any{}
	if productID != uuid.Nil {
		query += ` WHERE s.product_id = $1`
		queryParams = append(queryParams, productID)
	}

	query += ` ORDER BY s.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all stock from stock store: %w",
			err,
		)
	}
	defer rows.Close()

	var stockItems []*StockAndProductDTO
	for rows.Next() {
		var item StockAndProductDTO
		err := rows.Scan(
			&item.StockID,
			&item.ProductID,
			&item.Specs,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.ProductName,
			&item.SellingUnit,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan stock from stock store: %w",
				err,
			)
		}
		stockItems = append(stockItems, &item)
	}

	return stockItems, rows.Err()
}

func (s *Store) deleteOne(ctx context.Context, stockID uuid.UUID) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM stock WHERE stock_id = $1`,
		stockID,
	)
	if err != nil {
		return 0, fmt.Errorf(
			"failed to delete stock in stock store: %w",
			err,
		)
	}

	return result.RowsAffected()
}
