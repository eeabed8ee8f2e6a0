package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	query := `INSERT INTO products(name, specifications, selling_unit)
		VALUES($1, $2, $3)
		RETURNING product_id, name, specifications, selling_unit, created_at`

	var product Product
	err := s.db.QueryRowContext(
		ctx,
		query,
		newProduct.Name,
		pq.StringArray(newProduct.Specifications),
		newProduct.SellingUnit,
	).Scan(
		&product.ProductID,
		&product.Name,
		&product.Specifications,
		&product.SellingUnit,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to insert new product in product store: %w",
			err,
		)
	}

	return &product, nil
}

func (s *Store) findAll(ctx context.Context) ([]*Product, error) {
	query := `SELECT product_id, name, specifications, selling_unit, created_at
		FROM products ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all products from product store: %w",
			err,
		)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var product Product
		if err := scanRowsIntoProduct(rows, &product); err != nil {
			return nil, fmt.Errorf(
				"failed to scan product from product store: %w",
				err,
			)
		}
		products = append(products, &product)
	}

	return products, rows.Err()
}

func (s *Store) findByID(ctx context.Context, productID uuid.UUID) (*Product, error) {
	query := `SELECT product_id, name, specifications, selling_unit, created_at
		FROM products WHERE product_id = $1`

	var product Product
	err := s.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ProductID,
		&product.Name,
		&product.Specifications,
		&product.SellingUnit,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan product from product store: %w",
			err,
		)
	}

	return &product, nil
}

func (s *Store) findByName(ctx context.Context, name string) (*Product, error) {
	query := `SELECT product_id, name, specifications, selling_unit, created_at
		FROM products WHERE name = $1`

	var product Product
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&product.ProductID,
		&product.Name,
		&product.Specifications,
		&product.SellingUnit,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Product{}, nil
		}

		return nil, fmt.Errorf(
			"failed to scan product from product store: %w",
			err,
		)
	}

	return &product, nil
}

func (s *Store) deleteOne(ctx context.Context, productID uuid.UUID) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM products WHERE product_id = $1`,
		productID,
	)
	if err != nil {
		return 0, fmt.Errorf(
			"failed to delete product in product store: %w",
			err,
		)
	}

	return result.RowsAffected()
}

func scanRowsIntoProduct(rows *sql.Rows, product *Product) error {
	return rows.Scan(
		&product.ProductID,
		&product.Name,
		&product.Specifications,
		&product.SellingUnit,
		&product.CreatedAt,
	)
}
