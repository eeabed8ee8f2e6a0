package product

import (
	"context"
	"strings"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, newProduct *CreateProductRequest) (*Product, error)
	findAll(ctx context.Context) ([]*Product, error)
	findByID(ctx context.Context, productID uuid.UUID) (*Product, error)
	findByName(ctx context.Context, name string) (*Product, error)
	deleteOne(ctx context.Context, productID uuid.UUID) (int64, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	newProduct.Name = strings.TrimSpace(newProduct.Name)
	newProduct.SellingUnit = strings.TrimSpace(newProduct.SellingUnit)
	for i, name := range newProduct.Specifications {
		newProduct.Specifications[i] = strings.TrimSpace(name)
	}

	if err := specs.Schema(newProduct.Specifications).Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.findByName(ctx, newProduct.Name)
	if err != nil {
		return nil, err
	}

	if existing.ProductID != uuid.Nil {
		return nil, servererrors.ErrProductAlreadyExists
	}

	return s.store.createOne(ctx, newProduct)
}

func (s *service) getAllProducts(ctx context.Context, search string) ([]*Product, error) {
	products, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return products, nil
	}

	// the list is small and already ordered by name, so the free text filter
	// runs here where it can be unit tested
	search = strings.ToLower(search)
	filtered := make([]*Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), search) {
			filtered = append(filtered, product)
		}
	}

	return filtered, nil
}

func (s *service) getProduct(ctx context.Context, productID uuid.UUID) (*Product, error) {
	product, err := s.store.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, servererrors.ErrProductNotFound
	}

	return product, nil
}

func (s *service) deleteProduct(ctx context.Context, productID uuid.UUID) error {
	rowsDeleted, err := s.store.deleteOne(ctx, productID)
	if err != nil {
		return err
	}

	if rowsDeleted == 0 {
		return servererrors.ErrProductNotFound
	}

	return nil
}

// GetByID looks a product up for another feature's service, e.g. stock and
// order validation against the product's specification schema.
func (s *service) GetByID(ctx context.Context, productID uuid.UUID) (*Product, error) {
	return s.getProduct(ctx, productID)
}

// Schema returns the product's specification schema.
func (p *Product) Schema() specs.Schema {
	return specs.Schema(p.Specifications)
}
