package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Mock Storer
type mockStore struct {
	products []*Product
}

func (m *mockStore) createOne(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	product := &Product{
		ProductID:      uuid.New(),
		Name:           newProduct.Name,
		Specifications: pq.StringArray(newProduct.Specifications),
		SellingUnit:    newProduct.SellingUnit,
		CreatedAt:      time.Now(),
	}
	m.products = append(m.products, product)

	return product, nil
}

func (m *mockStore) findAll(ctx context.Context) ([]*Product, error) {
	return m.products, nil
}

func (m *mockStore) findByID(ctx context.Context, productID uuid.UUID) (*Product, error) {
	for _, product := range m.products {
		if product.ProductID == productID {
			return product, nil
		}
	}
	return nil, nil
}

func (m *mockStore) findByName(ctx context.Context, name string) (*Product, error) {
	for _, product := range m.products {
		if product.Name == name {
			return product, nil
		}
	}
	return &Product{}, nil
}

func (m *mockStore) deleteOne(ctx context.Context, productID uuid.UUID) (int64, error) {
	for i, product := range m.products {
		if product.ProductID == productID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func Test_createProduct(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	created, err := svc.createProduct(
		context.Background(),
		&CreateProductRequest{
			Name:           " POF Film ",
			Specifications: []string{"inch", "micron"},
			SellingUnit:    "rolls",
		},
	)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if created.Name != "POF Film" {
		t.Errorf("expected trimmed name 'POF Film', got '%s'", created.Name)
	}
	if len(created.Specifications) != 2 {
		t.Errorf("expected 2 specifications, got %d", len(created.Specifications))
	}
}

func Test_createProduct_duplicateName(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	req := &CreateProductRequest{
		Name:           "POF Film",
		Specifications: []string{"inch", "micron"},
		SellingUnit:    "rolls",
	}

	if _, err := svc.createProduct(context.Background(), req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.createProduct(context.Background(), req)
	if !errors.Is(err, servererrors.ErrProductAlreadyExists) {
		t.Errorf("expected ErrProductAlreadyExists, got %v", err)
	}
}

func Test_createProduct_invalidSchema(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	tests := []struct {
		name           string
		specifications []string
	}{
		{"duplicate field names", []string{"inch", "inch"}},
		{"empty field name", []string{"inch", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.createProduct(
				context.Background(),
				&CreateProductRequest{
					Name:           "Stretch Film",
					Specifications: tt.specifications,
					SellingUnit:    "rolls",
				},
			)
			if !errors.Is(err, specs.ErrInvalidSchema) {
				t.Errorf("expected ErrInvalidSchema, got %v", err)
			}
		})
	}
}

func Test_getAllProducts_search(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	for _, name := range []string{"POF Film", "Stretch Film", "Bubble Wrap"} {
		_, err := svc.createProduct(
			context.Background(),
			&CreateProductRequest{
				Name:           name,
				Specifications: []string{"inch"},
				SellingUnit:    "rolls",
			},
		)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	products, err := svc.getAllProducts(context.Background(), "film")
	if err != nil {
		t.Fatalf("getAllProducts failed: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products matching 'film', got %d", len(products))
	}

	all, err := svc.getAllProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("getAllProducts failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 products with empty search, got %d", len(all))
	}
}

func Test_deleteProduct(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	created, err := svc.createProduct(
		context.Background(),
		&CreateProductRequest{
			Name:           "POF Film",
			Specifications: []string{"inch"},
			SellingUnit:    "rolls",
		},
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.deleteProduct(context.Background(), created.ProductID); err != nil {
		t.Errorf("expected delete to succeed, got %v", err)
	}

	err = svc.deleteProduct(context.Background(), created.ProductID)
	if !errors.Is(err, servererrors.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
