package stock

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine/event"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/product"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

// LowStockThreshold is the quantity below which a stock row counts as low.
// Shared with the dashboard view; display only, never stored.
const LowStockThreshold = 10

var ErrNonPositiveQuantity = fmt.Errorf("quantity must be greater than 0")

type Storer interface {
	createOne(ctx context.Context, newStock *CreateStockRequest) (*Stock, error)
	findAll(ctx context.Context, productID uuid.UUID) ([]*StockAndProductDTO, error)
	deleteOne(ctx context.Context, stockID uuid.UUID) (int64, error)
}

type productGetter interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*product.Product, error)
}

type service struct {
	store       Storer
	products    productGetter
	eventEngine eventengine.RegisterPublisher
}

func NewService(store Storer, products productGetter, eventEngine eventengine.RegisterPublisher) *service {
	eventEngine.RegisterEvents(event.StockLowEventName)

	return &service{
		store:       store,
		products:    products,
		eventEngine: eventEngine,
	}
}

// createStock validates the request against the referenced product's
// specification schema before writing: the product must exist, the spec
// values must fill the schema completely, and the quantity must be positive.
func (s *service) createStock(ctx context.Context, newStock *CreateStockRequest) (*Stock, error) {
	referenced, err := s.products.GetByID(ctx, newStock.ProductID)
	if err != nil {
		return nil, err
	}

	if err := newStock.Specs.Conforms(referenced.Schema()); err != nil {
		return nil, err
	}

	if newStock.Quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	created, err := s.store.createOne(ctx, newStock)
	if err != nil {
		return nil, err
	}

	if created.Quantity < LowStockThreshold {
		lowEvent := &event.StockLowEvent{
			StockID:     created.StockID,
			ProductID:   created.ProductID,
			ProductName: referenced.Name,
			Quantity:    created.Quantity,
		}

		s.eventEngine.Publish(
			&event.Event{
				Name:    lowEvent.GetEventName(),
				Payload: lowEvent,
			},
		)
	}

	return created, nil
}

// getAllStock returns stock joined with product info, newest first. A non
// empty search keeps rows whose product name or any spec value contains it,
// case insensitively. A non nil productID restricts to that product.
func (s *service) getAllStock(ctx context.Context, search string, productID uuid.UUID) ([]*StockAndProductDTO, error) {
	stockItems, err := s.store.findAll(ctx, productID)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return stockItems, nil
	}

	loweredSearch := strings.ToLower(search)
	filtered := make([]*StockAndProductDTO, 0, len(stockItems))
	for _, item := range stockItems {
		if strings.Contains(strings.ToLower(item.ProductName), loweredSearch) ||
			item.Specs.Matches(search) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func (s *service) deleteStock(ctx context.Context, stockID uuid.UUID) error {
	rowsDeleted, err := s.store.deleteOne(ctx, stockID)
	if err != nil {
		return err
	}

	if rowsDeleted == 0 {
		return servererrors.ErrStockNotFound
	}

	return nil
}
