package stock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine/event"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/product"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Mock Storer
type mockStore struct {
	stockItems []*Stock
}

func (m *mockStore) createOne(ctx context.Context, newStock *CreateStockRequest) (*Stock, error) {
	stock := &Stock{
		StockID:   uuid.New(),
		ProductID: newStock.ProductID,
		Specs:     newStock.Specs,
		Quantity:  int(newStock.Quantity),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.stockItems = append(m.stockItems, stock)

	return stock, nil
}

func (m *mockStore) findAll(ctx context.Context, productID uuid.UUID) ([]*StockAndProductDTO, error) {
	var items []*StockAndProductDTO
	for _, stock := range m.stockItems {
		if productID != uuid.Nil && stock.ProductID != productID {
			continue
		}
		items = append(items, &StockAndProductDTO{
			Stock:       *stock,
			ProductName: "POF Film",
			SellingUnit: "rolls",
		})
	}
	return items, nil
}

func (m *mockStore) deleteOne(ctx context.Context, stockID uuid.UUID) (int64, error) {
	for i, stock := range m.stockItems {
		if stock.StockID == stockID {
			m.stockItems = append(m.stockItems[:i], m.stockItems[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Mock productGetter
type mockProducts struct {
	products map[uuid.UUID]*product.Product
}

func (m *mockProducts) GetByID(ctx context.Context, productID uuid.UUID) (*product.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, servererrors.ErrProductNotFound
	}
	return p, nil
}

// Mock event engine
type mockEventEngine struct {
	published []*event.Event
}

func (m *mockEventEngine) RegisterEvents(eventNames ...event.EventName) {}

func (m *mockEventEngine) Publish(ev *event.Event) error {
	m.published = append(m.published, ev)
	return nil
}

func newTestService() (*service, *mockStore, *mockEventEngine, *product.Product) {
	pofFilm := &product.Product{
		ProductID:      uuid.New(),
		Name:           "POF Film",
		Specifications: pq.StringArray{"inch", "micron"},
		SellingUnit:    "rolls",
	}

	store := &mockStore{}
	engine := &mockEventEngine{}
	svc := NewService(
		store,
		&mockProducts{
			products: map[uuid.UUID]*product.Product{
				pofFilm.ProductID: pofFilm,
			},
		},
		engine,
	)

	return svc, store, engine, pofFilm
}

func Test_createStock(t *testing.T) {
	svc, store, engine, pofFilm := newTestService()

	created, err := svc.createStock(
		context.Background(),
		&CreateStockRequest{
			ProductID: pofFilm.ProductID,
			Specs:     specs.Values{"inch": "12", "micron": "20"},
			Quantity:  50,
		},
	)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if created.Quantity != 50 {
		t.Errorf("expected quantity 50, got %d", created.Quantity)
	}
	if len(store.stockItems) != 1 {
		t.Errorf("expected 1 stock row, got %d", len(store.stockItems))
	}

	// 50 is comfortably above the threshold, no low stock event
	if len(engine.published) != 0 {
		t.Errorf("expected no events, got %d", len(engine.published))
	}
}

func Test_createStock_rejections(t *testing.T) {
	svc, _, _, pofFilm := newTestService()

	tests := []struct {
		name    string
		request *CreateStockRequest
		wantErr error
	}{
		{
			"unknown product",
			&CreateStockRequest{
				ProductID: uuid.New(),
				Specs:     specs.Values{"inch": "12", "micron": "20"},
				Quantity:  5,
			},
			servererrors.ErrProductNotFound,
		},
		{
			"empty spec value",
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     specs.Values{"inch": "12", "micron": ""},
				Quantity:  5,
			},
			specs.ErrIncompleteSpecs,
		},
		{
			"missing spec key",
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     specs.Values{"inch": "12"},
				Quantity:  5,
			},
			specs.ErrIncompleteSpecs,
		},
		{
			"stale keys from another product",
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     specs.Values{"gsm": "80", "width": "1200"},
				Quantity:  5,
			},
			specs.ErrIncompleteSpecs,
		},
		{
			"zero quantity",
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     specs.Values{"inch": "12", "micron": "20"},
				Quantity:  0,
			},
			ErrNonPositiveQuantity,
		},
		{
			"negative quantity",
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     specs.Values{"inch": "12", "micron": "20"},
				Quantity:  -3,
			},
			ErrNonPositiveQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.createStock(context.Background(), tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func Test_createStock_publishesLowStockEvent(t *testing.T) {
	svc, _, engine, pofFilm := newTestService()

	_, err := svc.createStock(
		context.Background(),
		&CreateStockRequest{
			ProductID: pofFilm.ProductID,
			Specs:     specs.Values{"inch": "12", "micron": "20"},
			Quantity:  5,
		},
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(engine.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(engine.published))
	}

	lowEvent, ok := engine.published[0].Payload.(*event.StockLowEvent)
	if !ok {
		t.Fatalf("expected StockLowEvent payload, got %T", engine.published[0].Payload)
	}
	if lowEvent.Quantity != 5 {
		t.Errorf("expected event quantity 5, got %d", lowEvent.Quantity)
	}
	if lowEvent.ProductName != "POF Film" {
		t.Errorf("expected event product name 'POF Film', got '%s'", lowEvent.ProductName)
	}
}

func Test_getAllStock_search(t *testing.T) {
	svc, _, _, pofFilm := newTestService()

	seed := []specs.Values{
		{"inch": "12", "micron": "20"},
		{"inch": "16", "micron": "25"},
	}
	for _, values := range seed {
		_, err := svc.createStock(
			context.Background(),
			&CreateStockRequest{
				ProductID: pofFilm.ProductID,
				Specs:     values,
				Quantity:  40,
			},
		)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	// matches a spec value
	items, err := svc.getAllStock(context.Background(), "25", uuid.Nil)
	if err != nil {
		t.Fatalf("getAllStock failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item matching spec value '25', got %d", len(items))
	}

	// matches the joined product name
	items, err = svc.getAllStock(context.Background(), "pof", uuid.Nil)
	if err != nil {
		t.Fatalf("getAllStock failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items matching product name, got %d", len(items))
	}

	// no match
	items, err = svc.getAllStock(context.Background(), "does-not-exist", uuid.Nil)
	if err != nil {
		t.Fatalf("getAllStock failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no matches, got %d", len(items))
	}
}

func Test_deleteStock_unknownID(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.deleteStock(context.Background(), uuid.New())
	if !errors.Is(err, servererrors.ErrStockNotFound) {
		t.Errorf("expected ErrStockNotFound, got %v", err)
	}
}
