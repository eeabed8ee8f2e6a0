package order

import (
	"context"
	"errors"
	"strings"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine/event"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/client"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/product"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

var (
	ErrNoOrderItems = errors.New("an order needs at least one item")

	// ErrInvalidOrderItems is the single aggregate rejection for item level
	// problems: a missing product, incomplete specifications, or a quantity
	// below 1 on any item.
	ErrInvalidOrderItems = errors.New(
		"every order item needs a product, completed specifications and a quantity of at least 1",
	)
)

type Storer interface {
	createOne(ctx context.Context, clientID uuid.UUID, totalAmount float64, items []*CreateOrderItemRequest) (*Order, error)
	findAll(ctx context.Context) ([]*OrderAndClientDTO, error)
	findByID(ctx context.Context, orderID uuid.UUID) (*OrderWithItemsDTO, error)
	deleteOne(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type productGetter interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*product.Product, error)
}

type clientGetter interface {
	GetByID(ctx context.Context, clientID uuid.UUID) (*client.Client, error)
}

type service struct {
	store       Storer
	products    productGetter
	clients     clientGetter
	eventEngine eventengine.RegisterPublisher
}

func NewService(store Storer, products productGetter, clients clientGetter, eventEngine eventengine.RegisterPublisher) *service {
	eventEngine.RegisterEvents(event.OrderCreatedEventName)

	return &service{
		store:       store,
		products:    products,
		clients:     clients,
		eventEngine: eventEngine,
	}
}

// createOrder validates the whole composite before any write: the client
// must exist, the order needs at least one item, and every item must
// reference a product, fill that product's specification schema completely
// and carry a quantity of at least 1. Item problems surface as one
// aggregate error. Writes happen in a single transaction in the store.
func (s *service) createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error) {
	if _, err := s.clients.GetByID(ctx, newOrder.ClientID); err != nil {
		return nil, err
	}

	if len(newOrder.Items) == 0 {
		return nil, ErrNoOrderItems
	}

	for _, item := range newOrder.Items {
		if item.ProductID == uuid.Nil {
			return nil, ErrInvalidOrderItems
		}

		referenced, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, servererrors.ErrProductNotFound) {
				return nil, ErrInvalidOrderItems
			}
			return nil, err
		}

		if err := item.Specs.Conforms(referenced.Schema()); err != nil {
			return nil, ErrInvalidOrderItems
		}

		if item.Quantity < 1 {
			return nil, ErrInvalidOrderItems
		}
	}

	order, err := s.store.createOne(
		ctx,
		newOrder.ClientID,
		TotalAmount(newOrder.Items),
		newOrder.Items,
	)
	if err != nil {
		return nil, err
	}

	createdEvent := &event.OrderCreatedEvent{
		OrderID:     order.OrderID,
		ClientID:    order.ClientID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(newOrder.Items),
	}

	s.eventEngine.Publish(
		&event.Event{
			Name:    createdEvent.GetEventName(),
			Payload: createdEvent,
		},
	)

	return order, nil
}

// TotalAmount is the deterministic order total: the item quantities summed
// at the flat placeholder rate.
func TotalAmount(items []*CreateOrderItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * UnitRate
	}

	return total
}

// getAllOrders returns orders joined with the client name, newest first. A
// non empty search keeps orders whose client name or id contains it, case
// insensitively; a status other than "" or "all" must match exactly.
func (s *service) getAllOrders(ctx context.Context, search, status string) ([]*OrderAndClientDTO, error) {
	orders, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" && (status == "" || status == "all") {
		return orders, nil
	}

	loweredSearch := strings.ToLower(search)
	filtered := make([]*OrderAndClientDTO, 0, len(orders))
	for _, order := range orders {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(order.ClientName), loweredSearch) ||
			strings.Contains(strings.ToLower(order.OrderID.String()), loweredSearch)

		matchesStatus := status == "" || status == "all" ||
			order.Status == OrderStatus(status)

		if matchesSearch && matchesStatus {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}

func (s *service) getOrder(ctx context.Context, orderID uuid.UUID) (*OrderWithItemsDTO, error) {
	order, err := s.store.findByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, servererrors.ErrOrderNotFound
	}

	return order, nil
}

func (s *service) deleteOrder(ctx context.Context, orderID uuid.UUID) error {
	rowsDeleted, err := s.store.deleteOne(ctx, orderID)
	if err != nil {
		return err
	}

	if rowsDeleted == 0 {
		return servererrors.ErrOrderNotFound
	}

	return nil
}
