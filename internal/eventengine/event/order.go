package event

import "github.com/google/uuid"

const (
	OrderCreatedEventName EventName = "order.created"
)

type OrderCreatedEvent struct {
	OrderID     uuid.UUID
	ClientID    uuid.UUID
	TotalAmount float64
	ItemCount   int
}

func (e *OrderCreatedEvent) GetEventName() EventName {
	return OrderCreatedEventName
}
