package event

import "github.com/google/uuid"

const (
	StockLowEventName EventName = "stock.low"
)

// StockLowEvent is published when a stock row is written with a quantity
// below the dashboard's low stock threshold.
type StockLowEvent struct {
	StockID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
}

func (e *StockLowEvent) GetEventName() EventName {
	return StockLowEventName
}
