package order

import (
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// UnitRate is the placeholder flat rate used to compute order totals while
// no real pricing model exists.
const UnitRate = 100.00

type Order struct {
	OrderID     uuid.UUID   `json:"order_id"`
	ClientID    uuid.UUID   `json:"client_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem is exclusively owned by its order: items are created in the same
// transaction as the order row and deleted with it.
type OrderItem struct {
	OrderItemID uuid.UUID    `json:"order_item_id"`
	OrderID     uuid.UUID    `json:"order_id"`
	ProductID   uuid.UUID    `json:"product_id"`
	Specs       specs.Values `json:"specs"`
	Quantity    int          `json:"quantity"`
	CreatedAt   time.Time    `json:"created_at"`
}
