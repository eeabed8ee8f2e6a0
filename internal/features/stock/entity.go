package stock

import (
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

type Stock struct {
	StockID   uuid.UUID    `json:"stock_id"`
	ProductID uuid.UUID    `json:"product_id"`
	Specs     specs.Values `json:"specs"`
	Quantity  int          `json:"quantity"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
