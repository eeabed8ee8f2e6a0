package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	ProductID      uuid.UUID      `json:"product_id"`
	Name           string         `json:"name"`
	Specifications pq.StringArray `json:"specifications"`
	SellingUnit    string         `json:"selling_unit"`
	CreatedAt      time.Time      `json:"created_at"`
}
