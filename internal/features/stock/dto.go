package stock

import (
	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

// Requests

type CreateStockRequest struct {
	ProductID uuid.UUID               `json:"productID" validate:"required"`
	Specs     specs.Values            `json:"specs"`
	Quantity  handlerutils.LenientInt `json:"quantity"`
}

// Responses

type StockAndProductDTO struct {
	Stock
	ProductName string `json:"productName"`
	SellingUnit string `json:"sellingUnit"`
}

type GetAllStockResponse struct {
	StockCount int                   `json:"stockCount"`
	Stock      []*StockAndProductDTO `json:"stock"`
}
