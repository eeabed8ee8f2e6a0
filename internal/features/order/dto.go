package order

import (
	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

// Requests

type CreateOrderItemRequest struct {
	ProductID uuid.UUID               `json:"productID"`
	Specs     specs.Values            `json:"specs"`
	Quantity  handlerutils.LenientInt `json:"quantity"`
}

type CreateOrderRequest struct {
	ClientID uuid.UUID                 `json:"clientID" validate:"required"`
	Items    []*CreateOrderItemRequest `json:"items"`
}

// Responses

type OrderAndClientDTO struct {
	Order
	ClientName string `json:"clientName"`
}

type OrderWithItemsDTO struct {
	OrderAndClientDTO
	Items []*OrderItem `json:"items"`
}

type GetAllOrdersResponse struct {
	OrdersCount int                  `json:"ordersCount"`
	Orders      []*OrderAndClientDTO `json:"orders"`
}
