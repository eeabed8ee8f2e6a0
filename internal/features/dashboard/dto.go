package dashboard

import (
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/google/uuid"
)

type Stats struct {
	TotalProducts int `json:"totalProducts"`
	TotalStock    int `json:"totalStock"`
	TotalClients  int `json:"totalClients"`
	TotalOrders   int `json:"totalOrders"`
}

type RecentOrderDTO struct {
	OrderID     uuid.UUID `json:"order_id"`
	ClientName  string    `json:"clientName"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type LowStockDTO struct {
	StockID     uuid.UUID    `json:"stock_id"`
	ProductName string       `json:"productName"`
	SellingUnit string       `json:"sellingUnit"`
	Specs       specs.Values `json:"specs"`
	Quantity    int          `json:"quantity"`

	// Severity is display metadata derived from the quantity, never stored:
	// "critical" below 5, otherwise "low".
	Severity string `json:"severity"`
}

type GetDashboardResponse struct {
	Stats        Stats             `json:"stats"`
	RecentOrders []*RecentOrderDTO `json:"recentOrders"`
	LowStock     []*LowStockDTO    `json:"lowStock"`
}
