package dashboard

import (
	"context"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/stock"
)

const recentOrdersLimit = 5
const lowStockLimit = 5

const (
	severityLow      = "low"
	severityCritical = "critical"
)

// criticalStockThreshold marks the quantity below which low stock is styled
// as critical.
const criticalStockThreshold = 5

type Storer interface {
	countAll(ctx context.Context) (*Stats, error)
	findRecentOrders(ctx context.Context, limit int) ([]*RecentOrderDTO, error)
	findLowStock(ctx context.Context, threshold, limit int) ([]*LowStockDTO, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

// getDashboard assembles the read only overview: collection counts, the
// most recent orders with their client names, and stock rows under the low
// stock threshold with their product names.
func (s *service) getDashboard(ctx context.Context) (*GetDashboardResponse, error) {
	stats, err := s.store.countAll(ctx)
	if err != nil {
		return nil, err
	}

	recentOrders, err := s.store.findRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.store.findLowStock(
		ctx,
		stock.LowStockThreshold,
		lowStockLimit,
	)
	if err != nil {
		return nil, err
	}

	for _, item := range lowStock {
		item.Severity = severityFor(item.Quantity)
	}

	return &GetDashboardResponse{
		Stats:        *stats,
		RecentOrders: recentOrders,
		LowStock:     lowStock,
	}, nil
}

func severityFor(quantity int) string {
	if quantity < criticalStockThreshold {
		return severityCritical
	}

	return severityLow
}
