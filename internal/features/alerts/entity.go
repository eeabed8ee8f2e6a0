package alerts

import "time"

type AlertKind string

const (
	AlertKindOrderCreated AlertKind = "order_created"
	AlertKindStockLow     AlertKind = "stock_low"
)

// Alert is an in memory operational notification derived from domain
// events. Alerts are not persisted; the feed resets on restart.
type Alert struct {
	Kind      AlertKind `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
