package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OrderLineModel is one order line inside an order read model.
type OrderLineModel struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// StatusChangeModel is one entry of an order's status history.
type StatusChangeModel struct {
	Status string    `json:"status"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}

// OrderSummaryModel is the board row every role view shares: enough to show
// an order on a queue without its full detail.
type OrderSummaryModel struct {
	ID              kernel.UUID
	Number          int64
	OrderType       string
	Status          string
	Items           []OrderLineModel
	TotalCents      int64
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	TableID         *kernel.UUID
	PartnerID       *kernel.UUID
	Instructions    string
	PaymentStatus   string
	CreatedAt       time.Time
	Version         int64
}
