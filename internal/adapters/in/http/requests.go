package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
)

// OrderItemRequest is one order line as submitted by the checkout flow.
type OrderItemRequest struct {
	MenuItemID     string `json:"menu_item_id" validate:"required,uuid"`
	Name           string `json:"name" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"required,min=1"`
	LineTotalCents int64  `json:"line_total_cents" validate:"required,min=1"`
}

// PlaceOrderRequest is the order intake payload. The money fields are
// cross-checked by a struct-level validation rule.
type PlaceOrderRequest struct {
	BranchID        string             `json:"branch_id" validate:"required,uuid"`
	OrderType       string             `json:"order_type" validate:"required,oneof=dine_in takeaway delivery"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	SubtotalCents   int64              `json:"subtotal_cents" validate:"required,min=1"`
	TaxCents        int64              `json:"tax_cents" validate:"min=0"`
	TotalCents      int64              `json:"total_cents" validate:"required,min=1"`
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string             `json:"delivery_address" validate:"required_if=OrderType delivery"`
	TableID         string             `json:"table_id" validate:"required_if=OrderType dine_in,excluded_unless=OrderType dine_in,omitempty,uuid"`
	Instructions    string             `json:"instructions"`
	PaymentMethod   string             `json:"payment_method" validate:"required,oneof=cash card online"`
}

// ChangeStatusRequest asks for one status transition.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PickupRequest is a delivery partner's claim on a ready order.
type PickupRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
}

// AvailabilityRequest toggles a partner between available and offline.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// TableStatusRequest asks for a table state change.
type TableStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=vacant cleaning"`
}

// OpenSessionRequest opens a kitchen session for a branch.
type OpenSessionRequest struct {
	BranchID string `json:"branch_id" validate:"required,uuid"`
}

// SoundRequest toggles the kitchen session's audible alert.
type SoundRequest struct {
	Enabled bool `json:"enabled"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlacedOrderResponse confirms an accepted order.
type PlacedOrderResponse struct {
	ID string `json:"id"`
}

// AlertResponse is one alerting order in a kitchen session.
type AlertResponse struct {
	OrderID string `json:"order_id"`
	Number  int64  `json:"number"`
}

// DeliveryAvailabilityResponse is the advisory delivery availability answer.
type DeliveryAvailabilityResponse struct {
	Available    bool `json:"available"`
	FreePartners int  `json:"free_partners"`
}

// OrderSummaryResponse is one order row on a role view board.
type OrderSummaryResponse struct {
	ID              string                   `json:"id"`
	Number          int64                    `json:"number"`
	OrderType       string                   `json:"order_type"`
	Status          string                   `json:"status"`
	Items           []queries.OrderLineModel `json:"items"`
	TotalCents      int64                    `json:"total_cents"`
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	DeliveryAddress string                   `json:"delivery_address,omitempty"`
	TableID         *string                  `json:"table_id,omitempty"`
	PartnerID       *string                  `json:"partner_id,omitempty"`
	Instructions    string                   `json:"instructions,omitempty"`
	PaymentStatus   string                   `json:"payment_status"`
	CreatedAt       time.Time                `json:"created_at"`
	Version         int64                    `json:"version"`
}

// TrackedOrderResponse is the customer-facing order detail with its
// full status history.
type TrackedOrderResponse struct {
	OrderSummaryResponse
	TaxCents      int64                       `json:"tax_cents"`
	PaymentMethod string                      `json:"payment_method"`
	CustomerEmail string                      `json:"customer_email,omitempty"`
	History       []queries.StatusChangeModel `json:"history"`
}

// PartnerResponse is one row on the partner availability board.
type PartnerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Availability   string  `json:"availability"`
	CurrentOrderID *string `json:"current_order_id,omitempty"`
	VehicleKind    string  `json:"vehicle_kind"`
	VehiclePlate   string  `json:"vehicle_plate"`
	Version        int64   `json:"version"`
}

// TableResponse is one row on the table map.
type TableResponse struct {
	ID             string  `json:"id"`
	Number         int     `json:"number"`
	Capacity       int     `json:"capacity"`
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"current_order_id,omitempty"`
}
