package queries

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/order"
)

// GetPickupQueueQueryHandler reads the claimable delivery orders for a
// branch: ready, delivery type, no partner assigned yet.
type GetPickupQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupQueueQueryHandler creates a handler for pickup queue queries.
func NewGetPickupQueueQueryHandler(db *gorm.DB) GetPickupQueueQueryHandler {
	return GetPickupQueueQueryHandler{db: db}
}

// Handle executes the query, oldest order first so the longest-waiting
// delivery is claimed first.
func (h GetPickupQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPickupQueueQuery,
) ([]OrderSummaryModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE branch_id = ?
		  AND order_type = ?
		  AND status = ?
		  AND partner_id IS NULL
		ORDER BY created_at
	`, query.BranchID().Bytes(), int(order.TypeDelivery), int(order.Ready)).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
