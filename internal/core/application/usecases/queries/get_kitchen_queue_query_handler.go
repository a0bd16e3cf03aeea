package queries

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/order"
)

// GetKitchenQueueQueryHandler reads the branch's cooking queue from the
// database, oldest order first so the kitchen works in placement order.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue
// queries.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query. Returns orders in pending, confirmed,
// preparing, or ready status for the branch.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]OrderSummaryModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE branch_id = ? AND status IN ?
		ORDER BY created_at
	`, query.BranchID().Bytes(),
		[]int{int(order.Pending), int(order.Confirmed), int(order.Preparing), int(order.Ready)},
	).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
