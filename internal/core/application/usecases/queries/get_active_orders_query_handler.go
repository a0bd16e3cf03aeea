package queries

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads every non-terminal order at a branch.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order
// queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Completed and cancelled orders are excluded.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderSummaryModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE branch_id = ? AND status NOT IN ?
		ORDER BY created_at
	`, query.BranchID().Bytes(), []int{int(order.Completed), int(order.Cancelled)}).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
