package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPartnerDeliveriesQueryHandler reads a partner's in-transit orders from
// the database.
type GetPartnerDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerDeliveriesQueryHandler creates a handler for partner
// delivery queries.
func NewGetPartnerDeliveriesQueryHandler(db *gorm.DB) GetPartnerDeliveriesQueryHandler {
	return GetPartnerDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Returns any order carrying the partner's
// assignment; statuses outside transit never carry one.
func (h GetPartnerDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerDeliveriesQuery,
) ([]OrderSummaryModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE partner_id = ?
		ORDER BY created_at
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
