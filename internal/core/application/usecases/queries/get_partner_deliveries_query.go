package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPartnerDeliveriesQueryIsNotConstructed = errors.New(
	"GetPartnerDeliveriesQuery must be created via NewGetPartnerDeliveriesQuery constructor",
)

// GetPartnerDeliveriesQuery retrieves the orders a delivery partner
// currently has in transit. At most one order is in transit per partner.
type GetPartnerDeliveriesQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerDeliveriesQuery creates a query for a partner's active
// deliveries.
func NewGetPartnerDeliveriesQuery(partnerID kernel.UUID) (GetPartnerDeliveriesQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerDeliveriesQuery{}, err
	}

	return GetPartnerDeliveriesQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerDeliveriesQueryIsNotConstructed)
}

// PartnerID returns the partner whose deliveries are polled.
func (q GetPartnerDeliveriesQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
