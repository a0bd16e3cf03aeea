package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPickupQueueQueryIsNotConstructed = errors.New(
	"GetPickupQueueQuery must be created via NewGetPickupQueueQuery constructor",
)

// GetPickupQueueQuery retrieves the branch's delivery orders that are ready
// and waiting for a partner to claim them. Polled by the delivery view.
type GetPickupQueueQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupQueueQuery creates a query for a branch's pickup queue.
func NewGetPickupQueueQuery(branchID kernel.UUID) (GetPickupQueueQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetPickupQueueQuery{}, err
	}

	return GetPickupQueueQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupQueueQueryIsNotConstructed)
}

// BranchID returns the branch whose pickup queue is polled.
func (q GetPickupQueueQuery) BranchID() kernel.UUID {
	return q.branchID
}
