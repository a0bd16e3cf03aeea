package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves the branch's cooking queue: every order
// the kitchen still has work on, from freshly placed through ready for
// handoff. Polled by the kitchen view.
type GetKitchenQueueQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query for a branch's kitchen queue.
func NewGetKitchenQueueQuery(branchID kernel.UUID) (GetKitchenQueueQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetKitchenQueueQuery{}, err
	}

	return GetKitchenQueueQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// BranchID returns the branch whose queue is polled.
func (q GetKitchenQueueQuery) BranchID() kernel.UUID {
	return q.branchID
}
