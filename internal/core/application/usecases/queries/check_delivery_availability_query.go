package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCheckDeliveryAvailabilityQueryIsNotConstructed = errors.New(
	"CheckDeliveryAvailabilityQuery must be created via NewCheckDeliveryAvailabilityQuery constructor",
)

// CheckDeliveryAvailabilityQuery asks whether a branch currently has any
// free delivery partner. The answer is advisory: a partner may go busy
// between the check and a later pickup attempt.
type CheckDeliveryAvailabilityQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckDeliveryAvailabilityQuery creates an availability check for a branch.
func NewCheckDeliveryAvailabilityQuery(branchID kernel.UUID) (CheckDeliveryAvailabilityQuery, error) {
	if err := branchID.Validate(); err != nil {
		return CheckDeliveryAvailabilityQuery{}, err
	}

	return CheckDeliveryAvailabilityQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckDeliveryAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckDeliveryAvailabilityQueryIsNotConstructed)
}

// BranchID returns the branch whose partner pool is checked.
func (q CheckDeliveryAvailabilityQuery) BranchID() kernel.UUID {
	return q.branchID
}
