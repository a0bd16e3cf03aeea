package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every non-terminal order at a branch.
// Polled by the admin dashboard.
type GetActiveOrdersQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a branch's active orders.
func NewGetActiveOrdersQuery(branchID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// BranchID returns the branch being monitored.
func (q GetActiveOrdersQuery) BranchID() kernel.UUID {
	return q.branchID
}
