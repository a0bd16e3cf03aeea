package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetTablesQueryIsNotConstructed = errors.New(
	"GetTablesQuery must be created via NewGetTablesQuery constructor",
)

// GetTablesQuery retrieves every dine-in table at a branch with its state.
// Polled by the waiter and admin views.
type GetTablesQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query for a branch's tables.
func NewGetTablesQuery(branchID kernel.UUID) (GetTablesQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetTablesQuery{}, err
	}

	return GetTablesQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// BranchID returns the branch whose tables are listed.
func (q GetTablesQuery) BranchID() kernel.UUID {
	return q.branchID
}

// TableModel is one row of the table board.
type TableModel struct {
	ID             kernel.UUID
	Number         int
	Capacity       int
	Status         string
	CurrentOrderID *kernel.UUID
}
