package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPartnersBoardQueryIsNotConstructed = errors.New(
	"GetPartnersBoardQuery must be created via NewGetPartnersBoardQuery constructor",
)

// GetPartnersBoardQuery retrieves every delivery partner at a branch with
// their availability and current assignment. Polled by the admin dashboard
// and used for delivery availability checks.
type GetPartnersBoardQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnersBoardQuery creates a query for a branch's partner board.
func NewGetPartnersBoardQuery(branchID kernel.UUID) (GetPartnersBoardQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetPartnersBoardQuery{}, err
	}

	return GetPartnersBoardQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersBoardQueryIsNotConstructed)
}

// BranchID returns the branch whose partners are listed.
func (q GetPartnersBoardQuery) BranchID() kernel.UUID {
	return q.branchID
}

// PartnerModel is one row of the partner board.
type PartnerModel struct {
	ID             kernel.UUID
	Name           string
	Availability   string
	CurrentOrderID *kernel.UUID
	VehicleKind    string
	VehiclePlate   string
	Version        int64
}
