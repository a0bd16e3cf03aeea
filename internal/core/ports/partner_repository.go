package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate. The write is
	// conditional on the version the aggregate was loaded at and returns
	// errs.ErrVersionConflict when a concurrent writer got there first.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAllFree retrieves the branch's partners that are on shift and carry
	// no active delivery.
	GetAllFree(ctx context.Context, branchID kernel.UUID) ([]*partner.Partner, error)

	// GetAllByBranch retrieves every partner registered at the branch,
	// regardless of availability.
	GetAllByBranch(ctx context.Context, branchID kernel.UUID) ([]*partner.Partner, error)
}
