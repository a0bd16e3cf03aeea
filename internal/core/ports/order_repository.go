// Package ports defines repository interfaces for the restaurant domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its order number.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the version the aggregate was loaded at and returns
	// errs.ErrVersionConflict when a concurrent writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatuses retrieves the branch's orders currently in any of the
	// given statuses, oldest first. Used by the status pollers to build the
	// kitchen queue and the pickup queue.
	GetAllInStatuses(ctx context.Context, branchID kernel.UUID, statuses []order.Status) ([]*order.Order, error)

	// GetAllByPartner retrieves the orders currently assigned to a delivery
	// partner. At most one order is in transit per partner at a time.
	GetAllByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)
}
