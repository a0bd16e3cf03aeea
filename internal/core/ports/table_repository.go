package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for dine-in table
// aggregates.
type TableRepository interface {
	// Add persists a new table aggregate to storage.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table aggregate.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetAllByBranch retrieves every table at the branch ordered by table
	// number.
	GetAllByBranch(ctx context.Context, branchID kernel.UUID) ([]*table.Table, error)
}
