// Package tablerepo provides data transfer objects and mapping functions
// for dine-in table persistence.
package tablerepo

import (
	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableDTO represents the database structure for persisting table
// aggregates.
type TableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BranchID       uuid.UUID  `gorm:"type:uuid;index"`
	Number         int
	Capacity       int
	Status         int
	CurrentOrderID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for table entities.
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(aggregate *table.Table) TableDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return TableDTO{
		ID:             aggregate.ID().Bytes(),
		BranchID:       aggregate.BranchID().Bytes(),
		Number:         aggregate.Number(),
		Capacity:       aggregate.Capacity(),
		Status:         int(aggregate.TableStatus()),
		CurrentOrderID: currentOrderID,
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	return table.RestoreTable(
		id,
		branchID,
		dto.Number,
		dto.Capacity,
		table.Status(dto.Status),
		currentOrderID,
	)
}
