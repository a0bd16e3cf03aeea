// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/partner"
)

// PartnerDTO represents the database structure for persisting delivery
// partner aggregates. The version column backs the conditional updates the
// repository performs.
type PartnerDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string
	BranchID       uuid.UUID  `gorm:"type:uuid;index"`
	Availability   int        `gorm:"index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid"`
	Vehicle        VehicleDTO `gorm:"embedded;embeddedPrefix:vehicle_"`
	Version        int64
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// VehicleDTO holds the partner's vehicle columns.
type VehicleDTO struct {
	Kind  string
	Plate string
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	vehicle := aggregate.VehicleInfo()

	return PartnerDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		BranchID:       aggregate.BranchID().Bytes(),
		Availability:   int(aggregate.Availability()),
		CurrentOrderID: currentOrderID,
		Vehicle:        VehicleDTO{Kind: vehicle.Kind, Plate: vehicle.Plate},
		Version:        aggregate.Version(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
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

	return partner.RestorePartner(
		id,
		dto.Name,
		branchID,
		partner.Availability(dto.Availability),
		currentOrderID,
		partner.Vehicle{Kind: dto.Vehicle.Kind, Plate: dto.Vehicle.Plate},
		dto.Version,
	)
}
