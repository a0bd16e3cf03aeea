package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/partner"
)

// GetPartnersBoardQueryHandler reads the branch's partner board from the
// database, sorted by name for consistent output.
type GetPartnersBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersBoardQueryHandler creates a handler for partner board
// queries.
func NewGetPartnersBoardQueryHandler(db *gorm.DB) GetPartnersBoardQueryHandler {
	return GetPartnersBoardQueryHandler{db: db}
}

// Handle executes the query to list the branch's partners.
func (h GetPartnersBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersBoardQuery,
) ([]PartnerModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			availability,
			current_order_id,
			vehicle_kind,
			vehicle_plate,
			version
		FROM partners
		WHERE branch_id = ?
		ORDER BY name
	`, query.BranchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerModel, 0)
	for rows.Next() {
		var (
			model          PartnerModel
			id             uuid.UUID
			availability   int
			currentOrderID uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&model.Name,
			&availability,
			&currentOrderID,
			&model.VehicleKind,
			&model.VehiclePlate,
			&model.Version,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		model.ID = partnerID

		if currentOrderID.Valid {
			oID, orderErr := kernel.UUIDFromBytes(currentOrderID.UUID[:])
			if orderErr != nil {
				return nil, orderErr
			}
			model.CurrentOrderID = &oID
		}

		model.Availability = partner.Availability(availability).String()
		partners = append(partners, model)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
