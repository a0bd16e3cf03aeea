package queries

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/partner"
)

// DeliveryAvailabilityModel is the advisory answer to an availability check.
type DeliveryAvailabilityModel struct {
	Available    bool
	FreePartners int
}

// CheckDeliveryAvailabilityQueryHandler counts the branch's free partners.
type CheckDeliveryAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewCheckDeliveryAvailabilityQueryHandler creates a handler for availability checks.
func NewCheckDeliveryAvailabilityQueryHandler(db *gorm.DB) CheckDeliveryAvailabilityQueryHandler {
	return CheckDeliveryAvailabilityQueryHandler{db: db}
}

// Handle executes the query.
func (h CheckDeliveryAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckDeliveryAvailabilityQuery,
) (DeliveryAvailabilityModel, error) {
	if err := query.Validate(); err != nil {
		return DeliveryAvailabilityModel{}, err
	}

	var count int
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM partners
		WHERE branch_id = ?
		  AND availability = ?
		  AND current_order_id IS NULL
	`, query.BranchID().Bytes(), int(partner.Available)).Scan(&count).Error
	if err != nil {
		return DeliveryAvailabilityModel{}, err
	}

	return DeliveryAvailabilityModel{
		Available:    count > 0,
		FreePartners: count,
	}, nil
}
