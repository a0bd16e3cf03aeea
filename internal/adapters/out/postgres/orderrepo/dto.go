// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Line items and the status history are stored as JSON columns;
// the version column backs the conditional updates the repository performs.
type OrderDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Number          int64             `gorm:"autoIncrement;uniqueIndex"`
	BranchID        uuid.UUID         `gorm:"type:uuid;index"`
	OrderType       int               `gorm:"index"`
	Status          int               `gorm:"index"`
	Items           []ItemDTO         `gorm:"serializer:json;type:jsonb"`
	TaxCents        int64
	TotalCents      int64
	Customer        CustomerDTO       `gorm:"embedded;embeddedPrefix:customer_"`
	DeliveryAddress string
	TableID         *uuid.UUID        `gorm:"type:uuid;index"`
	PartnerID       *uuid.UUID        `gorm:"type:uuid;index"`
	Instructions    string
	PaymentMethod   int
	PaymentStatus   int
	History         []StatusChangeDTO `gorm:"serializer:json;type:jsonb"`
	CreatedAt       time.Time
	Version         int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the JSON items column.
type ItemDTO struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

// CustomerDTO holds the customer's contact columns.
type CustomerDTO struct {
	Name  string
	Phone string
	Email string
}

// StatusChangeDTO is one entry of the JSON history column.
type StatusChangeDTO struct {
	Status int       `json:"status"`
	Role   int       `json:"role"`
	At     time.Time `json:"at"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
			LineTotalCents: item.LineTotal().Cents(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			Status: int(change.Status),
			Role:   int(change.Role),
			At:     change.At,
		})
	}

	var tableID *uuid.UUID
	if id := aggregate.Table(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	customer := aggregate.CustomerInfo()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		BranchID:        aggregate.BranchID().Bytes(),
		OrderType:       int(aggregate.OrderType()),
		Status:          int(aggregate.Status()),
		Items:           items,
		TaxCents:        aggregate.Tax().Cents(),
		TotalCents:      aggregate.Total().Cents(),
		Customer:        CustomerDTO{Name: customer.Name, Phone: customer.Phone, Email: customer.Email},
		DeliveryAddress: aggregate.DeliveryAddress(),
		TableID:         tableID,
		PartnerID:       partnerID,
		Instructions:    aggregate.Instructions(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		History:         history,
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if itemErr != nil {
			return nil, itemErr
		}

		lineTotal, itemErr := kernel.NewMoney(itemDTO.LineTotalCents)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(menuItemID, itemDTO.Name, itemDTO.Quantity, unitPrice, lineTotal)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	tax, err := kernel.NewMoney(dto.TaxCents)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, change := range dto.History {
		history = append(history, order.StatusChange{
			Status: order.Status(change.Status),
			Role:   kernel.Role(change.Role),
			At:     change.At,
		})
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		branchID,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		items,
		tax,
		total,
		order.Customer{Name: dto.Customer.Name, Phone: dto.Customer.Phone, Email: dto.Customer.Email},
		dto.DeliveryAddress,
		tableID,
		partnerID,
		dto.Instructions,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		history,
		dto.CreatedAt,
		dto.Version,
	)
}
