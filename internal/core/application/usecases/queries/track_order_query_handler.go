package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// TrackOrderQueryHandler reads one order with its status history from the
// database.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

type historyRow struct {
	Status int       `json:"status"`
	Role   int       `json:"role"`
	At     time.Time `json:"at"`
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// carries the ID.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderModel, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,
			tax_cents,
			payment_method,
			customer_email,
			history
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return TrackOrderModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderModel{}, err
		}
		return TrackOrderModel{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		model      TrackOrderModel
		id         uuid.UUID
		orderType  int
		status     int
		rawItems   []byte
		tableID    uuid.NullUUID
		partnerID  uuid.NullUUID
		payStatus  int
		payMethod  int
		rawHistory []byte
	)

	err = rows.Scan(
		&id,
		&model.Number,
		&orderType,
		&status,
		&rawItems,
		&model.TotalCents,
		&model.CustomerName,
		&model.CustomerPhone,
		&model.DeliveryAddress,
		&tableID,
		&partnerID,
		&model.Instructions,
		&payStatus,
		&model.CreatedAt,
		&model.Version,
		&model.TaxCents,
		&payMethod,
		&model.CustomerEmail,
		&rawHistory,
	)
	if err != nil {
		return TrackOrderModel{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackOrderModel{}, err
	}
	model.ID = orderID

	if tableID.Valid {
		tID, tableErr := kernel.UUIDFromBytes(tableID.UUID[:])
		if tableErr != nil {
			return TrackOrderModel{}, tableErr
		}
		model.TableID = &tID
	}

	if partnerID.Valid {
		pID, partnerErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if partnerErr != nil {
			return TrackOrderModel{}, partnerErr
		}
		model.PartnerID = &pID
	}

	var items []itemRow
	if len(rawItems) > 0 {
		if err = json.Unmarshal(rawItems, &items); err != nil {
			return TrackOrderModel{}, err
		}
	}
	model.Items = make([]OrderLineModel, 0, len(items))
	for _, item := range items {
		model.Items = append(model.Items, OrderLineModel{
			MenuItemID:     item.MenuItemID.String(),
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
		})
	}

	var history []historyRow
	if len(rawHistory) > 0 {
		if err = json.Unmarshal(rawHistory, &history); err != nil {
			return TrackOrderModel{}, err
		}
	}
	model.History = make([]StatusChangeModel, 0, len(history))
	for _, change := range history {
		model.History = append(model.History, StatusChangeModel{
			Status: order.Status(change.Status).String(),
			Role:   kernel.Role(change.Role).String(),
			At:     change.At,
		})
	}

	model.OrderType = order.Type(orderType).String()
	model.Status = order.Status(status).String()
	model.PaymentStatus = order.PaymentStatus(payStatus).String()
	model.PaymentMethod = order.PaymentMethod(payMethod).String()

	return model, rows.Err()
}
