package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// orderColumns is the select list every order read model is scanned from.
const orderColumns = `
	id,
	number,
	order_type,
	status,
	items,
	total_cents,
	customer_name,
	customer_phone,
	delivery_address,
	table_id,
	partner_id,
	instructions,
	payment_status,
	created_at,
	version
`

type itemRow struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

func scanOrderSummary(rows *sql.Rows) (OrderSummaryModel, error) {
	var (
		model     OrderSummaryModel
		id        uuid.UUID
		orderType int
		status    int
		rawItems  []byte
		tableID   uuid.NullUUID
		partnerID uuid.NullUUID
		payStatus int
		createdAt time.Time
	)

	err := rows.Scan(
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
		&createdAt,
		&model.Version,
	)
	if err != nil {
		return OrderSummaryModel{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryModel{}, err
	}
	model.ID = orderID

	if tableID.Valid {
		tID, tableErr := kernel.UUIDFromBytes(tableID.UUID[:])
		if tableErr != nil {
			return OrderSummaryModel{}, tableErr
		}
		model.TableID = &tID
	}

	if partnerID.Valid {
		pID, partnerErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if partnerErr != nil {
			return OrderSummaryModel{}, partnerErr
		}
		model.PartnerID = &pID
	}

	var items []itemRow
	if len(rawItems) > 0 {
		if err = json.Unmarshal(rawItems, &items); err != nil {
			return OrderSummaryModel{}, err
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

	model.OrderType = order.Type(orderType).String()
	model.Status = order.Status(status).String()
	model.PaymentStatus = order.PaymentStatus(payStatus).String()
	model.CreatedAt = createdAt

	return model, nil
}

func collectOrderSummaries(rows *sql.Rows) ([]OrderSummaryModel, error) {
	defer rows.Close()

	models := make([]OrderSummaryModel, 0)
	for rows.Next() {
		model, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}
