package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// GetTablesQueryHandler reads a branch's table board from the database.
type GetTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetTablesQueryHandler creates a handler for table board queries.
func NewGetTablesQueryHandler(db *gorm.DB) GetTablesQueryHandler {
	return GetTablesQueryHandler{db: db}
}

// Handle executes the query to list the branch's tables by number.
func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]TableModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			capacity,
			status,
			current_order_id
		FROM tables
		WHERE branch_id = ?
		ORDER BY number
	`, query.BranchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]TableModel, 0)
	for rows.Next() {
		var (
			model          TableModel
			id             uuid.UUID
			status         int
			currentOrderID uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&model.Number,
			&model.Capacity,
			&status,
			&currentOrderID,
		)
		if err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		model.ID = tableID

		if currentOrderID.Valid {
			oID, orderErr := kernel.UUIDFromBytes(currentOrderID.UUID[:])
			if orderErr != nil {
				return nil, orderErr
			}
			model.CurrentOrderID = &oID
		}

		model.Status = table.Status(status).String()
		tables = append(tables, model)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
