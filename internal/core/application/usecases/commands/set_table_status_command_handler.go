package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
)

// SetTableStatusCommandHandler handles manual table state changes by staff.
type SetTableStatusCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewSetTableStatusCommandHandler creates a handler for table state
// changes.
func NewSetTableStatusCommandHandler(uowFactory TableUoWFactory) SetTableStatusCommandHandler {
	return SetTableStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table state command. Vacating or cleaning a table
// that still seats an active order is rejected by the aggregate.
func (h SetTableStatusCommandHandler) Handle(ctx context.Context, cmd SetTableStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()

	aggregate, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case table.Cleaning:
		if err = aggregate.StartCleaning(); err != nil {
			return err
		}
	case table.Vacant:
		if aggregate.CurrentOrder() != nil {
			return table.ErrTableHasActiveOrder
		}
		aggregate.Free()
	}

	if err = tableRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
