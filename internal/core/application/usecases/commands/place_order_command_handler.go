package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Creates the order in pending status and, for dine-in orders, seats it at
// the requested table within the same transaction.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because dine-in placement touches both the order
// and the table aggregate.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order placement command.
// Builds the order aggregate from the command's lines, persists it, and
// occupies the dine-in table when one is requested. The table must be
// vacant; an occupied table fails the whole transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.buildItems(cmd.Lines())
	if err != nil {
		return err
	}

	tax, err := kernel.NewMoney(cmd.TaxCents())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BranchID(),
		cmd.OrderType(),
		items,
		tax,
		cmd.Customer(),
		cmd.DeliveryAddress(),
		cmd.TableID(),
		cmd.Instructions(),
		cmd.PayMethod(),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if cmd.OrderType() == order.TypeDineIn {
		tableRepo := uow.TableRepository()

		seatedTable, err := tableRepo.Get(ctx, *cmd.TableID())
		if err != nil {
			return err
		}

		if err = seatedTable.Occupy(newOrder.ID()); err != nil {
			return err
		}

		if err = tableRepo.Update(ctx, seatedTable); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h PlaceOrderCommandHandler) buildItems(lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		price, err := kernel.NewMoney(line.UnitPriceCents)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(line.MenuItemID, line.Name, line.Quantity, price)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}
