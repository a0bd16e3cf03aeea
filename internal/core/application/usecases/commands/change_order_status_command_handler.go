package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler orchestrates order status transitions.
// Beyond moving the order itself it settles the side effects that follow
// from the new status: a delivery partner leaving transit is released, and
// a dine-in table is freed when its order terminates.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.PickupDispatcher
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// Requires a UoWFactory for coordinating updates across the order, partner,
// and table repositories.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewPickupDispatcher(),
		now:        time.Now,
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition under the actor's role, and
// persists the order together with any released partner or freed table in
// one transaction. A concurrent writer surfaces as errs.ErrVersionConflict
// from the conditional update.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignedPartner := aggregate.DeliveryPartner()

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if assignedPartner != nil && !aggregate.Status().AllowsPartner() {
		if err = h.releasePartner(ctx, uow, aggregate, *assignedPartner); err != nil {
			return err
		}
	}

	if aggregate.Status().IsTerminal() && aggregate.OrderType() == order.TypeDineIn {
		if err = h.freeTable(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h ChangeOrderStatusCommandHandler) releasePartner(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	partnerID kernel.UUID,
) error {
	partnerRepo := uow.PartnerRepository()

	assigned, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	if err = h.dispatcher.Complete(aggregate, assigned); err != nil {
		return err
	}

	return partnerRepo.Update(ctx, assigned)
}

func (h ChangeOrderStatusCommandHandler) freeTable(ctx context.Context, uow UoW, aggregate *order.Order) error {
	tableID := aggregate.Table()
	if tableID == nil {
		return nil
	}

	tableRepo := uow.TableRepository()

	seatedTable, err := tableRepo.Get(ctx, *tableID)
	if err != nil {
		return err
	}

	seatedTable.Free()
	return tableRepo.Update(ctx, seatedTable)
}
