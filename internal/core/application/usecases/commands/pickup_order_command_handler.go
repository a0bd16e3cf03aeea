package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// ErrOrderAlreadyClaimed is returned when another partner won the race for
// the same ready order.
var ErrOrderAlreadyClaimed = errors.New("order already claimed by another partner")

// PickupOrderCommandHandler orchestrates a delivery partner claiming a
// ready order. The order and the partner are updated in one transaction,
// and both writes are conditional on the versions the aggregates were
// loaded at. When two partners race for the same order exactly one commit
// succeeds; the loser gets ErrOrderAlreadyClaimed.
type PickupOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.PickupDispatcher
	now        func() time.Time
}

// NewPickupOrderCommandHandler creates a handler for pickup operations.
// Requires a UoWFactory for coordinating transactional updates across the
// order and partner repositories.
func NewPickupOrderCommandHandler(uowFactory UoWFactory) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewPickupDispatcher(),
		now:        time.Now,
	}
}

// Handle processes the pickup command.
// Loads both aggregates, pairs them through the dispatcher, and persists
// them together. A version conflict on the order means a concurrent pickup
// landed first and is reported as ErrOrderAlreadyClaimed.
func (h PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) error {
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
	partnerRepo := uow.PartnerRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	claimant, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Pair(aggregate, claimant, h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return fmt.Errorf("%w: order %s", ErrOrderAlreadyClaimed, aggregate.ID())
		}
		return err
	}

	if err = partnerRepo.Update(ctx, claimant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
