package services

import (
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/partner"
)

// PickupDispatcher is a domain service responsible for pairing a ready
// delivery order with a free delivery partner, and for releasing the partner
// once the delivery terminates.
//
// Business rules:
//   - The order must be ready and of the delivery type
//   - The partner must be available and carry no other active delivery
//   - The pairing mutates both aggregates together: the caller persists them
//     in one unit of work, so either both changes land or neither does
type PickupDispatcher struct{}

// NewPickupDispatcher creates a new PickupDispatcher instance.
func NewPickupDispatcher() PickupDispatcher {
	return PickupDispatcher{}
}

// Pair assigns the order to one specific partner, chosen by the partner
// taking the order from the pickup queue themselves.
func (d PickupDispatcher) Pair(o *order.Order, p *partner.Partner, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := p.Take(o.ID()); err != nil {
		return err
	}

	return o.Pickup(p.ID(), at)
}

// Complete releases the partner after their order reached a status that no
// longer carries a partner assignment. The order must already have been
// transitioned by the caller.
func (d PickupDispatcher) Complete(o *order.Order, p *partner.Partner) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if o.Status().AllowsPartner() {
		return order.ErrInvalidTransition
	}

	return p.Release()
}
