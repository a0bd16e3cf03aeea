package partner

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner was not created
	// through NewPartner or RestorePartner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner")

	// ErrNameIsRequired is returned when creating a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPartnerHasActiveDelivery is returned when a partner with an active
	// delivery tries to change availability or take another order. A partner
	// carries at most one order at a time.
	ErrPartnerHasActiveDelivery = errors.New("partner has an active delivery")

	// ErrPartnerNotAvailable is returned when a pickup targets a partner that
	// is busy or offline.
	ErrPartnerNotAvailable = errors.New("partner is not available")

	// ErrNoActiveDelivery is returned when releasing a partner that holds
	// no order.
	ErrNoActiveDelivery = errors.New("partner has no active delivery")
)

// Partner is the aggregate root for a delivery partner.
//
// Invariant: the current-order reference is non-nil if and only if the
// availability is Busy. Take and Release move both fields together, so a
// partner can never be assigned a second order while one is in flight.
type Partner struct {
	id             kernel.UUID
	name           string
	branchID       kernel.UUID
	availability   Availability
	currentOrderID *kernel.UUID
	vehicle        Vehicle

	version int64

	guard guard.ConstructorGuard
}

// Vehicle is the partner's vehicle metadata, captured at onboarding.
type Vehicle struct {
	Kind  string
	Plate string
}

// NewPartner creates a partner in Offline availability with no order.
// Partners are onboarded offline and toggle themselves available when they
// start a shift.
func NewPartner(id kernel.UUID, name string, branchID kernel.UUID, vehicle Vehicle) (*Partner, error) {
	p := &Partner{
		availability: Offline,
		vehicle:      vehicle,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setBranchID(branchID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a partner aggregate from persistence,
// re-checking the busy/current-order invariant.
func RestorePartner(
	id kernel.UUID,
	name string,
	branchID kernel.UUID,
	availability Availability,
	currentOrderID *kernel.UUID,
	vehicle Vehicle,
	version int64,
) (*Partner, error) {
	p, err := NewPartner(id, name, branchID, vehicle)
	if err != nil {
		return nil, err
	}

	if err = availability.Validate(); err != nil {
		return nil, err
	}
	if currentOrderID != nil {
		if err = currentOrderID.Validate(); err != nil {
			return nil, err
		}
		if availability != Busy {
			return nil, errs.NewValueIsInvalidErrorWithCause("current order",
				fmt.Errorf("%s partner may not hold an order", availability))
		}
	} else if availability == Busy {
		return nil, errs.NewValueIsInvalidErrorWithCause("current order",
			fmt.Errorf("busy partner must hold an order"))
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	p.availability = availability
	p.currentOrderID = currentOrderID
	p.version = version
	return p, nil
}

// Validate ensures the partner was created through a constructor.
func (p *Partner) Validate() error {
	if p == nil || p.guard.Validate(ErrPartnerIsNotConstructed) != nil {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// SetAvailable toggles the partner between Available and Offline.
// Going offline while holding an order is rejected with
// ErrPartnerHasActiveDelivery; the delivery must complete first. The UI
// blocks this case too, but availability arrives from stale poll snapshots,
// so it is re-validated here.
func (p *Partner) SetAvailable(available bool) error {
	if p.currentOrderID != nil {
		return fmt.Errorf("%w: complete order %s first", ErrPartnerHasActiveDelivery, p.currentOrderID)
	}

	if available {
		p.availability = Available
	} else {
		p.availability = Offline
	}
	return nil
}

// Take assigns an order to the partner: availability becomes Busy and the
// current-order reference is set, as one step. Fails with
// ErrPartnerNotAvailable unless the partner is Available with no order.
func (p *Partner) Take(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if p.currentOrderID != nil {
		return fmt.Errorf("%w: already delivering %s", ErrPartnerHasActiveDelivery, p.currentOrderID)
	}
	if p.availability != Available {
		return fmt.Errorf("%w: partner is %s", ErrPartnerNotAvailable, p.availability)
	}

	p.availability = Busy
	p.currentOrderID = &orderID
	return nil
}

// Release returns the partner to Available with the current order cleared.
// Called when the delivery completes or the order is cancelled mid-flight.
func (p *Partner) Release() error {
	if p.currentOrderID == nil {
		return ErrNoActiveDelivery
	}

	p.availability = Available
	p.currentOrderID = nil
	return nil
}

// IsFree reports whether the partner can take an order right now.
func (p *Partner) IsFree() bool {
	return p.availability == Available && p.currentOrderID == nil
}

// IsEqual compares two partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// BranchID returns the branch the partner delivers for.
func (p *Partner) BranchID() kernel.UUID {
	return p.branchID
}

// Availability returns the partner's current availability.
func (p *Partner) Availability() Availability {
	return p.availability
}

// CurrentOrder returns the order in flight, nil when the partner is free.
func (p *Partner) CurrentOrder() *kernel.UUID {
	return p.currentOrderID
}

// VehicleInfo returns the vehicle metadata.
func (p *Partner) VehicleInfo() Vehicle {
	return p.vehicle
}

// Version returns the optimistic-concurrency version the aggregate was read at.
func (p *Partner) Version() int64 {
	return p.version
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	p.branchID = branchID
	return nil
}
