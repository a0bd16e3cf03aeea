package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Failure taxonomy for status transitions. Every rejected transition unwraps
// to exactly one of these so callers can map it to their own error surface.
var (
	// ErrInvalidTransition is returned when the requested status is not a
	// direct successor of the order's current status. Replayed transitions
	// (a duplicate "confirm" after the order already advanced) land here too.
	ErrInvalidTransition = fmt.Errorf("invalid status transition")

	// ErrUnauthorizedRole is returned when the edge exists but the acting
	// role is not permitted to drive it.
	ErrUnauthorizedRole = fmt.Errorf("role is not authorized for this transition")

	// ErrOrderIsTerminal is returned when the order is already completed or
	// cancelled; terminal orders accept no further transitions.
	ErrOrderIsTerminal = fmt.Errorf("order is already in a terminal status")

	// ErrPickupViaAssignment is returned when a plain transition request
	// targets the picked_up status. Picking up couples the order with a
	// delivery partner and must go through the assignment flow, which
	// attaches the partner atomically.
	ErrPickupViaAssignment = fmt.Errorf("%w: picked_up is only reachable through delivery assignment", ErrInvalidTransition)
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is a total order per order type:
//
//	pending → confirmed → preparing → ready ─┬─ delivery: → picked_up → on_the_way → completed
//	                                         └─ dine-in/takeaway: → completed
//
// with cancelled reachable from any non-terminal status (admin only).
// completed and cancelled are terminal. The legal edges live in
// transitionTable as data, so adding a role or an edge is a data change.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status assigned at order intake.
	Pending

	// Confirmed means the kitchen has accepted the order.
	Confirmed

	// Preparing means the kitchen is actively working on the order.
	Preparing

	// Ready means preparation is finished: a delivery order is eligible for
	// pickup, a dine-in/takeaway order is eligible for serving.
	Ready

	// PickedUp means a delivery partner has claimed the order.
	PickedUp

	// OnTheWay means the delivery partner is en route to the customer.
	OnTheWay

	// Completed is the single canonical terminal status for every order type.
	Completed

	// Cancelled is the terminal status for abandoned orders.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		Preparing:     "preparing",
		Ready:         "ready",
		PickedUp:      "picked_up",
		OnTheWay:      "on_the_way",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowsPartner reports whether an order in this status may carry a delivery
// partner reference. The partner reference is non-nil only while the partner
// is physically holding the order.
func (s Status) AllowsPartner() bool {
	return s == PickedUp || s == OnTheWay
}

// edge is one legal transition out of a status: the successor status, the
// roles allowed to drive it, and the order types it applies to (nil means
// every type).
type edge struct {
	to    Status
	roles []kernel.Role
	types []Type
}

// transitionTable is the legal-edge table. Admin is authorized for every edge
// and is therefore not repeated in the role sets; see roleAllowed.
func transitionTable() map[Status][]edge {
	kitchen := []kernel.Role{kernel.RoleKitchen, kernel.RoleWaiter}
	delivery := []kernel.Role{kernel.RoleDelivery}

	return map[Status][]edge{
		Pending:   {{to: Confirmed, roles: kitchen}},
		Confirmed: {{to: Preparing, roles: kitchen}},
		Preparing: {{to: Ready, roles: kitchen}},
		Ready: {
			{to: PickedUp, roles: delivery, types: []Type{TypeDelivery}},
			{to: Completed, roles: kitchen, types: []Type{TypeDineIn, TypeTakeaway}},
		},
		PickedUp: {{to: OnTheWay, roles: delivery, types: []Type{TypeDelivery}}},
		OnTheWay: {{to: Completed, roles: delivery, types: []Type{TypeDelivery}}},
	}
}

func (e edge) appliesTo(orderType Type) bool {
	if e.types == nil {
		return true
	}
	for _, t := range e.types {
		if t == orderType {
			return true
		}
	}
	return false
}

func roleAllowed(role kernel.Role, roles []kernel.Role) bool {
	if role == kernel.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanTransition checks whether the acting role may move an order of the given
// type from this status to the requested status. Returns nil when the edge is
// legal, otherwise one of ErrOrderIsTerminal, ErrInvalidTransition, or
// ErrUnauthorizedRole.
func (s Status) CanTransition(to Status, role kernel.Role, orderType Type) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return fmt.Errorf("%w: %s accepts no transitions", ErrOrderIsTerminal, s)
	}

	// Cancellation is legal from every non-terminal status, admin only.
	if to == Cancelled {
		if role != kernel.RoleAdmin {
			return fmt.Errorf("%w: only admin may cancel, got %s", ErrUnauthorizedRole, role)
		}
		return nil
	}

	for _, e := range transitionTable()[s] {
		if e.to != to || !e.appliesTo(orderType) {
			continue
		}
		if !roleAllowed(role, e.roles) {
			return fmt.Errorf("%w: %s may not drive %s -> %s", ErrUnauthorizedRole, role, s, to)
		}
		return nil
	}

	return fmt.Errorf("%w: no edge from %s to %s for %s orders", ErrInvalidTransition, s, to, orderType)
}
