package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role identifies the actor issuing a command against the coordinator.
// Roles are a closed enumeration: authorization for status transitions is
// expressed as data keyed by Role, never by comparing free-form strings.
//
// The role itself is established by the external identity service; the
// coordinator only decides what each role may do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and tracks their own order.
	RoleCustomer

	// RoleKitchen confirms, prepares, and readies orders, and closes
	// dine-in/takeaway orders once served.
	RoleKitchen

	// RoleWaiter is the dine-in staff role; kitchen-equivalent on kitchen
	// edges and responsible for table states.
	RoleWaiter

	// RoleDelivery picks up ready delivery orders and drives them to completion.
	RoleDelivery

	// RoleAdmin may drive any edge, including cancellation.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleKitchen:  "kitchen",
		RoleWaiter:   "waiter",
		RoleDelivery: "delivery",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name supplied by the identity collaborator.
func RoleFromString(s string) (Role, error) {
	for role, name := range roleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// String returns the role name used on the wire and in logs.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined actor roles.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role is an in-house staff role
// (kitchen, waiter, or admin).
func (r Role) IsStaff() bool {
	return r == RoleKitchen || r == RoleWaiter || r == RoleAdmin
}
