package partner

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Availability represents a delivery partner's shift state.
//
//	Offline ⇄ Available → Busy → Available
//
// Busy is entered only through Take and left only through Release, keeping
// it in lockstep with the current-order reference.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Available means the partner is on shift with no order in flight.
	Available

	// Busy means the partner is carrying exactly one order.
	Busy

	// Offline means the partner is off shift.
	Offline
)

func availabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Busy:                "busy",
		Offline:             "offline",
	}
}

// AvailabilityFromString parses the wire representation of an availability.
func AvailabilityFromString(s string) (Availability, error) {
	for a, name := range availabilityStrings() {
		if a != AvailabilityUnknown && name == s {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a known availability", s))
}

// String returns the wire representation of the availability.
func (a Availability) String() string {
	if s, ok := availabilityStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the availability is one of the defined states.
func (a Availability) Validate() error {
	if _, ok := availabilityStrings()[a]; !ok || a == AvailabilityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}
