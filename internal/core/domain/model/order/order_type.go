package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type determines which status edges and which assignment logic apply to an
// order: delivery orders travel through pickup/on-the-way, dine-in orders
// hold a table, takeaway orders do neither.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDineIn is an order served at a table on the premises.
	TypeDineIn

	// TypeTakeaway is an order the customer collects themselves.
	TypeTakeaway

	// TypeDelivery is an order driven to the customer by a delivery partner.
	TypeDelivery
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "unknown",
		TypeDineIn:   "dine_in",
		TypeTakeaway: "takeaway",
		TypeDelivery: "delivery",
	}
}

// TypeFromString parses the wire representation of an order type.
func TypeFromString(s string) (Type, error) {
	for t, name := range typeStrings() {
		if t != TypeUnknown && name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a known order type", s))
}

// String returns the wire representation of the order type.
func (t Type) String() string {
	if s, ok := typeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the type is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}
