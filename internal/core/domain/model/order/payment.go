package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PaymentMethod records how the customer intends to settle the order.
// Capture itself is delegated to the external payment processor; the
// coordinator only tracks the method and the settlement status it is told.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentCash
	PaymentCard
	PaymentOnline
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentCash:          "cash",
		PaymentCard:          "card",
		PaymentOnline:        "online",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, name := range paymentMethodStrings() {
		if m != PaymentMethodUnknown && name == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a known payment method", s))
}

func (m PaymentMethod) String() string {
	if s, ok := paymentMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the method is one of the defined payment methods.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[m]; !ok || m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus records whether the payment processor has reported settlement.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentPending:       "pending",
		PaymentPaid:          "paid",
	}
}

func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined payment statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[s]; !ok || s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
