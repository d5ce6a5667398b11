package parcel

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// PaymentMethod represents how the sender pays for a delivery.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCash is settled in cash on delivery.
	PaymentMethodCash

	// PaymentMethodEcocash is settled via the EcoCash mobile wallet.
	PaymentMethodEcocash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodCash:    "cash",
		PaymentMethodEcocash: "ecocash",
	}
}

// PaymentMethodFromString parses a payment method from its string form.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is cash or ecocash.
func (m PaymentMethod) Validate() error {
	if m != PaymentMethodCash && m != PaymentMethodEcocash {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the lowercase name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus represents the settlement state of a parcel's payment.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means the delivery has not been paid for yet.
	PaymentStatusPending

	// PaymentStatusPaid means the sender's payment has cleared.
	PaymentStatusPaid

	// PaymentStatusFailed means a payment attempt did not clear.
	PaymentStatusFailed

	// PaymentStatusRefunded means a cleared payment was returned.
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:  "unknown",
		PaymentStatusPending:  "pending",
		PaymentStatusPaid:     "paid",
		PaymentStatusFailed:   "failed",
		PaymentStatusRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its string form.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is one of the recognized states.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok || s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
