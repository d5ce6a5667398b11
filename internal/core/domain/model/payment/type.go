package payment

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Type distinguishes scheduled earnings payouts from one-off adjustments.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypePayout is a periodic settlement of a driver's pending earnings.
	TypePayout

	// TypeAdjustment is a manual correction entered by an admin.
	TypeAdjustment
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:    "unknown",
		TypePayout:     "payout",
		TypeAdjustment: "adjustment",
	}
}

// TypeFromString parses a payment type from its string form.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentType", fmt.Errorf("%q is not a valid payment type", s))
}

// Validate checks if the Type is payout or adjustment.
func (t Type) Validate() error {
	if t != TypePayout && t != TypeAdjustment {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentType", fmt.Errorf("%d is not a valid payment type", t))
	}
	return nil
}

// String returns the lowercase name of the payment type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Method represents how a driver payment is settled.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCash is settled in cash.
	MethodCash

	// MethodEcocash is settled via the EcoCash mobile wallet.
	MethodEcocash
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		MethodCash:    "cash",
		MethodEcocash: "ecocash",
	}
}

// MethodFromString parses a payment method from its string form.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if m != MethodUnknown && str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method is cash or ecocash.
func (m Method) Validate() error {
	if m != MethodCash && m != MethodEcocash {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the lowercase name of the payment method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
