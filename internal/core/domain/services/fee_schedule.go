package services

import (
	"courierops/internal/pkg/errs"
)

// Quote is the financial breakdown of a delivered parcel: how much of the
// final price goes to the driver and how much the platform keeps.
type Quote struct {
	DriverCommission float64
	PlatformFee      float64
}

// FeeSchedule is a domain service that performs all monetary computation for
// the marketplace: resolving the negotiated price of a delivery and splitting
// it between the driver and the platform.
//
// Business rules:
//   - Both rates are fractions in [0, 1] and their sum never exceeds 1, so a
//     quote can never exceed the final price
//   - A later counter-offer supersedes an earlier one: the driver's
//     counter-offer wins over the sender's, which wins over the asking price
//   - Negative monetary results are rejected with an error, never clamped
type FeeSchedule struct {
	platformFeeRate      float64
	driverCommissionRate float64

	isConstructed bool
}

// NewFeeSchedule creates a FeeSchedule from configured rates.
//
// Parameters:
//   - platformFeeRate: the platform's fraction of each final price
//   - driverCommissionRate: the driver's fraction of each final price
//
// Both rates must be non-negative and sum to at most 1.
func NewFeeSchedule(platformFeeRate, driverCommissionRate float64) (FeeSchedule, error) {
	if platformFeeRate < 0 || platformFeeRate > 1 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("platformFeeRate", platformFeeRate, 0, 1)
	}
	if driverCommissionRate < 0 || driverCommissionRate > 1 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("driverCommissionRate", driverCommissionRate, 0, 1)
	}
	if platformFeeRate+driverCommissionRate > 1 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError(
			"platformFeeRate+driverCommissionRate", platformFeeRate+driverCommissionRate, 0, 1)
	}

	return FeeSchedule{
		platformFeeRate:      platformFeeRate,
		driverCommissionRate: driverCommissionRate,
		isConstructed:        true,
	}, nil
}

// Validate ensures the FeeSchedule was created via NewFeeSchedule.
func (f FeeSchedule) Validate() error {
	if !f.isConstructed {
		return errs.NewValueIsRequiredError("feeSchedule must be created via NewFeeSchedule constructor")
	}
	return nil
}

// PlatformFeeRate returns the platform's configured fraction.
func (f FeeSchedule) PlatformFeeRate() float64 {
	return f.platformFeeRate
}

// DriverCommissionRate returns the driver's configured fraction.
func (f FeeSchedule) DriverCommissionRate() float64 {
	return f.driverCommissionRate
}

// FinalPrice resolves the agreed price of a delivery from the asking price
// and any counter-offers. The driver's counter-offer is the later step of the
// negotiation and therefore wins when present; otherwise the sender's
// counter-offer applies; otherwise the asking price stands.
func (f FeeSchedule) FinalPrice(price float64, senderOffer, driverOffer *float64) (float64, error) {
	final := price
	if senderOffer != nil {
		final = *senderOffer
	}
	if driverOffer != nil {
		final = *driverOffer
	}

	if final <= 0 {
		return 0, errs.NewInvalidAmountError("finalPrice", final)
	}
	return final, nil
}

// QuoteFor splits a final price into the driver commission and platform fee
// according to the configured rates. Because the rates sum to at most 1 the
// breakdown never exceeds the final price.
func (f FeeSchedule) QuoteFor(finalPrice float64) (Quote, error) {
	if finalPrice <= 0 {
		return Quote{}, errs.NewInvalidAmountError("finalPrice", finalPrice)
	}

	return Quote{
		DriverCommission: finalPrice * f.driverCommissionRate,
		PlatformFee:      finalPrice * f.platformFeeRate,
	}, nil
}

// PaymentNet computes the net amount of a payment: gross earnings minus the
// platform fee equivalent. A negative result is an error, never clamped.
func (f FeeSchedule) PaymentNet(grossEarnings, platformFeeAmount float64) (float64, error) {
	if grossEarnings < 0 {
		return 0, errs.NewInvalidAmountError("grossEarnings", grossEarnings)
	}
	if platformFeeAmount < 0 {
		return 0, errs.NewInvalidAmountError("platformFeeAmount", platformFeeAmount)
	}

	net := grossEarnings - platformFeeAmount
	if net < 0 {
		return 0, errs.NewInvalidAmountError("netAmount", net)
	}
	return net, nil
}
