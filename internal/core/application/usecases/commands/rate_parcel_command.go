package commands

import (
	"errors"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrRateParcelCommandIsNotConstructed = errors.New(
	"RateParcelCommand must be created via NewRateParcelCommand constructor",
)

// RateParcelCommand represents a sender's post-delivery rating of a parcel.
type RateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	rating   float64
	comment  string

	guard guard.ConstructorGuard
}

// NewRateParcelCommand creates a command to rate a delivered parcel.
// The rating must fall within the driver rating bounds.
func NewRateParcelCommand(parcelID kernel.UUID, rating float64, comment string) (RateParcelCommand, error) {
	cmd := RateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRating(rating),
	); err != nil {
		return RateParcelCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateParcelCommand) Validate() error {
	return c.guard.Validate(ErrRateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being rated.
func (c RateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Rating returns the rating value.
func (c RateParcelCommand) Rating() float64 {
	return c.rating
}

// Comment returns the accompanying comment.
func (c RateParcelCommand) Comment() string {
	return c.comment
}

func (c *RateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RateParcelCommand) setRating(rating float64) error {
	if rating < driver.RatingMin || rating > driver.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, driver.RatingMin, driver.RatingMax)
	}
	c.rating = rating
	return nil
}
