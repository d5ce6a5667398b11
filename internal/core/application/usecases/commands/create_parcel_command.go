package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a sender's request to post a new delivery
// job on the marketplace.
//
// Example:
//
//	pickup, _ := parcel.NewWaypoint("CBD office", "12 Samora Machel Ave", loc1)
//	dropoff, _ := parcel.NewWaypoint("Avondale flat", "3 King George Rd", loc2)
//	cmd, err := NewCreateParcelCommand(
//	    kernel.NewUUID(), senderID, "box of documents", 20,
//	    parcel.PaymentMethodCash, pickup, dropoff)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	senderID      kernel.UUID
	description   string
	price         float64
	paymentMethod parcel.PaymentMethod
	pickup        parcel.Waypoint
	dropoff       parcel.Waypoint

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to post a delivery job.
// The price must be positive and both waypoints must be constructed.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	description string,
	price float64,
	paymentMethod parcel.PaymentMethod,
	pickup parcel.Waypoint,
	dropoff parcel.Waypoint,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSenderID(senderID),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setWaypoints(pickup, dropoff),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderID returns the posting client's identifier.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Description returns what is being shipped.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Price returns the sender's asking price.
func (c CreateParcelCommand) Price() float64 {
	return c.price
}

// PaymentMethod returns how the sender pays.
func (c CreateParcelCommand) PaymentMethod() parcel.PaymentMethod {
	return c.paymentMethod
}

// Pickup returns the pickup waypoint.
func (c CreateParcelCommand) Pickup() parcel.Waypoint {
	return c.pickup
}

// Dropoff returns the dropoff waypoint.
func (c CreateParcelCommand) Dropoff() parcel.Waypoint {
	return c.dropoff
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	c.senderID = id
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateParcelCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewInvalidAmountError("price", price)
	}
	c.price = price
	return nil
}

func (c *CreateParcelCommand) setPaymentMethod(method parcel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *CreateParcelCommand) setWaypoints(pickup, dropoff parcel.Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}
	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}
