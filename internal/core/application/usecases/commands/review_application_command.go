package commands

import (
	"errors"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrReviewApplicationCommandIsNotConstructed = errors.New(
	"ReviewApplicationCommand must be created via NewReviewApplicationCommand constructor",
)

// ReviewApplicationCommand represents an admin's review decision on a driver
// application: the target status plus notes and, for rejections, a reason.
type ReviewApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID   kernel.UUID
	target          application.Status
	reviewerID      kernel.UUID
	notes           string
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewReviewApplicationCommand creates a command carrying a review decision.
// The target status must be recognized; the rejection reason requirement is
// enforced by the aggregate so partially-reviewed state never persists.
func NewReviewApplicationCommand(
	applicationID kernel.UUID,
	target application.Status,
	reviewerID kernel.UUID,
	notes string,
	rejectionReason string,
) (ReviewApplicationCommand, error) {
	cmd := ReviewApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setTarget(target),
		cmd.setReviewerID(reviewerID),
	); err != nil {
		return ReviewApplicationCommand{}, err
	}

	cmd.notes = notes
	cmd.rejectionReason = rejectionReason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewApplicationCommand) Validate() error {
	return c.guard.Validate(ErrReviewApplicationCommandIsNotConstructed)
}

// ApplicationID returns the identifier of the application under review.
func (c ReviewApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Target returns the status the reviewer is moving the application to.
func (c ReviewApplicationCommand) Target() application.Status {
	return c.target
}

// ReviewerID returns the reviewing admin's identifier.
func (c ReviewApplicationCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Notes returns the reviewer's notes.
func (c ReviewApplicationCommand) Notes() string {
	return c.notes
}

// RejectionReason returns the reason supplied for a rejection.
func (c ReviewApplicationCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *ReviewApplicationCommand) setApplicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.applicationID = id
	return nil
}

func (c *ReviewApplicationCommand) setTarget(target application.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ReviewApplicationCommand) setReviewerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewerId", err)
	}
	c.reviewerID = id
	return nil
}
