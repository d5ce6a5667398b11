package commands

import (
	"context"
	"errors"
	"time"

	"courierops/internal/core/domain/model/account"
	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
)

// ReviewApplicationCommandHandler applies an admin review decision to a
// driver application. Approval is a compound operation: besides moving the
// application to approved it flips the applicant's account role to driver and
// creates an approved Driver profile from the application's fields. All three
// writes happen in one transaction, so a failure at any step leaves nothing
// behind.
//
// Example:
//
//	handler := NewReviewApplicationCommandHandler(uowFactory)
//	cmd, _ := NewReviewApplicationCommand(appID, application.StatusApproved, adminID, "checked docs", "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown application id
//	case errors.Is(err, errs.ErrInconsistentState):
//	    // applicant's user account is gone — data integrity problem
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // e.g. re-approving an already approved application
//	}
type ReviewApplicationCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewReviewApplicationCommandHandler creates a handler for application review.
// Requires a ReviewUoWFactory spanning application, driver, and user repositories.
func NewReviewApplicationCommandHandler(uowFactory ReviewUoWFactory) ReviewApplicationCommandHandler {
	return ReviewApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Loads the application, applies the decision through the aggregate, and for
// approvals fires the compound side effects before committing.
func (h ReviewApplicationCommandHandler) Handle(ctx context.Context, cmd ReviewApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appRepo := uow.ApplicationRepository()

	app, err := appRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = app.Review(cmd.Target(), cmd.ReviewerID(), cmd.Notes(), cmd.RejectionReason(), now); err != nil {
		return err
	}

	if cmd.Target() == application.StatusApproved {
		if err = h.approve(ctx, uow, app, now); err != nil {
			return err
		}
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// approve fires the side effects of an approval: the applicant's role flips
// to driver and an approved Driver profile is created from the application.
// A missing user account is a referential integrity violation, reported as
// inconsistent state rather than not-found.
func (h ReviewApplicationCommandHandler) approve(
	ctx context.Context, uow ReviewUoW, app *application.Application, now time.Time,
) error {
	userRepo := uow.UserRepository()

	if _, err := userRepo.GetRole(ctx, app.ApplicantID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewInconsistentStateErrorWithCause("applicantUser", app.ApplicantID().String(), err)
		}
		return err
	}

	if err := userRepo.SetRole(ctx, app.ApplicantID(), account.RoleDriver); err != nil {
		return err
	}

	newDriver, err := driver.NewDriver(
		kernel.NewUUID(),
		app.ApplicantID(),
		app.VehicleType(),
		app.VehicleModel(),
		app.LicenseNumber(),
		app.LicensePlate(),
	)
	if err != nil {
		return err
	}
	newDriver.Approve(now)

	return uow.DriverRepository().Add(ctx, newDriver)
}
