package commands

import (
	"context"
	"errors"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/pkg/errs"
)

// SubmitApplicationCommandHandler handles the business logic for submitting
// driver applications. Enforces the one-application-per-applicant rule before
// creating the aggregate in pending status.
type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewSubmitApplicationCommandHandler creates a handler for application submission.
// Requires an ApplicationUoWFactory for transactional persistence.
func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application submission command.
// Fails with a duplicate-key error when the applicant already has an
// application on file; the repository's unique index backs the same rule
// against concurrent submissions.
func (h SubmitApplicationCommandHandler) Handle(ctx context.Context, cmd SubmitApplicationCommand) error {
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

	existing, err := appRepo.GetByApplicant(ctx, cmd.ApplicantID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateKeyError("applicantId", cmd.ApplicantID().String())
	}

	app, err := application.NewApplication(
		cmd.ApplicationID(),
		cmd.ApplicantID(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.VehicleType(),
		cmd.VehicleModel(),
		cmd.LicenseNumber(),
		cmd.LicensePlate(),
	)
	if err != nil {
		return err
	}

	if err = appRepo.Add(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
