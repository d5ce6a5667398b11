package commands_test

import (
	"testing"
	"time"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/domain/model/account"
	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingApplication(t *testing.T) *application.Application {
	t.Helper()
	app, err := application.NewApplication(
		kernel.NewUUID(), kernel.NewUUID(),
		"Tendai Moyo", "+263771234567",
		"motorbike", "Honda XR150", "DL-482913", "AEZ-4821")
	require.NoError(t, err)
	return app
}

func TestReviewApplicationCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	app := newPendingApplication(t)
	cmd, err := commands.NewReviewApplicationCommand(
		app.ID(), application.StatusApproved, kernel.NewUUID(), "documents verified", "")
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	driverRepo := new(MockDriverRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", mock.Anything, app.ID()).Return(app, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetRole", mock.Anything, app.ApplicantID()).Return(account.RoleClient, nil).Once(),
		userRepo.On("SetRole", mock.Anything, app.ApplicantID(), account.RoleDriver).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		appRepo.On("Update", mock.Anything, app).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewApplicationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, app.Status())
	require.NotNil(t, app.ReviewedAt())
	appRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewApplicationCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	app := newPendingApplication(t)
	cmd, err := commands.NewReviewApplicationCommand(
		app.ID(), application.StatusRejected, kernel.NewUUID(), "", "license plate mismatch")
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", mock.Anything, app.ID()).Return(app, nil).Once(),
		appRepo.On("Update", mock.Anything, app).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewApplicationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, application.StatusRejected, app.Status())
	assert.Equal(t, "license plate mismatch", app.RejectionReason())
	appRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewApplicationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewReviewApplicationCommand(
		id, application.StatusOnHold, kernel.NewUUID(), "", "")
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("applicationId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewApplicationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReviewApplicationCommandHandler_Handle_MissingApplicantUser(t *testing.T) {
	ctx := t.Context()
	app := newPendingApplication(t)
	cmd, err := commands.NewReviewApplicationCommand(
		app.ID(), application.StatusApproved, kernel.NewUUID(), "", "")
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", mock.Anything, app.ID()).Return(app, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetRole", mock.Anything, app.ApplicantID()).
			Return(account.RoleUnknown, errs.NewObjectNotFoundError("userId", app.ApplicantID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewApplicationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInconsistentState)
}

func TestReviewApplicationCommandHandler_Handle_ReApproval(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	now := time.Now()
	approved, err := application.RestoreApplication(
		kernel.NewUUID(), kernel.NewUUID(),
		"Tendai Moyo", "", "motorbike", "", "DL-482913", "AEZ-4821",
		application.StatusApproved, &reviewer, &now, "", "")
	require.NoError(t, err)

	cmd, err := commands.NewReviewApplicationCommand(
		approved.ID(), application.StatusApproved, reviewer, "", "")
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewApplicationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
