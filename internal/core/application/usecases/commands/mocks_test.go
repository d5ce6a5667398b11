package commands_test

import (
	"context"
	"time"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/domain/model/account"
	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*application.Application); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationRepository) GetByApplicant(
	ctx context.Context, applicantID kernel.UUID,
) (*application.Application, error) {
	args := m.Called(ctx, applicantID)
	if a, ok := args.Get(0).(*application.Application); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*driver.Driver); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, userID)
	if d, ok := args.Get(0).(*driver.Driver); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetAllWithPendingEarnings(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if ds, ok := args.Get(0).([]*driver.Driver); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepository) ExistsPayoutForPeriod(
	ctx context.Context, driverID kernel.UUID, periodStart, periodEnd time.Time,
) (bool, error) {
	args := m.Called(ctx, driverID, periodStart, periodEnd)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetRole(ctx context.Context, userID kernel.UUID) (account.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(account.Role), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, userID kernel.UUID, role account.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

// mockTx embeds the transaction trio shared by every unit-of-work mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *mockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *mockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockApplicationUoW struct{ mockTx }

func (m *MockApplicationUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	return m.Called().Get(0).(commands.ApplicationUoW)
}

type MockDriverUoW struct{ mockTx }

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockParcelUoW struct{ mockTx }

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockReviewUoW struct{ mockTx }

func (m *MockReviewUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}

func (m *MockReviewUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockReviewUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockRemoveDriverUoW struct{ mockTx }

func (m *MockRemoveDriverUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockRemoveDriverUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockRemoveDriverUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockRemoveDriverUoWFactory struct{ mock.Mock }

func (m *MockRemoveDriverUoWFactory) Create() commands.RemoveDriverUoW {
	return m.Called().Get(0).(commands.RemoveDriverUoW)
}

type MockDeliveryUoW struct{ mockTx }

func (m *MockDeliveryUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockDeliveryUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockPayoutUoW struct{ mockTx }

func (m *MockPayoutUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockPayoutUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

type MockPayoutUoWFactory struct{ mock.Mock }

func (m *MockPayoutUoWFactory) Create() commands.PayoutUoW {
	return m.Called().Get(0).(commands.PayoutUoW)
}
