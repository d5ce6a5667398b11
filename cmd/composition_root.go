package cmd

import (
	"log/slog"

	httpserver "courierops/internal/adapters/in/http"
	"courierops/internal/adapters/out/postgres"
	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/application/usecases/queries"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/core/domain/services"
	"courierops/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewApplicationCommandHandler() commands.ReviewApplicationCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDriverStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	var f commands.RemoveDriverUoWFactory = FuncRemoveDriverUoWFactory(func() commands.RemoveDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionParcelCommandHandler() (commands.TransitionParcelCommandHandler, error) {
	feeSchedule, err := services.NewFeeSchedule(c.configs.PlatformFeeRate, c.configs.DriverCommissionRate)
	if err != nil {
		return commands.TransitionParcelCommandHandler{}, err
	}

	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionParcelCommandHandler(f, feeSchedule)
}

func (c *CompositionRoot) CreateRateParcelCommandHandler() commands.RateParcelCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.createPayoutUoWFactory())
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.createPayoutUoWFactory())
}

func (c *CompositionRoot) CreateFailPaymentCommandHandler() commands.FailPaymentCommandHandler {
	return commands.NewFailPaymentCommandHandler(c.createPayoutUoWFactory())
}

func (c *CompositionRoot) CreateGeneratePayoutsCommandHandler() commands.GeneratePayoutsCommandHandler {
	return commands.NewGeneratePayoutsCommandHandler(c.createPayoutUoWFactory())
}

func (c *CompositionRoot) createPayoutUoWFactory() commands.PayoutUoWFactory {
	return FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetApplicationStatsQueryHandler() queries.GetApplicationStatsQueryHandler {
	return queries.NewGetApplicationStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelStatsQueryHandler() queries.GetParcelStatsQueryHandler {
	return queries.NewGetParcelStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentStatsQueryHandler() queries.GetPaymentStatsQueryHandler {
	return queries.NewGetPaymentStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverStatsQueryHandler() queries.GetDriverStatsQueryHandler {
	return queries.NewGetDriverStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationSummaryQueryHandler() queries.GetNotificationSummaryQueryHandler {
	return queries.NewGetNotificationSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() (*httpserver.Server, error) {
	transitionParcelHandler, err := c.CreateTransitionParcelCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpserver.NewServer(
		c.CreateSubmitApplicationCommandHandler(),
		c.CreateReviewApplicationCommandHandler(),
		c.CreateCreateDriverCommandHandler(),
		c.CreateChangeDriverStatusCommandHandler(),
		c.CreateRemoveDriverCommandHandler(),
		c.CreateCreateParcelCommandHandler(),
		transitionParcelHandler,
		c.CreateRateParcelCommandHandler(),
		c.CreateCreatePaymentCommandHandler(),
		c.CreateCompletePaymentCommandHandler(),
		c.CreateFailPaymentCommandHandler(),
		c.CreateGeneratePayoutsCommandHandler(),
		c.CreateGetApplicationStatsQueryHandler(),
		c.CreateGetParcelStatsQueryHandler(),
		c.CreateGetPaymentStatsQueryHandler(),
		c.CreateGetDriverStatsQueryHandler(),
		c.CreateGetNotificationSummaryQueryHandler(),
	), nil
}

// CreateJobManager assembles the background job manager from the configured
// schedules and payout method.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	payoutMethod, err := payment.MethodFromString(c.configs.PayoutMethod)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		c.CreateGeneratePayoutsCommandHandler(),
		c.CreateGetNotificationSummaryQueryHandler(),
		payoutMethod,
		c.configs.PayoutSchedule,
		c.configs.AdvisoryDigestSchedule,
		logger,
	), nil
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRemoveDriverUoWFactory func() commands.RemoveDriverUoW

func (f FuncRemoveDriverUoWFactory) Create() commands.RemoveDriverUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}
