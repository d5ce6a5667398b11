// Package http exposes the marketplace engine over an echo HTTP surface:
// the lifecycle transition operations, the aggregation queries, and the
// notification summary. Domain errors are mapped onto HTTP status codes at
// this boundary and nowhere else.
package http

import (
	"errors"
	"net/http"
	"time"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/application/usecases/queries"
	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitApplicationHandler  commands.SubmitApplicationCommandHandler
	reviewApplicationHandler  commands.ReviewApplicationCommandHandler
	createDriverHandler       commands.CreateDriverCommandHandler
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler
	removeDriverHandler       commands.RemoveDriverCommandHandler
	createParcelHandler       commands.CreateParcelCommandHandler
	transitionParcelHandler   commands.TransitionParcelCommandHandler
	rateParcelHandler         commands.RateParcelCommandHandler
	createPaymentHandler      commands.CreatePaymentCommandHandler
	completePaymentHandler    commands.CompletePaymentCommandHandler
	failPaymentHandler        commands.FailPaymentCommandHandler
	generatePayoutsHandler    commands.GeneratePayoutsCommandHandler

	// Query handlers
	applicationStatsHandler    queries.GetApplicationStatsQueryHandler
	parcelStatsHandler         queries.GetParcelStatsQueryHandler
	paymentStatsHandler        queries.GetPaymentStatsQueryHandler
	driverStatsHandler         queries.GetDriverStatsQueryHandler
	notificationSummaryHandler queries.GetNotificationSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitApplicationHandler commands.SubmitApplicationCommandHandler,
	reviewApplicationHandler commands.ReviewApplicationCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	transitionParcelHandler commands.TransitionParcelCommandHandler,
	rateParcelHandler commands.RateParcelCommandHandler,
	createPaymentHandler commands.CreatePaymentCommandHandler,
	completePaymentHandler commands.CompletePaymentCommandHandler,
	failPaymentHandler commands.FailPaymentCommandHandler,
	generatePayoutsHandler commands.GeneratePayoutsCommandHandler,
	applicationStatsHandler queries.GetApplicationStatsQueryHandler,
	parcelStatsHandler queries.GetParcelStatsQueryHandler,
	paymentStatsHandler queries.GetPaymentStatsQueryHandler,
	driverStatsHandler queries.GetDriverStatsQueryHandler,
	notificationSummaryHandler queries.GetNotificationSummaryQueryHandler,
) *Server {
	return &Server{
		submitApplicationHandler:   submitApplicationHandler,
		reviewApplicationHandler:   reviewApplicationHandler,
		createDriverHandler:        createDriverHandler,
		changeDriverStatusHandler:  changeDriverStatusHandler,
		removeDriverHandler:        removeDriverHandler,
		createParcelHandler:        createParcelHandler,
		transitionParcelHandler:    transitionParcelHandler,
		rateParcelHandler:          rateParcelHandler,
		createPaymentHandler:       createPaymentHandler,
		completePaymentHandler:     completePaymentHandler,
		failPaymentHandler:         failPaymentHandler,
		generatePayoutsHandler:     generatePayoutsHandler,
		applicationStatsHandler:    applicationStatsHandler,
		parcelStatsHandler:         parcelStatsHandler,
		paymentStatsHandler:        paymentStatsHandler,
		driverStatsHandler:         driverStatsHandler,
		notificationSummaryHandler: notificationSummaryHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/applications", s.SubmitApplication)
	api.POST("/applications/:id/review", s.ReviewApplication)

	api.POST("/drivers", s.CreateDriver)
	api.POST("/drivers/:id/status", s.ChangeDriverStatus)
	api.DELETE("/drivers/:id", s.RemoveDriver)

	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/:id/transition", s.TransitionParcel)
	api.POST("/parcels/:id/rating", s.RateParcel)

	api.POST("/payments", s.CreatePayment)
	api.POST("/payments/:id/complete", s.CompletePayment)
	api.POST("/payments/:id/fail", s.FailPayment)
	api.POST("/payouts/generate", s.GeneratePayouts)

	api.GET("/stats/applications", s.GetApplicationStats)
	api.GET("/stats/parcels", s.GetParcelStats)
	api.GET("/stats/payments", s.GetPaymentStats)
	api.GET("/stats/drivers", s.GetDriverStats)
	api.GET("/notifications/summary", s.GetNotificationSummary)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps the domain error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

type createdResponse struct {
	ID string `json:"id"`
}

// WaypointPayload carries one delivery endpoint in parcel requests.
type WaypointPayload struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p WaypointPayload) toDomain() (parcel.Waypoint, error) {
	location, err := kernel.NewLocation(p.Latitude, p.Longitude)
	if err != nil {
		return parcel.Waypoint{}, err
	}
	return parcel.NewWaypoint(p.Name, p.Address, location)
}

// SubmitApplication handles POST /api/v1/applications.
func (s *Server) SubmitApplication(ctx echo.Context) error {
	var req struct {
		ApplicantID   string `json:"applicantId"`
		FullName      string `json:"fullName"`
		Phone         string `json:"phone"`
		VehicleType   string `json:"vehicleType"`
		VehicleModel  string `json:"vehicleModel"`
		LicenseNumber string `json:"licenseNumber"`
		LicensePlate  string `json:"licensePlate"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	applicantID, err := kernel.UUIDFromString(req.ApplicantID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid applicant ID: "+err.Error())
	}

	applicationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitApplicationCommand(
		applicationID, applicantID,
		req.FullName, req.Phone,
		req.VehicleType, req.VehicleModel,
		req.LicenseNumber, req.LicensePlate,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.submitApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: applicationID.String()})
}

// ReviewApplication handles POST /api/v1/applications/:id/review.
func (s *Server) ReviewApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid application ID: "+err.Error())
	}

	var req struct {
		Target          string `json:"target"`
		ReviewerID      string `json:"reviewerId"`
		Notes           string `json:"notes"`
		RejectionReason string `json:"rejectionReason"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	target, err := application.StatusFromString(req.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid reviewer ID: "+err.Error())
	}

	cmd, err := commands.NewReviewApplicationCommand(applicationID, target, reviewerID, req.Notes, req.RejectionReason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.reviewApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers - direct admin registration.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req struct {
		UserID        string `json:"userId"`
		VehicleType   string `json:"vehicleType"`
		VehicleModel  string `json:"vehicleModel"`
		LicenseNumber string `json:"licenseNumber"`
		LicensePlate  string `json:"licensePlate"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid user ID: "+err.Error())
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, userID,
		req.VehicleType, req.VehicleModel,
		req.LicenseNumber, req.LicensePlate,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: driverID.String()})
}

// ChangeDriverStatus handles POST /api/v1/drivers/:id/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid driver ID: "+err.Error())
	}

	var req struct {
		Target string `json:"target"`
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	target, err := driver.StatusFromString(req.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, target, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.changeDriverStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) RemoveDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid driver ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveDriverCommand(driverID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req struct {
		SenderID      string          `json:"senderId"`
		Description   string          `json:"description"`
		Price         float64         `json:"price"`
		PaymentMethod string          `json:"paymentMethod"`
		Pickup        WaypointPayload `json:"pickup"`
		Dropoff       WaypointPayload `json:"dropoff"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid sender ID: "+err.Error())
	}

	method, err := parcel.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, err)
	}

	pickup, err := req.Pickup.toDomain()
	if err != nil {
		return errorJSON(ctx, err)
	}

	dropoff, err := req.Dropoff.toDomain()
	if err != nil {
		return errorJSON(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, senderID, req.Description, req.Price, method, pickup, dropoff)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: parcelID.String()})
}

// TransitionParcel handles POST /api/v1/parcels/:id/transition.
func (s *Server) TransitionParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid parcel ID: "+err.Error())
	}

	var req struct {
		Target       string  `json:"target"`
		DriverID     *string `json:"driverId"`
		CancelReason string  `json:"cancelReason"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	target, err := parcel.StatusFromString(req.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		dID, driverErr := kernel.UUIDFromString(*req.DriverID)
		if driverErr != nil {
			return badRequestJSON(ctx, "Invalid driver ID: "+driverErr.Error())
		}
		driverID = &dID
	}

	cmd, err := commands.NewTransitionParcelCommand(parcelID, target, driverID, req.CancelReason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.transitionParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateParcel handles POST /api/v1/parcels/:id/rating.
func (s *Server) RateParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid parcel ID: "+err.Error())
	}

	var req struct {
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateParcelCommand(parcelID, req.Rating, req.Comment)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.rateParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var req struct {
		DriverID          string    `json:"driverId"`
		Amount            float64   `json:"amount"`
		GrossEarnings     float64   `json:"grossEarnings"`
		PlatformFeeAmount float64   `json:"platformFeeAmount"`
		Method            string    `json:"method"`
		Type              string    `json:"type"`
		PeriodStart       time.Time `json:"periodStart"`
		PeriodEnd         time.Time `json:"periodEnd"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid driver ID: "+err.Error())
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	paymentType, err := payment.TypeFromString(req.Type)
	if err != nil {
		return errorJSON(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(
		paymentID, driverID,
		req.Amount, req.GrossEarnings, req.PlatformFeeAmount,
		method, paymentType,
		req.PeriodStart, req.PeriodEnd,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: paymentID.String()})
}

// CompletePayment handles POST /api/v1/payments/:id/complete.
func (s *Server) CompletePayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid payment ID: "+err.Error())
	}

	var req struct {
		TransactionID string `json:"transactionId"`
		ProcessedBy   string `json:"processedBy"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	processedBy, err := kernel.UUIDFromString(req.ProcessedBy)
	if err != nil {
		return badRequestJSON(ctx, "Invalid processor ID: "+err.Error())
	}

	cmd, err := commands.NewCompletePaymentCommand(paymentID, req.TransactionID, processedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.completePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailPayment handles POST /api/v1/payments/:id/fail.
func (s *Server) FailPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid payment ID: "+err.Error())
	}

	var req struct {
		Reason      string `json:"reason"`
		ProcessedBy string `json:"processedBy"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	processedBy, err := kernel.UUIDFromString(req.ProcessedBy)
	if err != nil {
		return badRequestJSON(ctx, "Invalid processor ID: "+err.Error())
	}

	cmd, err := commands.NewFailPaymentCommand(paymentID, req.Reason, processedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.failPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GeneratePayouts handles POST /api/v1/payouts/generate.
func (s *Server) GeneratePayouts(ctx echo.Context) error {
	var req struct {
		PeriodStart time.Time `json:"periodStart"`
		PeriodEnd   time.Time `json:"periodEnd"`
		Method      string    `json:"method"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewGeneratePayoutsCommand(req.PeriodStart, req.PeriodEnd, method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	generated, err := s.generatePayoutsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"generated": generated})
}

// GetApplicationStats handles GET /api/v1/stats/applications.
func (s *Server) GetApplicationStats(ctx echo.Context) error {
	stats, err := s.applicationStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetApplicationStatsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{
		"total":       stats.Total,
		"pending":     stats.Pending,
		"underReview": stats.UnderReview,
		"approved":    stats.Approved,
		"rejected":    stats.Rejected,
		"onHold":      stats.OnHold,
	})
}

// GetParcelStats handles GET /api/v1/stats/parcels.
func (s *Server) GetParcelStats(ctx echo.Context) error {
	stats, err := s.parcelStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetParcelStatsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"total":                 stats.Total,
		"pending":               stats.Pending,
		"active":                stats.Active,
		"delivered":             stats.Delivered,
		"cancelled":             stats.Cancelled,
		"totalFinalPrice":       stats.TotalFinalPrice,
		"totalDriverCommission": stats.TotalDriverCommission,
		"totalPlatformFee":      stats.TotalPlatformFee,
	})
}

// GetPaymentStats handles GET /api/v1/stats/payments.
func (s *Server) GetPaymentStats(ctx echo.Context) error {
	query, err := queries.NewGetPaymentStatsQuery(time.Now().UTC().Add(-queries.DefaultOverdueAge))
	if err != nil {
		return errorJSON(ctx, err)
	}

	stats, err := s.paymentStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"total":            stats.Total,
		"pending":          stats.Pending,
		"processing":       stats.Processing,
		"completed":        stats.Completed,
		"failed":           stats.Failed,
		"overduePending":   stats.OverduePending,
		"totalAmount":      stats.TotalAmount,
		"totalNetAmount":   stats.TotalNetAmount,
		"totalPlatformFee": stats.TotalPlatformFee,
		"pendingPayable":   stats.PendingPayable,
	})
}

// GetDriverStats handles GET /api/v1/stats/drivers.
func (s *Server) GetDriverStats(ctx echo.Context) error {
	stats, err := s.driverStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDriverStatsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{
		"total":     stats.Total,
		"pending":   stats.Pending,
		"approved":  stats.Approved,
		"suspended": stats.Suspended,
		"rejected":  stats.Rejected,
		"online":    stats.Online,
		"available": stats.Available,
	})
}

// GetNotificationSummary handles GET /api/v1/notifications/summary.
func (s *Server) GetNotificationSummary(ctx echo.Context) error {
	summary, err := s.notificationSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetNotificationSummaryQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	advisories := make([]map[string]any, 0, len(summary.Advisories))
	for _, advisory := range summary.Advisories {
		advisories = append(advisories, map[string]any{
			"severity": advisory.Severity,
			"message":  advisory.Message,
			"count":    advisory.Count,
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"advisories":    advisories,
		"totalAffected": summary.TotalAffected,
	})
}
