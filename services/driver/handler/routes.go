package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/jwt"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/metrics"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	nrpkg "github.com/piresc/ojekdriver/internal/pkg/newrelic"
	"github.com/piresc/ojekdriver/services/driver"
	httpHandler "github.com/piresc/ojekdriver/services/driver/handler/http"
	natsHandler "github.com/piresc/ojekdriver/services/driver/handler/nats"
)

// Handler combines all handlers for the driver service
type Handler struct {
	driverHTTP   *httpHandler.DriverHandler
	dispatchNATS *natsHandler.DispatchHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler. natsClient may be nil when
// NATS is disabled.
func NewHandler(
	driverUC driver.DriverUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	h := &Handler{
		driverHTTP: httpHandler.NewDriverHandler(driverUC),
		cfg:        cfg,
	}
	if natsClient != nil {
		h.dispatchNATS = natsHandler.NewDispatchHandler(driverUC, natsClient, nrApp)
	}
	return h
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, m *metrics.Metrics) {
	trace := nrpkg.TraceHandler

	api := e.Group("/api/v1")
	api.GET("/payment-methods", trace("Driver.PaymentMethods", h.driverHTTP.PaymentMethods))

	// Driver routes (JWT with the driver role)
	me := api.Group("/drivers/me", middleware.JWTAuthMiddleware(h.cfg.JWT, jwt.RoleDriver))
	me.GET("", trace("Driver.GetState", h.driverHTTP.GetState))
	me.DELETE("/session", trace("Driver.EndSession", h.driverHTTP.EndSession))

	me.PUT("/vehicle", trace("Driver.SelectVehicle", h.driverHTTP.SelectVehicle))
	me.POST("/documents/:kind", trace("Driver.SubmitDocument", h.driverHTTP.SubmitDocument))
	me.PUT("/plate", trace("Driver.SetPlateNumber", h.driverHTTP.SetPlateNumber))
	me.POST("/onboarding", trace("Driver.CompleteOnboarding", h.driverHTTP.CompleteOnboarding))

	me.POST("/online", trace("Driver.GoOnline", h.driverHTTP.GoOnline))
	me.POST("/offline", trace("Driver.GoOffline", h.driverHTTP.GoOffline))
	me.PUT("/location", trace("Driver.UpdateLocation", h.driverHTTP.UpdateLocation))

	me.GET("/balance", trace("Driver.GetBalance", h.driverHTTP.GetBalance))
	me.POST("/deposits", trace("Driver.RequestDeposit", h.driverHTTP.RequestDeposit))

	trips := me.Group("/trips")
	trips.GET("/pending", trace("Driver.ListPendingTrips", h.driverHTTP.ListPendingTrips))
	trips.GET("/active", trace("Driver.GetActiveTrip", h.driverHTTP.GetActiveTrip))
	trips.GET("/history", trace("Driver.TripHistory", h.driverHTTP.TripHistory))
	trips.POST("/:tripID/accept", trace("Driver.AcceptTrip", h.driverHTTP.AcceptTrip))
	trips.POST("/:tripID/decline", trace("Driver.DeclineTrip", h.driverHTTP.DeclineTrip))
	trips.POST("/:tripID/complete", trace("Driver.CompleteTrip", h.driverHTTP.CompleteTrip))
	trips.POST("/:tripID/rating", trace("Driver.RatePassenger", h.driverHTTP.RatePassenger))

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(map[string]string{
		"dispatch-service": h.cfg.APIKey.DispatchService,
		"payment-service":  h.cfg.APIKey.PaymentService,
	}))
	internalDrivers := internal.Group("/drivers/:driverID")
	internalDrivers.POST("/trips", trace("Internal.OfferTrip", h.driverHTTP.OfferTrip))
	internalDrivers.POST("/deposits/:transactionID/verify", trace("Internal.VerifyDeposit", h.driverHTTP.VerifyDeposit))

	e.GET("/metrics", m.Handler())
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	if h.dispatchNATS == nil {
		logger.Info("NATS disabled, dispatch consumer not started")
		return nil
	}
	return h.dispatchNATS.InitNATSConsumers()
}

// StopNATSConsumers unsubscribes the NATS consumers
func (h *Handler) StopNATSConsumers() {
	if h.dispatchNATS != nil {
		h.dispatchNATS.Stop()
	}
}
