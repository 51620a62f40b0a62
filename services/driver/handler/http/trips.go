package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/utils"
)

// ListPendingTrips returns offers waiting for the driver
func (h *DriverHandler) ListPendingTrips(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	trips, err := h.driverUC.ListPendingTrips(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "list pending trips", err)
	}
	if trips == nil {
		trips = []models.TripRequest{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending trips retrieved", trips)
}

// GetActiveTrip returns the accepted trip; 404 when there is none
func (h *DriverHandler) GetActiveTrip(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	trip, err := h.driverUC.GetActiveTrip(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "get active trip", err)
	}
	if trip == nil {
		return utils.NotFoundResponse(c, "No active trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active trip retrieved", trip)
}

// AcceptTrip accepts a pending offer
func (h *DriverHandler) AcceptTrip(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID := c.Param("tripID")
	middleware.AddAttribute(c, middleware.AttrTripID, tripID)

	trip, warnings, err := h.driverUC.AcceptTrip(c.Request().Context(), driverID, tripID)
	if err != nil {
		return respondError(c, "accept trip", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Trip accepted", trip, warnings)
}

// DeclineTrip drops a pending offer
func (h *DriverHandler) DeclineTrip(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID := c.Param("tripID")
	middleware.AddAttribute(c, middleware.AttrTripID, tripID)

	if err := h.driverUC.DeclineTrip(c.Request().Context(), driverID, tripID); err != nil {
		return respondError(c, "decline trip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip declined", nil)
}

// CompleteTrip finishes the active trip and charges the platform fee
func (h *DriverHandler) CompleteTrip(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID := c.Param("tripID")
	middleware.AddAttribute(c, middleware.AttrTripID, tripID)

	completion, warnings, err := h.driverUC.CompleteTrip(c.Request().Context(), driverID, tripID)
	if err != nil {
		return respondError(c, "complete trip", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Trip completed", completion, warnings)
}

// RatePassenger rates the passenger of a completed trip
func (h *DriverHandler) RatePassenger(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID := c.Param("tripID")

	var req models.PassengerRating
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	trip, warnings, err := h.driverUC.RatePassenger(c.Request().Context(), driverID, tripID, &req)
	if err != nil {
		return respondError(c, "rate passenger", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Passenger rated", trip, warnings)
}

// TripHistory lists completed trips in completion order
func (h *DriverHandler) TripHistory(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	history, err := h.driverUC.TripHistory(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "get trip history", err)
	}
	if history == nil {
		history = []models.CompletedTrip{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip history retrieved", history)
}

// OfferTrip queues an offer for a driver on behalf of the dispatch service
func (h *DriverHandler) OfferTrip(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if err := h.driverUC.OfferTrip(c.Request().Context(), driverID, &req); err != nil {
		return respondError(c, "offer trip", err)
	}

	caller, _ := c.Get(middleware.ContextCaller).(string)
	logger.InfoCtx(c.Request().Context(), "Trip offered over HTTP",
		logger.DriverID(driverID),
		logger.TripID(req.ID),
		logger.String("caller", caller))
	return utils.SuccessResponse(c, http.StatusCreated, "Trip offered", nil)
}
