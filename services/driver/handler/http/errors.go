package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/validation"
	"github.com/piresc/ojekdriver/internal/utils"
	"github.com/piresc/ojekdriver/services/driver/session"
)

// errorStatus maps use case errors to HTTP status codes. Order matters:
// the first match wins.
var errorStatus = []struct {
	err    error
	status int
}{
	{session.ErrNotVerified, http.StatusForbidden},
	{session.ErrInsufficientBalance, http.StatusPaymentRequired},

	{session.ErrTripNotFound, http.StatusNotFound},
	{session.ErrDepositNotFound, http.StatusNotFound},

	{session.ErrAlreadyHasActiveTrip, http.StatusConflict},
	{session.ErrTripNotAccepted, http.StatusConflict},
	{session.ErrTripNotPending, http.StatusConflict},
	{session.ErrDriverOffline, http.StatusConflict},
	{session.ErrProfileLocked, http.StatusConflict},
	{session.ErrDuplicateTrip, http.StatusConflict},
	{session.ErrAlreadyRated, http.StatusConflict},
	{session.ErrDepositSettled, http.StatusConflict},
	{session.ErrSessionClosed, http.StatusConflict},

	{session.ErrBelowMinimumDeposit, http.StatusUnprocessableEntity},
	{session.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{session.ErrAmountTooLarge, http.StatusUnprocessableEntity},
	{session.ErrUnsupportedPaymentMethod, http.StatusUnprocessableEntity},
	{session.ErrInvalidRating, http.StatusUnprocessableEntity},
	{session.ErrEmptyDocument, http.StatusUnprocessableEntity},
	{session.ErrUnknownDocument, http.StatusUnprocessableEntity},
	{session.ErrInvalidVehicleType, http.StatusUnprocessableEntity},

	{session.ErrPersistenceUnavailable, http.StatusServiceUnavailable},
}

// StatusFor returns the HTTP status for a use case error
func StatusFor(err error) int {
	var missing *session.MissingFieldsError
	if errors.As(err, &missing) {
		return http.StatusUnprocessableEntity
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope for a failed use case call
func respondError(c echo.Context, op string, err error) error {
	status := StatusFor(err)
	middleware.NoticeError(c, status, err)

	var missing *session.MissingFieldsError
	if errors.As(err, &missing) {
		return utils.ErrorResponseWithDetails(c, status, err.Error(), map[string][]string{
			"missing_fields": missing.Fields,
		})
	}

	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("operation", op),
			logger.DriverID(middleware.DriverID(c)),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to "+op)
	}

	logger.DebugCtx(c.Request().Context(), "Request rejected",
		logger.String("operation", op),
		logger.Int("status", status),
		logger.Err(err))
	return utils.ErrorResponseHandler(c, status, err.Error())
}

// validationFailed reports struct validation errors field by field
func validationFailed(c echo.Context, err error) error {
	return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, "Validation failed", validation.Details(err))
}
