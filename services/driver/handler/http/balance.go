package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/utils"
)

// GetBalance returns the driver's balance
func (h *DriverHandler) GetBalance(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, err := h.driverUC.GetBalance(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "get balance", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", balance)
}

// RequestDeposit starts a top-up. Pending deposits are answered with 202.
func (h *DriverHandler) RequestDeposit(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	middleware.AddAttribute(c, middleware.AttrDepositMethod, string(req.PaymentMethod))
	deposit, warnings, err := h.driverUC.RequestDeposit(c.Request().Context(), driverID, &req)
	if err != nil {
		return respondError(c, "request deposit", err)
	}

	if deposit.Status == models.NotificationPending {
		return utils.SuccessWithWarnings(c, http.StatusAccepted, "Deposit is being confirmed", deposit, warnings)
	}
	return utils.SuccessWithWarnings(c, http.StatusCreated, "Deposit credited", deposit, warnings)
}

// PaymentMethods lists the deposit channels
func (h *DriverHandler) PaymentMethods(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Payment methods retrieved", h.driverUC.PaymentMethods(c.Request().Context()))
}

// VerifyDeposit settles a pending deposit on behalf of the payment service
func (h *DriverHandler) VerifyDeposit(c echo.Context) error {
	driverID := c.Param("driverID")
	transactionID := c.Param("transactionID")
	if driverID == "" || transactionID == "" {
		return utils.BadRequestResponse(c, "Driver ID and transaction ID are required")
	}

	var req models.VerifyDepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	deposit, warnings, err := h.driverUC.VerifyDeposit(c.Request().Context(), driverID, transactionID, req.Verified)
	if err != nil {
		return respondError(c, "verify deposit", err)
	}

	message := "Deposit rejected"
	if deposit.Status == models.NotificationVerified {
		message = "Deposit verified"
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, message, deposit, warnings)
}
