package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/utils"
	"github.com/piresc/ojekdriver/services/driver"
)

// MaxDocumentSize caps verification uploads
const MaxDocumentSize = 10 << 20

// DriverHandler handles HTTP requests of the authenticated driver
type DriverHandler struct {
	driverUC driver.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC driver.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// GetState returns the driver snapshot
func (h *DriverHandler) GetState(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	state, err := h.driverUC.GetState(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "get driver state", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver state retrieved", state)
}

// SelectVehicle sets the vehicle type and optional brand and model
func (h *DriverHandler) SelectVehicle(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	profile, warnings, err := h.driverUC.SelectVehicle(c.Request().Context(), driverID, &req)
	if err != nil {
		return respondError(c, "select vehicle", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Vehicle selected", profile, warnings)
}

// SubmitDocument stores one verification document from the multipart "file" field
func (h *DriverHandler) SubmitDocument(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	kind := models.DocumentKind(c.Param("kind"))
	middleware.AddAttribute(c, middleware.AttrDocumentKind, string(kind))

	file, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Document file is required")
	}
	if file.Size > MaxDocumentSize {
		return utils.ErrorResponseHandler(c, http.StatusRequestEntityTooLarge, "Document exceeds the maximum size")
	}

	src, err := file.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read document")
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, MaxDocumentSize))
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read document")
	}

	upload := &models.DocumentUpload{
		FileName:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Size:        int64(len(content)),
		Content:     content,
	}

	profile, warnings, err := h.driverUC.SubmitDocument(c.Request().Context(), driverID, kind, upload)
	if err != nil {
		return respondError(c, "submit document", err)
	}

	logger.InfoCtx(c.Request().Context(), "Document submitted",
		logger.DriverID(driverID),
		logger.String("kind", string(kind)),
		logger.Int64("size", upload.Size))
	return utils.SuccessWithWarnings(c, http.StatusOK, "Document submitted", profile, warnings)
}

// SetPlateNumber records the vehicle plate
func (h *DriverHandler) SetPlateNumber(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PlateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	profile, err := h.driverUC.SetPlateNumber(c.Request().Context(), driverID, req.PlateNumber)
	if err != nil {
		return respondError(c, "set plate number", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Plate number saved", profile)
}

// CompleteOnboarding submits the profile for verification
func (h *DriverHandler) CompleteOnboarding(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.driverUC.CompleteOnboarding(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "complete onboarding", err)
	}

	status, message := http.StatusOK, "Driver verified"
	if profile.VerificationState == models.VerificationPending {
		status, message = http.StatusAccepted, "Documents under review"
	}
	return utils.SuccessResponse(c, status, message, profile)
}

// GoOnline makes the driver available for trips
func (h *DriverHandler) GoOnline(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	status, warnings, err := h.driverUC.GoOnline(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "go online", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Driver is online", status, warnings)
}

// GoOffline stops new offers for the driver
func (h *DriverHandler) GoOffline(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	status, warnings, err := h.driverUC.GoOffline(c.Request().Context(), driverID)
	if err != nil {
		return respondError(c, "go offline", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Driver is offline", status, warnings)
}

// UpdateLocation shares the driver's current position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.Location
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	event, warnings, err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, &req)
	if err != nil {
		return respondError(c, "update location", err)
	}
	return utils.SuccessWithWarnings(c, http.StatusOK, "Location updated", event, warnings)
}

// EndSession drops the driver's session
func (h *DriverHandler) EndSession(c echo.Context) error {
	driverID := middleware.DriverID(c)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.driverUC.EndSession(c.Request().Context(), driverID); err != nil {
		return respondError(c, "end session", err)
	}
	return c.NoContent(http.StatusNoContent)
}
