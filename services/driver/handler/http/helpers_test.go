package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/pkg/middleware"
	"github.com/piresc/ojekdriver/internal/pkg/validation"
	"github.com/piresc/ojekdriver/internal/utils"
	"github.com/piresc/ojekdriver/services/driver/mocks"
	"github.com/stretchr/testify/require"
)

const testDriverID = "driver-1"

func setupHandler(t *testing.T) (*DriverHandler, *mocks.MockDriverUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDriverUC(ctrl)
	return NewDriverHandler(mockUC), mockUC
}

func newContext(method, body, driverID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if driverID != "" {
		c.Set(middleware.ContextDriverID, driverID)
	}
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
