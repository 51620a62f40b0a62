package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessWithWarnings(t *testing.T) {
	c, rec := newContext()

	err := SuccessWithWarnings(c, http.StatusOK, "Driver is online", map[string]bool{"online": true}, []string{"low_balance"})
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"low_balance"}, resp.Warnings)
}

func TestSuccessResponse_OmitsEmptyWarnings(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "created", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "warnings")
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		call    func(c echo.Context) error
		code    int
		message string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "invalid body") }, http.StatusBadRequest, "invalid body"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
			assert.False(t, resp.Success)
		})
	}
}

func TestErrorResponseWithDetails(t *testing.T) {
	c, rec := newContext()

	err := ErrorResponseWithDetails(c, http.StatusUnprocessableEntity, "missing required fields",
		map[string][]string{"missing_fields": {"plateNumber"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"missing required fields","code":422,"details":{"missing_fields":["plateNumber"]}}`, rec.Body.String())
}
