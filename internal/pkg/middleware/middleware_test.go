package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/ojekdriver/internal/pkg/jwt"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, DriverID(c))
	}, JWTAuthMiddleware(models.JWTConfig{Secret: testSecret}, jwtpkg.RoleDriver))

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid driver token", "Bearer " + signToken(t, "driver-9", jwtpkg.RoleDriver), http.StatusOK, "driver-9"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"passenger role", "Bearer " + signToken(t, "p-1", "passenger"), http.StatusForbidden, "Role not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	keys := map[string]string{"dispatch-service": "dispatch-key", "payment-service": ""}

	e := echo.New()
	e.POST("/internal", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(ContextCaller).(string))
	}, ValidateAPIKey(keys))

	tests := []struct {
		name string
		key  string
		code int
	}{
		{"valid key", "dispatch-key", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "guess", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "dispatch-service", rec.Body.String())
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestMiddlewarePropagatesRequestContext(t *testing.T) {
	cfg := models.JWTConfig{Secret: testSecret}
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		return c.String(http.StatusOK, requestcontext.RequestID(ctx)+"|"+requestcontext.DriverID(ctx))
	}, JWTAuthMiddleware(cfg, jwtpkg.RoleDriver))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-9")
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "driver-3", jwtpkg.RoleDriver))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-9|driver-3", rec.Body.String())
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.Use(PanicRecoveryWithZapMiddleware(logger.NewFromCore(core)))
	e.GET("/boom", func(c echo.Context) error {
		panic("nil session")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_id")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Panic recovered during request processing", entry.Message)
	assert.Equal(t, "nil session", entry.ContextMap()["panic_value"])
	assert.Contains(t, entry.ContextMap()["stack_trace"], "panic")
}

func TestPanicRecoveryRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}
