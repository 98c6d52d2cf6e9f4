package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-analysis-backend/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_RecoverFromPanic tests that the middleware catches a panic
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("stage blew up")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

// TestPanicRecovery_NoTraceID tests panic recovery when no trace ID is set
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("stage blew up")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

// TestPanicRecovery_NormalFlow tests that the middleware is transparent without a panic
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
}
