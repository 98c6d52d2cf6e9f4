package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-analysis-backend/internal/database"
	"expense-analysis-backend/internal/llm"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type stubGenerator struct {
	healthy bool
}

func (g *stubGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	return "", llm.ErrBackendUnavailable
}

func (g *stubGenerator) CheckHealth(ctx context.Context) bool {
	return g.healthy
}

// HealthHandlerTestSuite is the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) getHealth(handler *HealthHandler) (*httptest.ResponseRecorder, HealthResponse) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(handler.Health(c))

	var resp HealthResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func (s *HealthHandlerTestSuite) TestHealth_AllComponentsUp() {
	handler := NewHealthHandler(s.db, &stubGenerator{healthy: true})

	rec, resp := s.getHealth(handler)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", resp.Status)
	s.Equal("up", resp.Components["database"])
	s.Equal("up", resp.Components["llm"])
}

func (s *HealthHandlerTestSuite) TestHealth_LLMDown() {
	handler := NewHealthHandler(s.db, &stubGenerator{healthy: false})

	// A cold backend degrades the service without failing the request
	rec, resp := s.getHealth(handler)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("degraded", resp.Status)
	s.Equal("up", resp.Components["database"])
	s.Equal("down", resp.Components["llm"])
}

func (s *HealthHandlerTestSuite) TestHealth_DatabaseDown() {
	s.NoError(s.db.Close())
	handler := NewHealthHandler(s.db, &stubGenerator{healthy: true})

	rec, resp := s.getHealth(handler)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("degraded", resp.Status)
	s.Equal("down", resp.Components["database"])
}
