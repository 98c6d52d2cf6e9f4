package handlers

import (
	"errors"
	"net/http"
	"strings"

	"expense-analysis-backend/internal/dto"
	apperrors "expense-analysis-backend/internal/errors"
	"expense-analysis-backend/internal/models"
	"expense-analysis-backend/internal/repositories"
	"expense-analysis-backend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AnalysisHandler handles expense analysis HTTP requests
type AnalysisHandler struct {
	orchestrator services.OrchestratorInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(orchestrator services.OrchestratorInterface) *AnalysisHandler {
	return &AnalysisHandler{orchestrator: orchestrator}
}

// Analyze runs the full pipeline on a batch of raw expense texts
// @Summary Analyze expenses
// @Description Parse raw expense texts, research prices, compute budget metrics, and generate recommendations
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Raw expense texts with optional income and period"
// @Success 200 {object} dto.AnalyzeResponse "Full pipeline result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request or ANALYSIS_002 - No expenses parsed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Request body must be valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		// The custom error handler formats validator.ValidationErrors
		return err
	}

	result, err := h.orchestrator.Run(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoExpensesParsed):
			return SendError(c, apperrors.AnalysisNoExpensesParsed)
		case errors.Is(err, services.ErrNoExpenses):
			return SendError(c, apperrors.AnalysisEmptyInput)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, buildAnalyzeResponse(result))
}

// GetAnalysis returns one archived analysis with its recommendation
// @Summary Get analysis
// @Description Retrieve a single archived analysis and its recommendation by ID
// @Tags Analysis
// @Produce json
// @Param id path string true "Analysis ID (UUID)"
// @Success 200 {object} dto.AnalysisDetailResponse "Archived analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid analysis ID"
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_003 - Analysis not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid analysis ID"))
	}

	analysis, recommendation, err := h.orchestrator.GetAnalysis(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return SendError(c, apperrors.AnalysisNotFound)
		}
		return SendSystemError(c, err)
	}

	response := dto.AnalysisDetailResponse{
		Analysis: dto.FromAnalysis(analysis),
	}
	if recommendation != nil {
		rec := dto.FromRecommendation(recommendation)
		response.Recommendation = &rec
	}

	return c.JSON(http.StatusOK, response)
}

// GetLatestAnalysis returns the most recent archived analysis
// @Summary Get latest analysis
// @Description Retrieve the most recently created analysis and its recommendation
// @Tags Analysis
// @Produce json
// @Success 200 {object} dto.AnalysisDetailResponse "Latest archived analysis"
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_003 - No analyses stored yet"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analyses/latest [get]
func (h *AnalysisHandler) GetLatestAnalysis(c echo.Context) error {
	analysis, recommendation, err := h.orchestrator.LatestAnalysis()
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return SendError(c, apperrors.AnalysisNotFound)
		}
		return SendSystemError(c, err)
	}

	response := dto.AnalysisDetailResponse{
		Analysis: dto.FromAnalysis(analysis),
	}
	if recommendation != nil {
		rec := dto.FromRecommendation(recommendation)
		response.Recommendation = &rec
	}

	return c.JSON(http.StatusOK, response)
}

// ListAnalyses returns the paginated analysis history, newest first
// @Summary List analyses
// @Description Retrieve paginated analysis history ordered by creation time descending
// @Tags Analysis
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListAnalysesResponse "Paginated analysis history"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analyses [get]
func (h *AnalysisHandler) ListAnalyses(c echo.Context) error {
	offset, limit := getPagination(c)

	analyses, total, err := h.orchestrator.ListAnalyses(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	items := make([]dto.AnalysisResponse, 0, len(analyses))
	for i := range analyses {
		items = append(items, dto.FromAnalysis(&analyses[i]))
	}

	return c.JSON(http.StatusOK, dto.ListAnalysesResponse{
		Analyses: items,
		Pagination: dto.PaginationInfo{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}

// DeleteAnalysis removes an archived analysis
// @Summary Delete analysis
// @Description Remove an archived analysis by ID
// @Tags Analysis
// @Param id path string true "Analysis ID (UUID)"
// @Success 204 "Analysis deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid analysis ID"
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_003 - Analysis not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analyses/{id} [delete]
func (h *AnalysisHandler) DeleteAnalysis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid analysis ID"))
	}

	if err := h.orchestrator.DeleteAnalysis(id); err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return SendError(c, apperrors.AnalysisNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListExpenses returns the paginated stored expense list, newest first
// @Summary List expenses
// @Description Retrieve paginated stored expenses ordered by creation time descending
// @Tags Expenses
// @Produce json
// @Param category query string false "Restrict to one category (e.g. FOOD)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListExpensesResponse "Paginated expense list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [get]
func (h *AnalysisHandler) ListExpenses(c echo.Context) error {
	offset, limit := getPagination(c)

	var category models.Category
	if raw := c.QueryParam("category"); raw != "" {
		category = models.Category(strings.ToUpper(strings.TrimSpace(raw)))
		if !category.Valid() {
			return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Unknown expense category"))
		}
	}

	expenses, total, err := h.orchestrator.ListExpenses(category, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, dto.FromExpense(&expenses[i]))
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: items,
		Pagination: dto.PaginationInfo{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}

// GetExpenseTotals returns the all-time spend per category
// @Summary Expense totals
// @Description Sum all stored expense amounts grouped by category
// @Tags Expenses
// @Produce json
// @Success 200 {object} dto.ExpenseTotalsResponse "Per-category totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/totals [get]
func (h *AnalysisHandler) GetExpenseTotals(c echo.Context) error {
	totals, err := h.orchestrator.ExpenseTotals()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseTotalsResponse{Totals: totals})
}

func buildAnalyzeResponse(result *services.PipelineResult) dto.AnalyzeResponse {
	timings := make([]dto.StageTimingResponse, 0, len(result.StageTimings))
	for _, st := range result.StageTimings {
		timings = append(timings, dto.StageTimingResponse{
			Stage:      st.Stage,
			DurationMS: st.Duration.Milliseconds(),
		})
	}

	return dto.AnalyzeResponse{
		AnalysisID:      result.Analysis.ID,
		Expenses:        dto.FromExpenses(result.Expenses),
		Analysis:        dto.FromAnalysis(result.Analysis),
		Recommendation:  dto.FromRecommendation(result.Recommendation),
		StageTimings:    timings,
		TotalDurationMS: result.TotalDuration.Milliseconds(),
	}
}

func getPagination(c echo.Context) (offset, limit int) {
	offset = getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit = getIntParam(c, "limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return offset, limit
}
