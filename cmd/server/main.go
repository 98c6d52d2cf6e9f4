package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/database"
	"expense-analysis-backend/internal/handlers"
	"expense-analysis-backend/internal/llm"
	custommw "expense-analysis-backend/internal/middleware"
	"expense-analysis-backend/internal/repositories"
	"expense-analysis-backend/internal/search"
	"expense-analysis-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on system env")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err.Error())
		}
	}()

	// Model backend and search client
	router := llm.NewModelRouter(cfg.Ollama, logger)
	generator := llm.NewOllamaClient(cfg.Ollama, router, logger)
	searchClient := search.NewDuckDuckGoClient(cfg.Search, logger)

	// Repositories
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	analysisRepo := repositories.NewAnalysisRepository(db.DB)
	recommendationRepo := repositories.NewRecommendationRepository(db.DB)

	// Pipeline stages
	metrics := services.NewPrometheusMetrics()
	classifier := services.NewClassifierService(generator, metrics, logger)
	researcher := services.NewResearchService(searchClient, cfg.Pipeline, metrics, logger)
	analyst := services.NewAnalystService(cfg.Pipeline, metrics, logger)
	strategist := services.NewStrategistService(generator, logger)
	orchestrator := services.NewOrchestratorService(
		classifier,
		researcher,
		analyst,
		strategist,
		expenseRepo,
		analysisRepo,
		recommendationRepo,
		metrics,
		cfg.Pipeline,
		logger,
	)

	analysisHandler := handlers.NewAnalysisHandler(orchestrator)
	healthHandler := handlers.NewHealthHandler(db, generator)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, custommw.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/analyze", analysisHandler.Analyze)
	api.GET("/analyses", analysisHandler.ListAnalyses)
	api.GET("/analyses/latest", analysisHandler.GetLatestAnalysis)
	api.GET("/analyses/:id", analysisHandler.GetAnalysis)
	api.DELETE("/analyses/:id", analysisHandler.DeleteAnalysis)
	api.GET("/expenses", analysisHandler.ListExpenses)
	api.GET("/expenses/totals", analysisHandler.GetExpenseTotals)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	// Pipeline runs wait on model inference, so writes get a generous timeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
			"search_enabled", cfg.Pipeline.EnableSearch,
			"sandbox_enabled", cfg.Pipeline.EnableSandbox,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err.Error())
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
