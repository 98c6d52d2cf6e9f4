package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"expense-analysis-backend/internal/config"
)

var (
	ErrBackendUnavailable = errors.New("generation backend is unavailable")
	ErrEmptyResponse      = errors.New("generation backend returned an empty response")
)

const healthCheckTimeout = 3 * time.Second

type generatePayload struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResult struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// OllamaClient talks to a local Ollama instance over its generate API.
// All requests go through the circuit breaker so repeated backend
// failures short-circuit instead of piling up timeouts.
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
	router     RouterInterface
	breaker    *CircuitBreaker
	logger     *slog.Logger
}

// NewOllamaClient creates a generation client from the Ollama configuration.
func NewOllamaClient(cfg config.OllamaConfig, router RouterInterface, logger *slog.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		router:  router,
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		logger:  logger,
	}
}

// Generate runs a single non-streaming completion. The model is chosen by
// the router from the request's task type.
func (c *OllamaClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if c.breaker.IsOpen() {
		return "", ErrCircuitBreakerOpen
	}

	model := c.router.Select(req.TaskType)

	payload := generatePayload{
		Model:  model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
		Options: generateOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.breaker.RecordFailure()
		c.logger.Error("generation request failed",
			"model", model,
			"task_type", string(req.TaskType),
			"error", err,
		)
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.breaker.RecordFailure()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("generation request rejected",
			"model", model,
			"status", resp.StatusCode,
			"body", string(msg),
		)
		return "", fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	var result generateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.breaker.RecordFailure()
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	if result.Response == "" {
		c.breaker.RecordFailure()
		return "", ErrEmptyResponse
	}

	c.breaker.RecordSuccess()
	c.logger.Debug("generation completed",
		"model", model,
		"task_type", string(req.TaskType),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return result.Response, nil
}

// CheckHealth reports whether the backend answers at all. It never returns
// an error so callers can report degraded status instead of failing.
func (c *OllamaClient) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode == http.StatusOK
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *OllamaClient) BreakerState() CircuitBreakerState {
	return c.breaker.GetState()
}
