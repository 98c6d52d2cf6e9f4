package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"expense-analysis-backend/internal/config"
)

type ClientTestSuite struct {
	suite.Suite
}

func (s *ClientTestSuite) newClient(baseURL string) *OllamaClient {
	cfg := config.OllamaConfig{
		BaseURL:        baseURL,
		FastModel:      "llama3.2:3b",
		AccurateModel:  "llama3.1:8b",
		RequestTimeout: 5 * time.Second,
		ModelStrategy:  config.StrategyAuto,
	}
	router := NewModelRouter(cfg, slog.Default())
	return NewOllamaClient(cfg, router, slog.Default())
}

func (s *ClientTestSuite) TestGenerateSuccess() {
	var captured generatePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/generate", r.URL.Path)
		s.NoError(json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(generateResult{Response: "FOOD", Done: true})
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	response, err := client.Generate(context.Background(), GenerateRequest{
		Prompt:      "categorize this",
		System:      "you are a classifier",
		TaskType:    TaskClassify,
		Temperature: 0.1,
		MaxTokens:   64,
	})

	s.NoError(err)
	s.Equal("FOOD", response)
	s.Equal("llama3.2:3b", captured.Model)
	s.Equal("categorize this", captured.Prompt)
	s.Equal("you are a classifier", captured.System)
	s.False(captured.Stream)
	s.InDelta(0.1, captured.Options.Temperature, 0.0001)
	s.Equal(64, captured.Options.NumPredict)
}

func (s *ClientTestSuite) TestGenerateRoutesRecommendationToAccurateModel() {
	var captured generatePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(generateResult{Response: "save more", Done: true})
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Prompt:   "advise me",
		TaskType: TaskRecommend,
	})

	s.NoError(err)
	s.Equal("llama3.1:8b", captured.Model)
}

func (s *ClientTestSuite) TestGenerateServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", TaskType: TaskClassify})

	s.ErrorIs(err, ErrBackendUnavailable)
	s.Equal(1, client.breaker.GetFailureCount())
}

func (s *ClientTestSuite) TestGenerateEmptyResponse() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResult{Response: "", Done: true})
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", TaskType: TaskClassify})

	s.ErrorIs(err, ErrEmptyResponse)
}

func (s *ClientTestSuite) TestGenerateUnreachableBackend() {
	client := s.newClient("http://127.0.0.1:1")
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", TaskType: TaskClassify})

	s.ErrorIs(err, ErrBackendUnavailable)
}

func (s *ClientTestSuite) TestGenerateShortCircuitsWhenBreakerOpen() {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures; i++ {
		_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", TaskType: TaskClassify})
		s.Error(err)
	}

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", TaskType: TaskClassify})
	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Equal(DefaultCircuitBreakerConfig().MaxFailures, requests)
}

func (s *ClientTestSuite) TestCheckHealth() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	s.True(client.CheckHealth(context.Background()))
}

func (s *ClientTestSuite) TestCheckHealthUnreachable() {
	client := s.newClient("http://127.0.0.1:1")
	s.False(client.CheckHealth(context.Background()))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
