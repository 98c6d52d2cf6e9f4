package llm

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"expense-analysis-backend/internal/config"
)

type RouterTestSuite struct {
	suite.Suite
	cfg config.OllamaConfig
}

func (s *RouterTestSuite) SetupTest() {
	s.cfg = config.OllamaConfig{
		FastModel:     "llama3.2:3b",
		AccurateModel: "llama3.1:8b",
		ModelStrategy: config.StrategyAuto,
	}
}

func (s *RouterTestSuite) newRouter(strategy string) RouterInterface {
	cfg := s.cfg
	cfg.ModelStrategy = strategy
	return NewModelRouter(cfg, slog.Default())
}

func (s *RouterTestSuite) TestAutoStrategy() {
	router := s.newRouter(config.StrategyAuto)

	tests := []struct {
		name     string
		taskType TaskType
		expected string
	}{
		{"classification uses fast model", TaskClassify, "llama3.2:3b"},
		{"search uses fast model", TaskSearch, "llama3.2:3b"},
		{"analysis uses fast model", TaskAnalyze, "llama3.2:3b"},
		{"recommendation uses accurate model", TaskRecommend, "llama3.1:8b"},
		{"general falls back to fast model", TaskGeneral, "llama3.2:3b"},
		{"unknown task falls back to fast model", TaskType("unknown"), "llama3.2:3b"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, router.Select(tt.taskType))
		})
	}
}

func (s *RouterTestSuite) TestFastStrategyPinsEveryTask() {
	router := s.newRouter(config.StrategyFast)

	for _, taskType := range []TaskType{TaskClassify, TaskSearch, TaskAnalyze, TaskRecommend, TaskGeneral} {
		s.Equal("llama3.2:3b", router.Select(taskType))
	}
}

func (s *RouterTestSuite) TestAccurateStrategyPinsEveryTask() {
	router := s.newRouter(config.StrategyAccurate)

	for _, taskType := range []TaskType{TaskClassify, TaskSearch, TaskAnalyze, TaskRecommend, TaskGeneral} {
		s.Equal("llama3.1:8b", router.Select(taskType))
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
