package llm

import (
	"log/slog"

	"expense-analysis-backend/internal/config"
)

// ModelRouter chooses which model serves a task. Under the auto strategy,
// mechanical low-reasoning tasks (classify, search, analyze) go to the fast
// model and recommendation synthesis goes to the accurate one. The fixed
// strategies pin every task to a single model. Select never fails.
type ModelRouter struct {
	fastModel     string
	accurateModel string
	strategy      string
	logger        *slog.Logger
}

// NewModelRouter creates a router from the Ollama configuration.
func NewModelRouter(cfg config.OllamaConfig, logger *slog.Logger) RouterInterface {
	return &ModelRouter{
		fastModel:     cfg.FastModel,
		accurateModel: cfg.AccurateModel,
		strategy:      cfg.ModelStrategy,
		logger:        logger,
	}
}

// Select returns the model identifier for the given task type.
func (r *ModelRouter) Select(taskType TaskType) string {
	var model string

	switch r.strategy {
	case config.StrategyFast:
		model = r.fastModel
	case config.StrategyAccurate:
		model = r.accurateModel
	default:
		// Auto strategy
		switch taskType {
		case TaskClassify, TaskSearch, TaskAnalyze:
			model = r.fastModel
		case TaskRecommend:
			model = r.accurateModel
		default:
			model = r.fastModel
		}
	}

	r.logger.Debug("model selected",
		"task_type", string(taskType),
		"strategy", r.strategy,
		"model", model,
	)
	return model
}
