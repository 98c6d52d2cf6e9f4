package llm

import "context"

// TaskType identifies the kind of work a prompt represents, used for
// model routing.
type TaskType string

const (
	TaskClassify  TaskType = "classify"
	TaskSearch    TaskType = "search"
	TaskAnalyze   TaskType = "analyze"
	TaskRecommend TaskType = "recommend"
	TaskGeneral   TaskType = "general"
)

// GenerateRequest carries one completion request to the backend.
type GenerateRequest struct {
	Prompt      string
	System      string
	TaskType    TaskType
	Temperature float64
	MaxTokens   int
}

// GeneratorInterface is the contract for the text generation backend.
type GeneratorInterface interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	CheckHealth(ctx context.Context) bool
}

// RouterInterface selects a model identifier for a task type.
type RouterInterface interface {
	Select(taskType TaskType) string
}
