package input

import "context"

type ExecuteResult struct {
	FinalAnswer string
	Iterations  int
}

// TaskExecutor runs a free-form task through the LLM tool-calling loop.
type TaskExecutor interface {
	Execute(ctx context.Context, task string) (*ExecuteResult, error)
}
