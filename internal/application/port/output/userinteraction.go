package output

import "context"

type UserInteractionPort interface {
	AskQuestion(ctx context.Context, question string) (string, error)
	ShowMessage(ctx context.Context, message string)
	ShowError(ctx context.Context, message string)

	ShowStepStart(ctx context.Context, step string)
	ShowStepResult(ctx context.Context, step, result string, isError bool)
}
