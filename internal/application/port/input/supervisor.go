package input

import (
	"context"

	"finance-qa-agent/internal/domain/entity"
)

// Supervisor drives one full analysis run: user input, validation, worker
// calls and report assembly.
type Supervisor interface {
	Run(ctx context.Context) (*entity.Report, error)
}
