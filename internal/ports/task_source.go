package ports

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// TaskSource is an external activity source that yields reportable tasks for
// a resolved date range. Sources are expected to be pre-authenticated; a
// source with nothing in range returns an empty slice, not an error.
type TaskSource interface {
	Name() string
	Tasks(ctx context.Context, r domain.Range) ([]domain.Task, error)
}
