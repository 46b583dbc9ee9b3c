package audit

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

// Target describes what a mutation touched.
type Target struct {
	Resource string
	Details  string
}

// Track runs a mutating operation and, when it succeeds, records exactly one
// audit entry for it. Every employee mutation goes through here.
func Track[T any](
	ctx context.Context,
	rec Recorder,
	actor access.Identity,
	action models.AuditAction,
	op func(ctx context.Context) (T, Target, error),
) (T, error) {
	result, target, err := op(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	rec.Dispatch(ctx, Event{
		Actor:   actor,
		Action:  action,
		Target:  target.Resource,
		Details: target.Details,
	})

	return result, nil
}
