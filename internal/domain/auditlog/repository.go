package auditlog

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/models"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Repository is the append-only Audit Store.
type Repository interface {
	Append(ctx context.Context, entry *models.AuditLog) error
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
