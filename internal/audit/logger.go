package audit

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/auditlog"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

// Logger turns events into audit rows.
type Logger struct {
	repo auditlog.Repository
}

func New(repo auditlog.Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	entry := models.AuditLog{
		ActorID:        ev.Actor.AccountID,
		ActorEmail:     ev.Actor.Email,
		ActorRole:      string(ev.Actor.Role),
		Action:         ev.Action,
		TargetResource: ev.Target,
		Details:        ev.Details,
		IPAddress:      ev.Origin,
	}

	return l.repo.Append(ctx, &entry)
}

type originKey struct{}

// WithOrigin stores the client address audit entries are stamped with.
func WithOrigin(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, originKey{}, ip)
}

func OriginFrom(ctx context.Context) string {
	ip, _ := ctx.Value(originKey{}).(string)
	return ip
}

// actorFrom falls back to the identity on the context when the caller did
// not pass one explicitly.
func actorFrom(ctx context.Context, actor access.Identity) access.Identity {
	if actor.AccountID != "" {
		return actor
	}
	if id, ok := access.IdentityFrom(ctx); ok {
		return id
	}
	return actor
}
