package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

const writeTimeout = 5 * time.Second

type Event struct {
	Actor   access.Identity
	Action  models.AuditAction
	Target  string
	Details string
	Origin  string
}

// Recorder accepts audit events. Recording never fails the caller.
type Recorder interface {
	Dispatch(ctx context.Context, ev Event)
}

type Option func(*Dispatcher)

// WithFailureHook registers a callback run after a failed audit write.
func WithFailureHook(fn func()) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.onFailure = fn
		}
	}
}

// Dispatcher writes audit entries synchronously, before the request that
// caused them responds. A failed write is logged and the event is lost.
type Dispatcher struct {
	logger    *Logger
	log       *zap.Logger
	onFailure func()
}

func NewDispatcher(logger *Logger, log *zap.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger:    logger,
		log:       log.Named("audit"),
		onFailure: func() {},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	ev.Actor = actorFrom(ctx, ev.Actor)
	if ev.Origin == "" {
		ev.Origin = OriginFrom(ctx)
	}

	if !ev.Action.Valid() {
		d.log.Error("audit event with unknown action dropped", zap.String("action", string(ev.Action)))
		d.onFailure()
		return
	}

	// The mutation already committed; a client disconnect must not cancel the entry.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := d.logger.Log(wctx, ev); err != nil {
		d.log.Error("audit write failed",
			zap.Error(err),
			zap.String("action", string(ev.Action)),
			zap.String("actor_id", ev.Actor.AccountID),
			zap.String("target", ev.Target),
		)
		d.onFailure()
	}
}
