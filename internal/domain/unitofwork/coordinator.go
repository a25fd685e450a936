package unitofwork

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of unit of work spans
const TracerName = "github.com/amirhossein-jamali/account-ledger/unitofwork"

// Work is business logic executed inside a unit of work. Every data operation
// it performs must use Participating(tx).
type Work func(ctx context.Context, tx *Context) error

// Coordinator owns the connection lifecycle of units of work: it begins the
// transaction, runs the work, commits or rolls back, and always releases.
type Coordinator struct {
	provider     persistence.ConnectionProvider
	classifier   *errs.Classifier
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	observer     Observer
	tracer       trace.Tracer
	isolation    persistence.IsolationLevel
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithObserver reports lifecycle events to o
func WithObserver(o Observer) Option {
	return func(c *Coordinator) {
		c.observer = o
	}
}

// WithTracer replaces the global tracer
func WithTracer(t trace.Tracer) Option {
	return func(c *Coordinator) {
		c.tracer = t
	}
}

// WithIsolation sets the isolation level of every transaction
func WithIsolation(level persistence.IsolationLevel) Option {
	return func(c *Coordinator) {
		c.isolation = level
	}
}

// NewCoordinator creates a new Coordinator
func NewCoordinator(
	provider persistence.ConnectionProvider,
	classifier *errs.Classifier,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		provider:     provider,
		classifier:   classifier,
		logger:       logger,
		timeProvider: timeProvider,
		observer:     nopObserver{},
		tracer:       otel.Tracer(TracerName),
		isolation:    persistence.IsolationDefault,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes work as one unit of work. A failure inside work is returned as
// *errs.RollbackError after the rollback completed. If no connection can be
// acquired work is never invoked.
func (c *Coordinator) Run(ctx context.Context, work Work) error {
	return c.execute(ctx, "unitofwork.run", work, true)
}

// Within runs work according to scope. Participating scopes reuse the ambient
// context and leave commit to its owner; standalone scopes get a unit of work
// of their own whose failures are returned unwrapped.
func (c *Coordinator) Within(ctx context.Context, scope Scope, work Work) error {
	if scope.Mode() == ModeParticipating {
		tx := scope.Tx()
		if tx == nil {
			return fmt.Errorf("%w: participating scope without a transaction", errs.ErrInvalidTransactionState)
		}
		if !tx.Active() {
			return tx.invalidTransition("use")
		}
		return work(ctx, tx)
	}
	return c.execute(ctx, "unitofwork.standalone", work, false)
}

func (c *Coordinator) execute(ctx context.Context, spanName string, work Work, wrap bool) (err error) {
	ctx, span := c.tracer.Start(ctx, spanName)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, errs.KindOf(err).String())
		}
		span.End()
	}()

	tx, err := Begin(ctx, c.provider, c.classifier, c.logger, c.isolation)
	if err != nil {
		c.observer.AcquireFailed(errs.KindOf(err))
		return err
	}
	c.observer.Acquired()
	span.SetAttributes(attribute.Int64("db.connection_id", int64(tx.Connection().ID())))
	start := c.timeProvider.Now()

	defer func() {
		// End errors are logged by the context; the outcome is already decided
		_ = tx.End(ctx)
		c.observer.Released()
	}()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in unit of work, rolling back", map[string]any{
				"connection_id": tx.Connection().ID(),
				"panic":         fmt.Sprint(r),
			})
			_ = tx.Rollback(ctx)
			c.finish(span, OutcomeRolledBack, start)
			panic(r)
		}
	}()

	if workErr := work(ctx, tx); workErr != nil {
		rbErr := tx.Rollback(ctx)
		c.finish(span, OutcomeRolledBack, start)

		logFields := map[string]any{
			"connection_id": tx.Connection().ID(),
			"kind":          errs.KindOf(workErr).String(),
			"error":         workErr.Error(),
		}

		if wrap {
			c.logger.Warn("Unit of work rolled back", logFields)
			return &errs.RollbackError{Cause: workErr, RollbackErr: rbErr}
		}
		c.logger.Debug("Standalone operation rolled back", logFields)
		if rbErr != nil {
			return errors.Join(workErr, rbErr)
		}
		return workErr
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		c.finish(span, OutcomeRolledBack, start)
		return fmt.Errorf("commit unit of work: %w", commitErr)
	}

	c.finish(span, OutcomeCommitted, start)
	return nil
}

func (c *Coordinator) finish(span trace.Span, outcome Outcome, start time.Time) {
	span.SetAttributes(attribute.String("unitofwork.outcome", string(outcome)))
	c.observer.Finished(outcome, c.timeProvider.Since(start).Std())
}
