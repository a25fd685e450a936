package unitofwork

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// State is the lifecycle position of a Context
type State int

const (
	StateOpen State = iota
	StateCommitted
	StateRolledBack
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Context binds one connection to one unit of work. It moves strictly forward
// through open, committed or rolled-back, and closed. A Context is owned by a
// single goroutine and must not be shared.
type Context struct {
	conn       persistence.Connection
	provider   persistence.ConnectionProvider
	classifier *errs.Classifier
	logger     coreport.Logger
	isolation  persistence.IsolationLevel
	state      State
	// set when the store may still hold the transaction open
	rollbackFailed bool
}

// Begin acquires a connection from provider and disables its auto-commit.
// If the transaction cannot be opened the connection is released again.
func Begin(
	ctx context.Context,
	provider persistence.ConnectionProvider,
	classifier *errs.Classifier,
	logger coreport.Logger,
	isolation persistence.IsolationLevel,
) (*Context, error) {
	conn, err := provider.Acquire(ctx)
	if err != nil {
		classified := classifier.Classify(err, "acquire", "")
		logger.Warn("Failed to acquire connection", classified.LogFields())
		return nil, classified
	}

	conn.SetIsolation(isolation)
	if err := conn.SetAutoCommit(ctx, false); err != nil {
		classified := classifier.Classify(err, "begin", "")
		logger.Error("Failed to disable auto-commit", classified.LogFields())
		if relErr := provider.Release(ctx, conn); relErr != nil {
			logger.Error("Failed to release connection after begin failure", map[string]any{
				"connection_id": conn.ID(),
				"error":         relErr.Error(),
			})
		}
		return nil, classified
	}

	logger.Debug("Transaction started", map[string]any{
		"connection_id": conn.ID(),
		"isolation":     isolation.String(),
	})

	return &Context{
		conn:       conn,
		provider:   provider,
		classifier: classifier,
		logger:     logger,
		isolation:  isolation,
		state:      StateOpen,
	}, nil
}

// Connection returns the connection bound to this unit of work
func (c *Context) Connection() persistence.Connection {
	return c.conn
}

// State returns the current lifecycle state
func (c *Context) State() State {
	return c.state
}

// Active reports whether statements may still run in this context
func (c *Context) Active() bool {
	return c.state == StateOpen
}

// Isolation returns the isolation level the transaction was opened with
func (c *Context) Isolation() persistence.IsolationLevel {
	return c.isolation
}

// Commit commits the transaction. A failed commit leaves the context
// rolled back since the store has discarded the transaction.
func (c *Context) Commit(ctx context.Context) error {
	if c.state != StateOpen {
		return c.invalidTransition("commit")
	}

	if err := c.conn.Commit(ctx); err != nil {
		c.state = StateRolledBack
		classified := c.classifier.Classify(err, "commit", "")
		c.logger.Error("Commit failed", classified.LogFields())
		return classified
	}

	c.state = StateCommitted
	c.logger.Debug("Transaction committed", map[string]any{
		"connection_id": c.conn.ID(),
	})
	return nil
}

// Rollback rolls the transaction back. Calling it again after a rollback is a no-op.
func (c *Context) Rollback(ctx context.Context) error {
	switch c.state {
	case StateRolledBack:
		return nil
	case StateOpen:
	default:
		return c.invalidTransition("rollback")
	}

	c.state = StateRolledBack
	if err := c.conn.Rollback(ctx); err != nil {
		c.rollbackFailed = true
		classified := c.classifier.Classify(err, "rollback", "")
		c.logger.Error("Rollback failed", classified.LogFields())
		return classified
	}

	c.logger.Debug("Transaction rolled back", map[string]any{
		"connection_id": c.conn.ID(),
	})
	return nil
}

// End restores auto-commit and releases the connection. A context that is
// still open is rolled back first. After a failed rollback auto-commit is left
// off, since enabling it would commit whatever the store kept. End may be
// called only once.
func (c *Context) End(ctx context.Context) error {
	if c.state == StateClosed {
		return c.invalidTransition("end")
	}

	var endErrs []error
	if c.state == StateOpen {
		c.logger.Warn("Ending open transaction, rolling back", map[string]any{
			"connection_id": c.conn.ID(),
		})
		if err := c.Rollback(ctx); err != nil {
			endErrs = append(endErrs, err)
		}
	}

	if c.rollbackFailed {
		c.logger.Warn("Releasing connection without restoring auto-commit after failed rollback", map[string]any{
			"connection_id": c.conn.ID(),
		})
	} else if err := c.conn.SetAutoCommit(ctx, true); err != nil {
		endErrs = append(endErrs, c.classifier.Classify(err, "restoreAutoCommit", ""))
	}
	if err := c.provider.Release(ctx, c.conn); err != nil {
		endErrs = append(endErrs, c.classifier.Classify(err, "release", ""))
	}
	c.state = StateClosed

	if len(endErrs) > 0 {
		err := errors.Join(endErrs...)
		c.logger.Error("Failed to end transaction cleanly", map[string]any{
			"connection_id": c.conn.ID(),
			"error":         err.Error(),
		})
		return err
	}
	return nil
}

func (c *Context) invalidTransition(op string) error {
	return fmt.Errorf("%w: cannot %s a %s transaction", errs.ErrInvalidTransactionState, op, c.state)
}
