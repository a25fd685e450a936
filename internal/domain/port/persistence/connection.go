package persistence

import (
	"context"
)

// IsolationLevel is the transaction isolation requested when auto-commit is disabled
type IsolationLevel int

const (
	// IsolationDefault leaves the choice to the store
	IsolationDefault IsolationLevel = iota
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

func (l IsolationLevel) String() string {
	switch l {
	case IsolationReadCommitted:
		return "read_committed"
	case IsolationRepeatableRead:
		return "repeatable_read"
	case IsolationSerializable:
		return "serializable"
	default:
		return "default"
	}
}

// Connection is one live session with the store. At any instant it belongs to
// at most one unit of work and is not safe for concurrent use.
type Connection interface {
	// ID identifies the checkout, not the physical session
	ID() uint64

	// AutoCommit reports whether statements commit individually
	AutoCommit() bool

	// SetIsolation sets the level used the next time auto-commit is disabled
	SetIsolation(level IsolationLevel)

	// SetAutoCommit disables auto-commit by opening a store transaction, or
	// enables it again. Enabling while a transaction is open commits it.
	//
	// Possible errors:
	// - raw store error: if the transaction cannot be opened or committed
	SetAutoCommit(ctx context.Context, enabled bool) error

	// Commit commits the open transaction
	//
	// Possible errors:
	// - raw store error: if the commit fails; the transaction is discarded
	Commit(ctx context.Context) error

	// Rollback discards the open transaction. Rolling back a transaction the
	// store already ended is not an error.
	//
	// Possible errors:
	// - raw store error: the transaction may still be open on the session. The
	//   caller then leaves auto-commit off and Release must discard it.
	Rollback(ctx context.Context) error
}

// ConnectionProvider hands out connections, usually from a pool.
// Implementations must be safe for concurrent use.
type ConnectionProvider interface {
	// Acquire checks a connection out of the pool, waiting a bounded time
	//
	// Possible errors:
	// - raw error: if the pool is exhausted or the store unreachable; the
	//   caller classifies it
	Acquire(ctx context.Context) (Connection, error)

	// Release returns the connection to the pool. A connection must be
	// released exactly once.
	Release(ctx context.Context, conn Connection) error
}

// StatementExecutor runs statements on a connection. Errors are returned raw,
// classification happens in the caller.
type StatementExecutor interface {
	// Exec runs a data modifying statement and reports rows affected
	Exec(ctx context.Context, conn Connection, statement string, args ...any) (int64, error)

	// Query scans the result of statement into dest and reports rows matched
	Query(ctx context.Context, conn Connection, dest any, statement string, args ...any) (int64, error)
}
