package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// PooledConnection is one checked out session of the *sql.DB pool. While a
// transaction is open statements run on it, otherwise on the raw connection.
type PooledConnection struct {
	id        uint64
	conn      *sql.Conn
	tx        *sql.Tx
	isolation persistence.IsolationLevel
}

func newPooledConnection(id uint64, conn *sql.Conn) *PooledConnection {
	return &PooledConnection{id: id, conn: conn}
}

// ID returns the checkout id
func (c *PooledConnection) ID() uint64 {
	return c.id
}

// AutoCommit reports whether no transaction is open
func (c *PooledConnection) AutoCommit() bool {
	return c.tx == nil
}

// SetIsolation sets the level of the next transaction
func (c *PooledConnection) SetIsolation(level persistence.IsolationLevel) {
	c.isolation = level
}

// SetAutoCommit opens a transaction when disabled and commits any open one when enabled
func (c *PooledConnection) SetAutoCommit(ctx context.Context, enabled bool) error {
	if !enabled {
		if c.tx != nil {
			return nil
		}
		tx, err := c.conn.BeginTx(ctx, &sql.TxOptions{Isolation: sqlIsolation(c.isolation)})
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		c.tx = tx
		return nil
	}

	if c.tx == nil {
		return nil
	}
	return c.Commit(ctx)
}

// Commit commits the open transaction
func (c *PooledConnection) Commit(_ context.Context) error {
	if c.tx == nil {
		return errors.New("commit: no transaction open")
	}
	tx := c.tx
	c.tx = nil
	return tx.Commit()
}

// Rollback discards the open transaction
func (c *PooledConnection) Rollback(_ context.Context) error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// connPool is where gorm sends statements for this connection
func (c *PooledConnection) connPool() gorm.ConnPool {
	if c.tx != nil {
		return c.tx
	}
	return c.conn
}

// close hands the session back to the pool, discarding a transaction left open
func (c *PooledConnection) close() error {
	var rbErr error
	if c.tx != nil {
		rbErr = c.Rollback(context.Background())
	}
	if err := c.conn.Close(); err != nil {
		return errors.Join(rbErr, err)
	}
	return rbErr
}

func sqlIsolation(level persistence.IsolationLevel) sql.IsolationLevel {
	switch level {
	case persistence.IsolationReadCommitted:
		return sql.LevelReadCommitted
	case persistence.IsolationRepeatableRead:
		return sql.LevelRepeatableRead
	case persistence.IsolationSerializable:
		return sql.LevelSerializable
	default:
		return sql.LevelDefault
	}
}
