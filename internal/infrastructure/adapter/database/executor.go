package database

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// StatementExecutor runs statements through gorm on the session of a PooledConnection
type StatementExecutor struct {
	db *gorm.DB
}

// NewStatementExecutor creates an executor that builds statements with db's dialect
func NewStatementExecutor(db *gorm.DB) *StatementExecutor {
	return &StatementExecutor{db: db}
}

// Exec runs a data modifying statement and reports rows affected
func (e *StatementExecutor) Exec(ctx context.Context, conn persistence.Connection, statement string, args ...any) (int64, error) {
	session, err := e.session(ctx, conn)
	if err != nil {
		return 0, err
	}
	result := session.Exec(statement, args...)
	return result.RowsAffected, result.Error
}

// Query scans the rows of statement into dest and reports how many matched
func (e *StatementExecutor) Query(ctx context.Context, conn persistence.Connection, dest any, statement string, args ...any) (int64, error) {
	session, err := e.session(ctx, conn)
	if err != nil {
		return 0, err
	}
	result := session.Raw(statement, args...).Scan(dest)
	return result.RowsAffected, result.Error
}

// session returns a fresh gorm session whose statements go to conn's open
// transaction, or to the bare connection when auto-commit is on
func (e *StatementExecutor) session(ctx context.Context, conn persistence.Connection) (*gorm.DB, error) {
	pooled, ok := conn.(*PooledConnection)
	if !ok {
		return nil, fmt.Errorf("executor: unexpected connection type %T", conn)
	}
	s := e.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	s.Statement.ConnPool = pooled.connPool()
	return s, nil
}
