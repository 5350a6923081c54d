package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// QueryInterceptor wraps *sql.DB and debug-logs every statement.
type QueryInterceptor struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return QueryInterceptor{db: db, log: zap.S().Named("store")}
}

func (q QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer q.trace(time.Now(), query, args)
	return q.db.QueryRowContext(ctx, query, args...)
}

func (q QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer q.trace(time.Now(), query, args)
	return q.db.QueryContext(ctx, query, args...)
}

func (q QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer q.trace(time.Now(), query, args)
	return q.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction. Statements issued on the returned *sql.Tx
// are not logged.
func (q QueryInterceptor) BeginTx(ctx context.Context) (*sql.Tx, error) {
	q.log.Debug("begin transaction")
	return q.db.BeginTx(ctx, nil)
}

func (q QueryInterceptor) trace(start time.Time, query string, args []any) {
	q.log.Debugw("query", "sql", query, "args", args, "duration", time.Since(start))
}
