package session

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс выполнения запросов, которому удовлетворяют *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
