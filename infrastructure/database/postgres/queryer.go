package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto usado pelos repositórios; atendido por *Connection
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var _ Conn = (*Connection)(nil)
