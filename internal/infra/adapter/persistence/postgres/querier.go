// Package postgres implements the repository interfaces over PostgreSQL
// using database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"

	"project-board/internal/resilience/circuitbreaker"
)

// Querier abstracts the database handle so repositories work against a bare
// *sql.DB or one wrapped in a circuit breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*circuitbreaker.DBCircuitBreaker)(nil)
)
