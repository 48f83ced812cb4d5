// Package postgres implements the transaction store over PostgreSQL.
package postgres

import (
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=postgres

type (
	// Metrics records outcome and duration of store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the single writer of off-chain transaction state.
type Repository struct {
	db      *sqlx.DB
	metrics Metrics
}

// NewRepository opens a connection pool for the given DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// NewRepositoryWithDB wraps an existing database handle. Used by tests.
func NewRepositoryWithDB(db *sqlx.DB, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}
