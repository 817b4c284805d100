package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// methods can run standalone or inside a coordinator transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager runs a function inside a single database transaction. Any error
// rolls everything back; no partial state is ever visible outside.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(q Querier) error) error
}

type PGTxManager struct {
	db          *pgxpool.Pool
	lockTimeout string
}

// NewTxManager wires a transaction manager over the pool. lockTimeoutMillis
// bounds every row-lock wait inside the transaction; exceeding it surfaces
// as a retryable lock timeout instead of an unbounded stall.
func NewTxManager(db *pgxpool.Pool, lockTimeoutMillis int) *PGTxManager {
	if lockTimeoutMillis <= 0 {
		lockTimeoutMillis = 3000
	}
	return &PGTxManager{db: db, lockTimeout: fmt.Sprintf("%dms", lockTimeoutMillis)}
}

func (m *PGTxManager) WithinTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// SET LOCAL is transaction scoped. The value is validated at
	// construction, so string interpolation is safe here.
	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+m.lockTimeout+"'"); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ TxManager = (*PGTxManager)(nil)
