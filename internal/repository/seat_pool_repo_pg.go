package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
	pgDeadlockDetected = "40P01"
)

// SeatPoolRepository persists one row per (flight, class) holding the
// ordered available and booked seat-code lists. Mutations go through
// LockPool/SavePool under a caller-owned transaction so a read-check-write
// is serialized by the row lock.
type SeatPoolRepository interface {
	Initialize(ctx context.Context, q Querier, flightID int64, layouts map[domain.Class][]string) error
	GetPool(ctx context.Context, flightID int64, class domain.Class) (*domain.SeatPool, error)
	GetAllPools(ctx context.Context, flightID int64) ([]domain.SeatPool, error)
	IsAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) (bool, error)
	LockPool(ctx context.Context, q Querier, flightID int64, class domain.Class) (*domain.SeatPool, error)
	LockAllPools(ctx context.Context, q Querier, flightID int64) ([]domain.SeatPool, error)
	SavePool(ctx context.Context, q Querier, pool *domain.SeatPool) error
	ReplacePools(ctx context.Context, q Querier, flightID int64, layouts map[domain.Class][]string) error
}

type PGSeatPoolRepository struct {
	db *pgxpool.Pool
}

func NewSeatPoolRepository(db *pgxpool.Pool) SeatPoolRepository {
	return &PGSeatPoolRepository{db: db}
}

func (r *PGSeatPoolRepository) Initialize(ctx context.Context, q Querier, flightID int64, layouts map[domain.Class][]string) error {
	for _, class := range domain.Classes() {
		codes, ok := layouts[class]
		if !ok {
			continue
		}
		_, err := q.Exec(ctx, `INSERT INTO seat_pools (flight_id, class, available, booked) VALUES ($1, $2, $3, $4)`,
			flightID, class, codes, []string{})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return fmt.Errorf("%w: flight %d class %s", domain.ErrAlreadyInitialized, flightID, class)
			}
			return fmt.Errorf("insert seat pool: %w", err)
		}
	}
	return nil
}

func (r *PGSeatPoolRepository) GetPool(ctx context.Context, flightID int64, class domain.Class) (*domain.SeatPool, error) {
	row := r.db.QueryRow(ctx, `SELECT flight_id, class, available, booked FROM seat_pools WHERE flight_id=$1 AND class=$2`, flightID, class)
	return scanPool(row)
}

func (r *PGSeatPoolRepository) GetAllPools(ctx context.Context, flightID int64) ([]domain.SeatPool, error) {
	return queryPools(ctx, r.db, `SELECT flight_id, class, available, booked FROM seat_pools WHERE flight_id=$1 ORDER BY class`, flightID)
}

func (r *PGSeatPoolRepository) IsAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) (bool, error) {
	var available bool
	err := r.db.QueryRow(ctx, `SELECT $3 = ANY(available) FROM seat_pools WHERE flight_id=$1 AND class=$2`,
		flightID, class, seat).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%w: seat pool for flight %d class %s", domain.ErrNotFound, flightID, class)
		}
		return false, fmt.Errorf("check availability: %w", err)
	}
	return available, nil
}

func (r *PGSeatPoolRepository) LockPool(ctx context.Context, q Querier, flightID int64, class domain.Class) (*domain.SeatPool, error) {
	row := q.QueryRow(ctx, `SELECT flight_id, class, available, booked FROM seat_pools WHERE flight_id=$1 AND class=$2 FOR UPDATE`, flightID, class)
	pool, err := scanPool(row)
	if err != nil {
		return nil, mapLockErr(err)
	}
	return pool, nil
}

func (r *PGSeatPoolRepository) LockAllPools(ctx context.Context, q Querier, flightID int64) ([]domain.SeatPool, error) {
	pools, err := queryPools(ctx, q, `SELECT flight_id, class, available, booked FROM seat_pools WHERE flight_id=$1 ORDER BY class FOR UPDATE`, flightID)
	if err != nil {
		return nil, mapLockErr(err)
	}
	return pools, nil
}

func (r *PGSeatPoolRepository) SavePool(ctx context.Context, q Querier, pool *domain.SeatPool) error {
	cmd, err := q.Exec(ctx, `UPDATE seat_pools SET available=$3, booked=$4, updated_at=now() WHERE flight_id=$1 AND class=$2`,
		pool.FlightID, pool.Class, pool.Available.Codes(), pool.Booked.Codes())
	if err != nil {
		return fmt.Errorf("save seat pool: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: seat pool for flight %d class %s", domain.ErrNotFound, pool.FlightID, pool.Class)
	}
	return nil
}

// ReplacePools destructively swaps every pool row of the flight for the
// freshly generated layouts. Caller holds the row locks and has already
// verified that nothing is booked.
func (r *PGSeatPoolRepository) ReplacePools(ctx context.Context, q Querier, flightID int64, layouts map[domain.Class][]string) error {
	if _, err := q.Exec(ctx, `DELETE FROM seat_pools WHERE flight_id=$1`, flightID); err != nil {
		return fmt.Errorf("delete seat pools: %w", err)
	}
	return r.Initialize(ctx, q, flightID, layouts)
}

func scanPool(row pgx.Row) (*domain.SeatPool, error) {
	var (
		flightID  int64
		class     domain.Class
		available []string
		booked    []string
	)
	if err := row.Scan(&flightID, &class, &available, &booked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan seat pool: %w", err)
	}
	pool := domain.SeatPool{
		FlightID:  flightID,
		Class:     class,
		Available: domain.NewSeatSet(available),
		Booked:    domain.NewSeatSet(booked),
	}
	return &pool, nil
}

func queryPools(ctx context.Context, q Querier, sql string, args ...any) ([]domain.SeatPool, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query seat pools: %w", err)
	}
	defer rows.Close()

	pools := make([]domain.SeatPool, 0, 4)
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, err
		}
		pools = append(pools, *pool)
	}
	return pools, rows.Err()
}

// mapLockErr turns lock timeouts and deadlock aborts into the retryable
// sentinel; the transaction rolls back either way.
func mapLockErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgLockNotAvailable || pgErr.Code == pgDeadlockDetected) {
		return fmt.Errorf("%w: %s", domain.ErrLockTimeout, pgErr.Message)
	}
	return err
}

var _ SeatPoolRepository = (*PGSeatPoolRepository)(nil)
