package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PassengerRepository is the read side of the passenger directory; the core
// only consumes the eligibility attribute.
type PassengerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT id, full_name, COALESCE(gender, ''), created_at FROM passengers WHERE id=$1`, id)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.FullName, &p.Gender, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: passenger %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("scan passenger: %w", err)
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
