package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// FlightRepository is the read side of the flight registry. The booking core
// only consumes flights; the registry CRUD lives elsewhere.
type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, number, from_airport, to_airport, departure_time, arrival_time, aircraft_model, capacity, status, base_price::text, multipliers, created_at, updated_at`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	return scanFlight(row)
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		f           domain.Flight
		basePrice   string
		multipliers []byte
	)
	err := row.Scan(&f.ID, &f.Number, &f.FromAirport, &f.ToAirport, &f.DepartureTime, &f.ArrivalTime,
		&f.AircraftModel, &f.Capacity, &f.Status, &basePrice, &multipliers, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: flight", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan flight: %w", err)
	}
	f.BasePrice, err = decimal.NewFromString(basePrice)
	if err != nil {
		return nil, fmt.Errorf("parse base price: %w", err)
	}
	if len(multipliers) > 0 {
		if err := json.Unmarshal(multipliers, &f.Multipliers); err != nil {
			return nil, fmt.Errorf("parse multipliers: %w", err)
		}
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
