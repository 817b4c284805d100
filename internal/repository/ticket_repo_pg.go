package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TicketRepository writes ticket rows. Mutations take a Querier so they run
// inside the same transaction as the seat move they belong to.
type TicketRepository interface {
	Insert(ctx context.Context, q Querier, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByIDForUpdate(ctx context.Context, q Querier, id string) (*domain.Ticket, error)
	Update(ctx context.Context, q Querier, ticket *domain.Ticket) error
	Delete(ctx context.Context, q Querier, id string) error
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketColumns = `id, flight_id, passenger_id, class, seat_number, price::text, payment_status, created_at, updated_at`

func (r *PGTicketRepository) Insert(ctx context.Context, q Querier, ticket *domain.Ticket) error {
	err := q.QueryRow(ctx, `INSERT INTO tickets (id, flight_id, passenger_id, class, seat_number, price, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		ticket.ID, ticket.FlightID, ticket.PassengerID, ticket.Class, ticket.SeatNumber, ticket.Price.String(), ticket.PaymentStatus).
		Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	return scanTicket(row)
}

func (r *PGTicketRepository) GetByIDForUpdate(ctx context.Context, q Querier, id string) (*domain.Ticket, error) {
	row := q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1 FOR UPDATE`, id)
	ticket, err := scanTicket(row)
	if err != nil {
		return nil, mapLockErr(err)
	}
	return ticket, nil
}

func (r *PGTicketRepository) Update(ctx context.Context, q Querier, ticket *domain.Ticket) error {
	cmd, err := q.Exec(ctx, `UPDATE tickets SET class=$2, seat_number=$3, price=$4, payment_status=$5, updated_at=now() WHERE id=$1`,
		ticket.ID, ticket.Class, ticket.SeatNumber, ticket.Price.String(), ticket.PaymentStatus)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: ticket %s", domain.ErrNotFound, ticket.ID)
	}
	return nil
}

func (r *PGTicketRepository) Delete(ctx context.Context, q Querier, id string) error {
	cmd, err := q.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: ticket %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PGTicketRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE flight_id=$1 ORDER BY created_at`, flightID)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		t     domain.Ticket
		price string
	)
	err := row.Scan(&t.ID, &t.FlightID, &t.PassengerID, &t.Class, &t.SeatNumber, &price, &t.PaymentStatus, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	t.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse ticket price: %w", err)
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
