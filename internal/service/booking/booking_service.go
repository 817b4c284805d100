package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/eligibility"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/pricing"
	"github.com/Domenick1991/airinventory/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error)
	ChangeSeat(ctx context.Context, input ChangeSeatInput) (*domain.Ticket, error)
	CancelTicket(ctx context.Context, ticketID string) (*domain.Ticket, error)
	GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error)
}

// Inventory is the slice of the seat pool store the coordinator mutates.
// Both calls run on the coordinator's own transaction.
type Inventory interface {
	LockPool(ctx context.Context, q repository.Querier, flightID int64, class domain.Class) (*domain.SeatPool, error)
	SavePool(ctx context.Context, q repository.Querier, pool *domain.SeatPool) error
}

type TicketStore interface {
	Insert(ctx context.Context, q repository.Querier, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByIDForUpdate(ctx context.Context, q repository.Querier, id string) (*domain.Ticket, error)
	Update(ctx context.Context, q repository.Querier, ticket *domain.Ticket) error
	Delete(ctx context.Context, q repository.Querier, id string) error
}

type FlightRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PassengerDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService coordinates availability, eligibility, pricing, the seat
// move and the ticket write as one transaction. Any failure before commit
// rolls everything back; the seat pool row lock serializes concurrent
// attempts on the same (flight, class).
type BookingService struct {
	tickets     TicketStore
	flights     FlightRegistry
	passengers  PassengerDirectory
	inventory   Inventory
	tx          repository.TxManager
	pricing     pricing.Calculator
	policy      eligibility.Policy
	producer    Producer
	topic       string
	notifyTopic string
}

func NewBookingService(
	tickets TicketStore,
	flights FlightRegistry,
	passengers PassengerDirectory,
	inventory Inventory,
	tx repository.TxManager,
	calc pricing.Calculator,
	policy eligibility.Policy,
	producer Producer,
	topic, notifyTopic string,
) *BookingService {
	return &BookingService{
		tickets:     tickets,
		flights:     flights,
		passengers:  passengers,
		inventory:   inventory,
		tx:          tx,
		pricing:     calc,
		policy:      policy,
		producer:    producer,
		topic:       topic,
		notifyTopic: notifyTopic,
	}
}

type BookTicketInput struct {
	FlightID    int64
	PassengerID int64
	Class       string
	SeatNumber  string
	// Price, when set, overrides the computed base × multiplier price.
	// Kept because callers rely on it; every use is logged.
	Price *decimal.Decimal
}

// BookTicket books one seat. Order of checks: flight open for sale, seat
// available under the pool row lock, eligibility, price, seat move, ticket
// insert, commit.
func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error) {
	if input.SeatNumber == "" {
		return nil, fmt.Errorf("%w: seat number is required", domain.ErrValidation)
	}
	class, err := domain.ParseClass(input.Class)
	if err != nil {
		return nil, err
	}
	if _, _, err := domain.SplitSeatCode(input.SeatNumber); err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if !flight.Bookable() {
		return nil, fmt.Errorf("%w: flight %d is %s", domain.ErrValidation, flight.ID, flight.Status)
	}

	passenger, err := s.passengers.GetByID(ctx, input.PassengerID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:            uuid.NewString(),
		FlightID:      flight.ID,
		PassengerID:   passenger.ID,
		Class:         class,
		SeatNumber:    input.SeatNumber,
		PaymentStatus: domain.PaymentStatusPending,
	}

	err = s.tx.WithinTx(ctx, func(q repository.Querier) error {
		pool, err := s.inventory.LockPool(ctx, q, flight.ID, class)
		if err != nil {
			return err
		}
		// Re-checked under the lock: a concurrent booking may have
		// taken the seat between request parsing and lock acquisition.
		if !pool.Available.Contains(input.SeatNumber) {
			return fmt.Errorf("%w: seat %s in %s class of flight %d",
				domain.ErrSeatNotAvailable, input.SeatNumber, class, flight.ID)
		}

		if !s.policy.CheckEligibility(class, passenger.Gender) {
			return fmt.Errorf("%w: passenger %d, class %s", domain.ErrIneligibleForClass, passenger.ID, class)
		}

		if input.Price != nil {
			slog.Warn("booking with explicit price override",
				"flight_id", flight.ID, "class", class, "price", input.Price.String())
			ticket.Price = *input.Price
		} else {
			ticket.Price = s.pricing.PriceFor(flight, class)
		}

		if err := pool.MoveToBooked(input.SeatNumber); err != nil {
			return err
		}
		if err := s.inventory.SavePool(ctx, q, pool); err != nil {
			return err
		}
		return s.tickets.Insert(ctx, q, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "ticket_booked", ticket)
	return ticket, nil
}

type ChangeSeatInput struct {
	TicketID string
	// NewClass may be empty to keep the ticket's current class.
	NewClass      string
	NewSeatNumber string
	Price         *decimal.Decimal
}

// ChangeSeat moves a ticket to a different seat, possibly in another class.
// Release of the old seat and booking of the new one happen in one
// transaction; on any failure the original seat stays booked and the ticket
// row is untouched.
func (s *BookingService) ChangeSeat(ctx context.Context, input ChangeSeatInput) (*domain.Ticket, error) {
	if input.NewSeatNumber == "" {
		return nil, fmt.Errorf("%w: new seat number is required", domain.ErrValidation)
	}
	if _, _, err := domain.SplitSeatCode(input.NewSeatNumber); err != nil {
		return nil, err
	}

	var updated *domain.Ticket
	err := s.tx.WithinTx(ctx, func(q repository.Querier) error {
		ticket, err := s.tickets.GetByIDForUpdate(ctx, q, input.TicketID)
		if err != nil {
			return err
		}

		newClass := ticket.Class
		if input.NewClass != "" {
			newClass, err = domain.ParseClass(input.NewClass)
			if err != nil {
				return err
			}
		}

		flight, err := s.flights.GetByID(ctx, ticket.FlightID)
		if err != nil {
			return err
		}
		if !flight.Bookable() {
			return fmt.Errorf("%w: flight %d is %s", domain.ErrValidation, flight.ID, flight.Status)
		}

		passenger, err := s.passengers.GetByID(ctx, ticket.PassengerID)
		if err != nil {
			return err
		}
		if !s.policy.CheckEligibility(newClass, passenger.Gender) {
			return fmt.Errorf("%w: passenger %d, class %s", domain.ErrIneligibleForClass, passenger.ID, newClass)
		}

		oldPool, newPool, err := s.lockPoolPair(ctx, q, ticket.FlightID, ticket.Class, newClass)
		if err != nil {
			return err
		}

		if !newPool.Available.Contains(input.NewSeatNumber) {
			return fmt.Errorf("%w: seat %s in %s class of flight %d",
				domain.ErrSeatNotAvailable, input.NewSeatNumber, newClass, ticket.FlightID)
		}
		if err := oldPool.MoveToAvailable(ticket.SeatNumber); err != nil {
			return err
		}
		if err := newPool.MoveToBooked(input.NewSeatNumber); err != nil {
			return err
		}
		if err := s.inventory.SavePool(ctx, q, oldPool); err != nil {
			return err
		}
		if oldPool != newPool {
			if err := s.inventory.SavePool(ctx, q, newPool); err != nil {
				return err
			}
		}

		switch {
		case input.Price != nil:
			slog.Warn("seat change with explicit price override",
				"ticket_id", ticket.ID, "class", newClass, "price", input.Price.String())
			ticket.Price = *input.Price
		case newClass != ticket.Class:
			ticket.Price = s.pricing.PriceFor(flight, newClass)
		}
		ticket.Class = newClass
		ticket.SeatNumber = input.NewSeatNumber

		if err := s.tickets.Update(ctx, q, ticket); err != nil {
			return err
		}
		updated = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "ticket_seat_changed", updated)
	return updated, nil
}

// CancelTicket releases the seat and deletes the ticket row in one
// transaction.
func (s *BookingService) CancelTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	var canceled *domain.Ticket
	err := s.tx.WithinTx(ctx, func(q repository.Querier) error {
		ticket, err := s.tickets.GetByIDForUpdate(ctx, q, ticketID)
		if err != nil {
			return err
		}

		pool, err := s.inventory.LockPool(ctx, q, ticket.FlightID, ticket.Class)
		if err != nil {
			return err
		}
		if err := pool.MoveToAvailable(ticket.SeatNumber); err != nil {
			return err
		}
		if err := s.inventory.SavePool(ctx, q, pool); err != nil {
			return err
		}
		if err := s.tickets.Delete(ctx, q, ticket.ID); err != nil {
			return err
		}
		canceled = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "ticket_canceled", canceled)
	return canceled, nil
}

func (s *BookingService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, ticketID)
}

// lockPoolPair acquires the pools for the old and new class. When the
// classes differ the locks are taken in lexical class order — the same order
// the repository's ORDER BY class FOR UPDATE uses — so two concurrent seat
// moves, or a seat move racing a reconfiguration, cannot deadlock.
func (s *BookingService) lockPoolPair(ctx context.Context, q repository.Querier, flightID int64, oldClass, newClass domain.Class) (oldPool, newPool *domain.SeatPool, err error) {
	if oldClass == newClass {
		pool, err := s.inventory.LockPool(ctx, q, flightID, oldClass)
		if err != nil {
			return nil, nil, err
		}
		return pool, pool, nil
	}

	first, second := oldClass, newClass
	if newClass < oldClass {
		first, second = newClass, oldClass
	}

	firstPool, err := s.inventory.LockPool(ctx, q, flightID, first)
	if err != nil {
		return nil, nil, err
	}
	secondPool, err := s.inventory.LockPool(ctx, q, flightID, second)
	if err != nil {
		return nil, nil, err
	}
	if first == oldClass {
		return firstPool, secondPool, nil
	}
	return secondPool, firstPool, nil
}

// publish emits the event on the ticket-events topic and mirrors it onto the
// notifications topic, which the mail worker consumes.
func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) {
	if s.producer == nil {
		return
	}
	event := kafka.TicketEvent{
		Type:        eventType,
		TicketID:    ticket.ID,
		FlightID:    ticket.FlightID,
		PassengerID: ticket.PassengerID,
		Class:       ticket.Class.String(),
		SeatNumber:  ticket.SeatNumber,
		Price:       ticket.Price.String(),
		OccurredAt:  time.Now(),
	}
	for _, topic := range []string{s.topic, s.notifyTopic} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, ticket.ID, event); err != nil {
			slog.Warn("publish ticket event failed", "topic", topic, "type", eventType, "ticket_id", ticket.ID, "error", err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
