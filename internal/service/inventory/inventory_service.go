package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/layout"
	"github.com/Domenick1991/airinventory/internal/repository"
)

type InventoryUseCase interface {
	InitializeFlight(ctx context.Context, input InitializeInput) ([]domain.SeatPool, error)
	Reconfigure(ctx context.Context, input ReconfigureInput) ([]domain.SeatPool, error)
	SeatMap(ctx context.Context, flightID int64) ([]domain.SeatPool, error)
	IsSeatAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) (bool, error)
	MoveToBooked(ctx context.Context, flightID int64, class domain.Class, seat string) error
	MoveToAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type InventoryService struct {
	pools    repository.SeatPoolRepository
	flights  repository.FlightRepository
	tx       repository.TxManager
	defaults domain.Defaults
	producer Producer
	topic    string
}

func NewInventoryService(
	pools repository.SeatPoolRepository,
	flights repository.FlightRepository,
	tx repository.TxManager,
	defaults domain.Defaults,
	producer Producer,
	topic string,
) *InventoryService {
	return &InventoryService{
		pools:    pools,
		flights:  flights,
		tx:       tx,
		defaults: defaults,
		producer: producer,
		topic:    topic,
	}
}

type InitializeInput struct {
	FlightID     int64
	Distribution layout.Distribution
}

type ReconfigureInput struct {
	FlightID     int64
	Distribution layout.Distribution
}

// InitializeFlight generates the seat layout for the flight's aircraft and
// persists one empty-booked pool per class. A flight that already has pools
// is rejected; reinitialization never silently overwrites state.
func (s *InventoryService) InitializeFlight(ctx context.Context, input InitializeInput) ([]domain.SeatPool, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	existing, err := s.pools.GetAllPools(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: flight %d", domain.ErrAlreadyInitialized, input.FlightID)
	}

	layouts, err := layout.Generate(flight.AircraftModel, flight.Capacity, input.Distribution, s.defaults)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(q repository.Querier) error {
		return s.pools.Initialize(ctx, q, input.FlightID, layouts)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "flight_seats_initialized", flight.ID)
	return s.pools.GetAllPools(ctx, input.FlightID)
}

// Reconfigure destructively regenerates every pool of the flight. It is
// blocked while any class has a booked seat, because existing tickets point
// into the current layout.
func (s *InventoryService) Reconfigure(ctx context.Context, input ReconfigureInput) ([]domain.SeatPool, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	layouts, err := layout.Generate(flight.AircraftModel, flight.Capacity, input.Distribution, s.defaults)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(q repository.Querier) error {
		locked, err := s.pools.LockAllPools(ctx, q, input.FlightID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return fmt.Errorf("%w: seat pools for flight %d", domain.ErrNotFound, input.FlightID)
		}
		for _, pool := range locked {
			if pool.Booked.Len() > 0 {
				return fmt.Errorf("%w: flight %d has %d booked seats in %s class",
					domain.ErrReconfigurationBlocked, input.FlightID, pool.Booked.Len(), pool.Class)
			}
		}
		return s.pools.ReplacePools(ctx, q, input.FlightID, layouts)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "flight_seats_reconfigured", flight.ID)
	return s.pools.GetAllPools(ctx, input.FlightID)
}

func (s *InventoryService) SeatMap(ctx context.Context, flightID int64) ([]domain.SeatPool, error) {
	pools, err := s.pools.GetAllPools(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: seat pools for flight %d", domain.ErrNotFound, flightID)
	}
	return pools, nil
}

func (s *InventoryService) IsSeatAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) (bool, error) {
	return s.pools.IsAvailable(ctx, flightID, class, seat)
}

// MoveToBooked books a single seat as its own locked transaction. The
// booking coordinator does not use this path; it holds one transaction
// across the seat move and the ticket write instead.
func (s *InventoryService) MoveToBooked(ctx context.Context, flightID int64, class domain.Class, seat string) error {
	return s.tx.WithinTx(ctx, func(q repository.Querier) error {
		pool, err := s.pools.LockPool(ctx, q, flightID, class)
		if err != nil {
			return err
		}
		if err := pool.MoveToBooked(seat); err != nil {
			return err
		}
		return s.pools.SavePool(ctx, q, pool)
	})
}

func (s *InventoryService) MoveToAvailable(ctx context.Context, flightID int64, class domain.Class, seat string) error {
	return s.tx.WithinTx(ctx, func(q repository.Querier) error {
		pool, err := s.pools.LockPool(ctx, q, flightID, class)
		if err != nil {
			return err
		}
		if err := pool.MoveToAvailable(seat); err != nil {
			return err
		}
		return s.pools.SavePool(ctx, q, pool)
	})
}

func (s *InventoryService) publishEvent(ctx context.Context, eventType string, flightID int64) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.InventoryEvent{Type: eventType, FlightID: flightID}
	if err := s.producer.Publish(ctx, s.topic, fmt.Sprintf("flight-%d", flightID), event); err != nil {
		slog.Warn("publish inventory event failed", "type", eventType, "flight_id", flightID, "error", err)
	}
}

var _ InventoryUseCase = (*InventoryService)(nil)
