package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airinventory/api"
	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/bootstrap"
	"github.com/Domenick1991/airinventory/internal/cache"
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/eligibility"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/pricing"
	"github.com/Domenick1991/airinventory/internal/repository"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/Domenick1991/airinventory/internal/service/inventory"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	defaults := domain.DefaultConfig()
	txManager := repository.NewTxManager(pool, cfg.Booking.LockTimeoutMillis)
	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	seatPoolRepo := repository.NewSeatPoolRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	inventoryService := inventory.NewInventoryService(
		seatPoolRepo, flightRepo, txManager, defaults,
		producer, cfg.Kafka.TicketEventsTopic,
	)
	bookingService := booking.NewBookingService(
		ticketRepo, flightRepo, passengerRepo, seatPoolRepo, txManager,
		pricing.NewCalculator(defaults), eligibility.NewPolicy(defaults),
		producer, cfg.Kafka.TicketEventsTopic, cfg.Kafka.NotificationsTopic,
	)

	flightHandler := api.NewFlightHandler(flightService)
	seatHandler := api.NewSeatHandler(inventoryService)
	ticketHandler := api.NewTicketHandler(bookingService)

	if err := bootstrap.Run(ctx, cfg, flightHandler, seatHandler, ticketHandler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
