package email

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airinventory/internal/kafka"
)

// Sender delivers booking notifications. The transport is a stub; the worker
// wires it to the notifications topic.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	slog.Info("send booking notification",
		"type", event.Type,
		"ticket_id", event.TicketID,
		"flight_id", event.FlightID,
		"passenger_id", event.PassengerID,
		"seat", event.SeatNumber,
	)
	return nil
}
