package kafka

import "time"

// TicketEvent is published after a booking transaction commits. Delivery is
// best effort; the database state is authoritative.
type TicketEvent struct {
	Type        string    `json:"type"`
	TicketID    string    `json:"ticket_id"`
	FlightID    int64     `json:"flight_id"`
	PassengerID int64     `json:"passenger_id"`
	Class       string    `json:"class"`
	SeatNumber  string    `json:"seat_number"`
	Price       string    `json:"price"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// InventoryEvent signals a layout change (initialization/reconfiguration).
type InventoryEvent struct {
	Type     string `json:"type"`
	FlightID int64  `json:"flight_id"`
}
