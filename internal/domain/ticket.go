package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Ticket is created only as the terminal step of a successful booking.
// Its (FlightID, Class, SeatNumber) always matches a member of the
// corresponding pool's booked set.
type Ticket struct {
	ID            string
	FlightID      int64
	PassengerID   int64
	Class         Class
	SeatNumber    string
	Price         decimal.Decimal
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
