package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusCanceled  FlightStatus = "CANCELED"
	FlightStatusCompleted FlightStatus = "COMPLETED"
)

type Flight struct {
	ID            int64
	Number        string
	FromAirport   string
	ToAirport     string
	DepartureTime time.Time
	ArrivalTime   time.Time
	AircraftModel string
	Capacity      int
	Status        FlightStatus
	BasePrice     decimal.Decimal
	// Multipliers is the flight's own per-class price multiplier map.
	// Classes missing here fall back to Defaults.Multipliers.
	Multipliers map[Class]decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Bookable reports whether tickets may still be sold for the flight.
func (f *Flight) Bookable() bool {
	return f.Status == FlightStatusScheduled
}
