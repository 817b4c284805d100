package domain

import "fmt"

// SeatPool holds the disjoint available/booked seat sets for one
// (flight, class) pair. The union is fixed at initialization or
// reconfiguration time; booking and release only move codes between
// the two sets.
type SeatPool struct {
	FlightID  int64
	Class     Class
	Available SeatSet
	Booked    SeatSet
}

func NewSeatPool(flightID int64, class Class, available []string) SeatPool {
	return SeatPool{
		FlightID:  flightID,
		Class:     class,
		Available: NewSeatSet(available),
		Booked:    NewSeatSet(nil),
	}
}

// MoveToBooked transfers a seat from available to booked.
func (p *SeatPool) MoveToBooked(code string) error {
	if !p.Available.Remove(code) {
		return fmt.Errorf("%w: seat %s in %s class of flight %d", ErrSeatNotAvailable, code, p.Class, p.FlightID)
	}
	p.Booked.Add(code)
	return nil
}

// MoveToAvailable transfers a seat from booked back to available and
// restores display order of the available list.
func (p *SeatPool) MoveToAvailable(code string) error {
	if !p.Booked.Remove(code) {
		return fmt.Errorf("%w: seat %s in %s class of flight %d", ErrSeatNotBooked, code, p.Class, p.FlightID)
	}
	p.Available.Add(code)
	p.Available.SortDisplay()
	return nil
}
