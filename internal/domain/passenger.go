package domain

import "time"

// Passenger carries the directory attributes the core reads. Gender is the
// only attribute the eligibility policy consumes; empty means unknown.
type Passenger struct {
	ID        int64
	FullName  string
	Gender    string
	CreatedAt time.Time
}
