package domain

import "time"

// Booking links one customer to one flight on a given date. The
// (CustomerID, FlightID, Date) triple is the natural key: the same customer
// cannot hold two bookings for the same flight on the same day.
type Booking struct {
	ID         int64     `validate:"-"`
	CustomerID int64     `validate:"required,gt=0"`
	FlightID   int64     `validate:"required,gt=0"`
	Date       time.Time `validate:"required"`
	CreatedAt  time.Time `validate:"-"`
	UpdatedAt  time.Time `validate:"-"`
}
