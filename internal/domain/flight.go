package domain

import "time"

type Flight struct {
	ID               int64     `validate:"-"`
	Number           string    `validate:"required,flightnumber"`
	PointOfDeparture string    `validate:"required,airportcode"`
	Destination      string    `validate:"required,airportcode"`
	CreatedAt        time.Time `validate:"-"`
	UpdatedAt        time.Time `validate:"-"`
}
