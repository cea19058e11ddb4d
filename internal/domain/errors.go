package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// Client-facing conflict messages. The flight pair is part of the externally
// observed contract and must not be reworded.
const (
	MsgFlightNumberExists         = "The Flight number already exists in system"
	MsgDestinationSameAsDeparture = "The destination is same with point of departure"
	MsgCustomerEmailExists        = "The email address already exists in system"
	MsgBookingExists              = "A booking for this customer, flight and date already exists in system"
	MsgCustomerNotFound           = "No Customer with this id exists in system"
	MsgFlightNotFound             = "No Flight with this id exists in system"
)

// FieldErrors maps field names to validation messages. It is the payload of
// every 400-level rejection so clients can render per-field errors.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e))
}

// SelfConflictError means an entity's own fields contradict each other,
// e.g. a flight whose destination equals its point of departure.
type SelfConflictError struct {
	Field   string
	Message string
}

func (e *SelfConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateKeyError means the candidate entity conflicts with an already
// persisted record on its unique natural key.
type DuplicateKeyError struct {
	Field   string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
