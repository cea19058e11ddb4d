package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/domain"
	"github.com/dlevchenko/airagency/internal/kafka"
	"github.com/dlevchenko/airagency/internal/repository"
	"github.com/dlevchenko/airagency/internal/validator"
)

type BookingUseCase interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	customers          repository.CustomerRepository
	flights            repository.FlightRepository
	validate           *validator.BookingValidator
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	log                zerolog.Logger
}

type BookingServiceOption func(*BookingService)

// WithNotificationsTopic mirrors each booking event onto the topic the
// notifications worker consumes.
func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	customers repository.CustomerRepository,
	flights repository.FlightRepository,
	producer Producer,
	eventsTopic string,
	log zerolog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		customers:   customers,
		flights:     flights,
		validate:    validator.NewBookingValidator(),
		producer:    producer,
		eventsTopic: eventsTopic,
		log:         log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Create checks shape, then referential integrity against customers and
// flights, then uniqueness of the (customer, flight, date) triple, and only
// then persists. The composite unique constraint and the foreign keys repeat
// the checks inside the store, so a concurrent create or delete cannot slip
// an invalid row through.
func (s *BookingService) Create(ctx context.Context, booking *domain.Booking) error {
	if fieldErrs := s.validate.Validate(booking); fieldErrs != nil {
		return fieldErrs
	}

	customer, err := s.customers.GetByID(ctx, booking.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FieldErrors{"customerId": domain.MsgCustomerNotFound}
		}
		return err
	}
	if _, err := s.flights.GetByID(ctx, booking.FlightID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FieldErrors{"flightId": domain.MsgFlightNotFound}
		}
		return err
	}

	existing, err := s.bookings.GetByNaturalKey(ctx, booking.CustomerID, booking.FlightID, booking.Date)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &domain.DuplicateKeyError{Field: "flightId", Message: domain.MsgBookingExists}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return err
	}

	s.publish(ctx, "booking_created", booking, customer.Email)
	s.log.Info().
		Int64("id", booking.ID).
		Int64("customer_id", booking.CustomerID).
		Int64("flight_id", booking.FlightID).
		Msg("booking created")
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	email := ""
	if customer, err := s.customers.GetByID(ctx, booking.CustomerID); err == nil {
		email = customer.Email
	}
	s.publish(ctx, "booking_deleted", booking, email)
	s.log.Info().Int64("id", id).Msg("booking deleted")
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, email string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.EntityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Entity:     "booking",
		EntityID:   booking.ID,
		Email:      email,
		OccurredAt: time.Now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.ID, event); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Int64("id", booking.ID).Msg("publish booking event failed")
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.ID, event); err != nil {
			s.log.Warn().Err(err).Str("type", eventType).Int64("id", booking.ID).Msg("publish booking notification failed")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
