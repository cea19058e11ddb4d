package flights

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

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	repo        repository.FlightRepository
	validate    *validator.FlightValidator
	cache       Cache
	producer    Producer
	eventsTopic string
	log         zerolog.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, producer Producer, eventsTopic string, log zerolog.Logger) *FlightService {
	return &FlightService{
		repo:        repo,
		validate:    validator.NewFlightValidator(),
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
		log:         log,
	}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// Create runs the checks in order and persists only when all pass: shape
// validation, then the destination/departure self-conflict, then number
// uniqueness. The unique constraint on flights.number backs the pre-check, so
// a concurrent create of the same number loses with the same DuplicateKeyError.
func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if fieldErrs := s.validate.Validate(flight); fieldErrs != nil {
		return fieldErrs
	}

	if flight.Destination == flight.PointOfDeparture {
		return &domain.SelfConflictError{Field: "destination", Message: domain.MsgDestinationSameAsDeparture}
	}

	existing, err := s.repo.GetByNumber(ctx, flight.Number)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &domain.DuplicateKeyError{Field: "number", Message: domain.MsgFlightNumberExists}
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	s.publish(ctx, "flight_created", flight.ID)
	s.log.Info().Int64("id", flight.ID).Str("number", flight.Number).Msg("flight created")
	return nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	s.publish(ctx, "flight_deleted", id)
	s.log.Info().Int64("id", id).Msg("flight deleted")
	return nil
}

func (s *FlightService) publish(ctx context.Context, eventType string, id int64) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.EntityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Entity:     "flight",
		EntityID:   id,
		OccurredAt: time.Now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.ID, event); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Int64("id", id).Msg("publish flight event failed")
	}
}

var _ FlightUseCase = (*FlightService)(nil)
