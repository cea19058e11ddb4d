package customers

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

type CustomerUseCase interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetCustomers(ctx context.Context) ([]domain.Customer, error)
	SetCustomers(ctx context.Context, customers []domain.Customer) error
	InvalidateCustomers(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CustomerService struct {
	repo        repository.CustomerRepository
	validate    *validator.CustomerValidator
	cache       Cache
	producer    Producer
	eventsTopic string
	log         zerolog.Logger
}

func NewCustomerService(repo repository.CustomerRepository, cache Cache, producer Producer, eventsTopic string, log zerolog.Logger) *CustomerService {
	return &CustomerService{
		repo:        repo,
		validate:    validator.NewCustomerValidator(),
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
		log:         log,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCustomers(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetCustomers(ctx, customers)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates shape, checks email uniqueness, then persists. The unique
// constraint on customers.email catches create races the pre-check misses.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	if fieldErrs := s.validate.Validate(customer); fieldErrs != nil {
		return fieldErrs
	}

	existing, err := s.repo.GetByEmail(ctx, customer.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &domain.DuplicateKeyError{Field: "email", Message: domain.MsgCustomerEmailExists}
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCustomers(ctx)
	}
	s.publish(ctx, "customer_created", customer.ID, customer.Email)
	s.log.Info().Int64("id", customer.ID).Str("email", customer.Email).Msg("customer created")
	return nil
}

// Delete removes the customer and, through the repository transaction, all of
// their bookings.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCustomers(ctx)
	}
	s.publish(ctx, "customer_deleted", id, "")
	s.log.Info().Int64("id", id).Msg("customer deleted")
	return nil
}

func (s *CustomerService) publish(ctx context.Context, eventType string, id int64, email string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.EntityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Entity:     "customer",
		EntityID:   id,
		Email:      email,
		OccurredAt: time.Now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.ID, event); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Int64("id", id).Msg("publish customer event failed")
	}
}

var _ CustomerUseCase = (*CustomerService)(nil)
