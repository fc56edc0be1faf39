// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"time"

	repository "github.com/okian/rolo/internal/adapters/repository"
	"github.com/okian/rolo/internal/domain/model"
	"github.com/okian/rolo/pkg/logger"
)

// Service implements the API dependencies for the phonebook system. It owns
// the store; all reads and mutations of the collection flow through here.
type Service struct {
	store  repository.Store
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing contact store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service. Without options it runs on a store seeded with the
// default records and a no-frills named logger.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemStore(repository.WithSeed(repository.Seed()))
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// List returns all contacts in append order.
func (s *Service) List(ctx context.Context) []model.Contact {
	return s.store.List(ctx)
}

// Get returns the contact with the given id.
// Returns repository.ErrNotFound for an id that was never issued.
func (s *Service) Get(ctx context.Context, id int) (model.Contact, error) {
	return s.store.Get(ctx, id)
}

// Create adds a new contact. Validation of required fields happens at the
// HTTP boundary; this enforces name uniqueness and id assignment via the
// store's single mutation entry point.
func (s *Service) Create(ctx context.Context, name, number string) (model.Contact, error) {
	c, err := s.store.Create(ctx, name, number)
	if err != nil {
		return model.Contact{}, err
	}
	s.logger.Info(ctx, "contact created",
		logger.Int("id", c.ID),
		logger.String("name", c.Name))
	return c, nil
}

// Info reports the current record count and the current server time,
// evaluated at call time.
func (s *Service) Info(ctx context.Context) (int, time.Time) {
	return s.store.Count(ctx), time.Now()
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"totalContacts": s.store.Count(context.Background()),
	}
}
