package library

import (
	"log/slog"
	"time"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/storage"
)

// Service implements registration, login, catalog and reservation operations on top of a store.
type Service struct {
	store  storage.Store
	tokens *auth.TokenManager
	hasher *auth.Hasher
	logger *slog.Logger
	now    func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for business events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the time source used for reservation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires a service.
func NewService(store storage.Store, tokens *auth.TokenManager, hasher *auth.Hasher, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tokens: tokens,
		hasher: hasher,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}
