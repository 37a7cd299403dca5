package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const defaultListLimit = 100

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new user. Email uniqueness is checked before the insert
// and additionally enforced by a unique index in the store; two concurrent
// registrations for the same email can both pass the pre-check, and the index
// decides the winner.
func (s *UserService) Register(ctx context.Context, username, email string) (*domain.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		CreatedAt: recordTime(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("users").Inc()
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip, limit int64) ([]*domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}
