package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

type SymptomService struct {
	repo   ports.SymptomRepository
	logger zerolog.Logger
}

func NewSymptomService(repo ports.SymptomRepository, logger zerolog.Logger) *SymptomService {
	return &SymptomService{repo: repo, logger: logger}
}

// Create records a symptom for a user. The timestamp is server-assigned;
// whether the referenced user exists is not verified, only that the id is
// syntactically valid.
func (s *SymptomService) Create(ctx context.Context, input ports.CreateSymptomInput) (*domain.Symptom, error) {
	if !domain.IsValidID(input.UserID) {
		return nil, domain.ErrInvalidID
	}
	if !domain.ValidSeverity(input.Severity) {
		return nil, domain.ErrInvalidSeverity
	}

	symptom := &domain.Symptom{
		UserID:    input.UserID,
		Name:      input.Name,
		Details:   input.Details,
		Severity:  input.Severity,
		Timestamp: recordTime(),
	}

	created, err := s.repo.Create(ctx, symptom)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create symptom")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("symptoms").Inc()
	s.logger.Info().Str("symptom_id", created.ID).Str("user_id", created.UserID).Int("severity", created.Severity).Msg("symptom recorded")
	return created, nil
}

func (s *SymptomService) List(ctx context.Context, input ports.ListSymptomsInput) ([]*domain.Symptom, error) {
	if !domain.IsValidID(input.UserID) {
		return nil, domain.ErrInvalidID
	}

	filter := ports.SymptomFilter{
		UserID: input.UserID,
		Skip:   input.Skip,
		Limit:  input.Limit,
	}
	if input.StartDate != nil {
		filter.From = *input.StartDate
	}
	if input.EndDate != nil {
		filter.To = *input.EndDate
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	return s.repo.ListByUser(ctx, filter)
}
