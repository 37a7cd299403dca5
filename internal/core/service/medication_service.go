package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

type MedicationService struct {
	repo   ports.MedicationRepository
	logger zerolog.Logger
}

func NewMedicationService(repo ports.MedicationRepository, logger zerolog.Logger) *MedicationService {
	return &MedicationService{repo: repo, logger: logger}
}

func (s *MedicationService) Create(ctx context.Context, input ports.CreateMedicationInput) (*domain.Medication, error) {
	if !domain.IsValidID(input.UserID) {
		return nil, domain.ErrInvalidID
	}

	now := recordTime()
	medication := &domain.Medication{
		UserID:    input.UserID,
		Name:      input.Name,
		Dosage:    input.Dosage,
		Frequency: input.Frequency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, medication)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create medication")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("medications").Inc()
	s.logger.Info().Str("medication_id", created.ID).Str("user_id", created.UserID).Str("name", created.Name).Msg("medication recorded")
	return created, nil
}

func (s *MedicationService) List(ctx context.Context, userID string, skip, limit int64) ([]*domain.Medication, error) {
	if !domain.IsValidID(userID) {
		return nil, domain.ErrInvalidID
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.ListByUser(ctx, userID, skip, limit)
}

// Update applies the non-nil fields of update to a medication the user owns
// and refreshes updated_at. The ownership check happens before the write; a
// medication belonging to a different user is reported as not found.
func (s *MedicationService) Update(ctx context.Context, medicationID, userID string, update domain.MedicationUpdate) (*domain.Medication, error) {
	if !domain.IsValidID(medicationID) || !domain.IsValidID(userID) {
		return nil, domain.ErrInvalidID
	}
	if update.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	if _, err := s.repo.FindByIDAndUser(ctx, medicationID, userID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, medicationID, update, recordTime())
	if err != nil {
		s.logger.Error().Err(err).Str("medication_id", medicationID).Msg("failed to update medication")
		return nil, err
	}

	s.logger.Info().Str("medication_id", medicationID).Str("user_id", userID).Msg("medication updated")
	return updated, nil
}

// Delete removes a medication the user owns. Ownership mismatch is
// indistinguishable from absence so existence never leaks to another caller.
func (s *MedicationService) Delete(ctx context.Context, medicationID, userID string) error {
	if !domain.IsValidID(medicationID) || !domain.IsValidID(userID) {
		return domain.ErrInvalidID
	}

	if _, err := s.repo.FindByIDAndUser(ctx, medicationID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, medicationID); err != nil {
		s.logger.Error().Err(err).Str("medication_id", medicationID).Msg("failed to delete medication")
		return err
	}

	s.logger.Info().Str("medication_id", medicationID).Str("user_id", userID).Msg("medication deleted")
	return nil
}
