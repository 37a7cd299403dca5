package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// CreateMedicationInput carries all data needed to record a medication.
type CreateMedicationInput struct {
	UserID    string
	Name      string
	Dosage    string
	Frequency string
}

// MedicationService defines use-case operations for medications. Update and
// Delete are gated on ownership: a medication belonging to a different user
// reports domain.ErrMedicationNotFound, indistinguishable from absence.
type MedicationService interface {
	Create(ctx context.Context, input CreateMedicationInput) (*domain.Medication, error)
	List(ctx context.Context, userID string, skip, limit int64) ([]*domain.Medication, error)
	Update(ctx context.Context, medicationID, userID string, update domain.MedicationUpdate) (*domain.Medication, error)
	Delete(ctx context.Context, medicationID, userID string) error
}
