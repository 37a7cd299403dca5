package ports

import (
	"context"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// MedicationRepository defines persistence operations for the medications
// collection.
type MedicationRepository interface {
	Create(ctx context.Context, m *domain.Medication) (*domain.Medication, error)
	ListByUser(ctx context.Context, userID string, skip, limit int64) ([]*domain.Medication, error)
	// FindByIDAndUser retrieves a medication only when it belongs to userID.
	// A medication owned by a different user reports domain.ErrMedicationNotFound.
	FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Medication, error)
	// Update applies the non-nil fields of update plus the new updated_at and
	// returns the resulting document.
	Update(ctx context.Context, id string, update domain.MedicationUpdate, updatedAt time.Time) (*domain.Medication, error)
	Delete(ctx context.Context, id string) error
}
