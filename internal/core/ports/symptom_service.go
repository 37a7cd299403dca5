package ports

import (
	"context"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// CreateSymptomInput carries all data needed to record a symptom. The
// timestamp is assigned by the service, never by the caller.
type CreateSymptomInput struct {
	UserID   string
	Name     string
	Details  string
	Severity int
}

// ListSymptomsInput carries the list parameters. StartDate/EndDate are
// optional; when present the timestamp window is inclusive on both ends.
type ListSymptomsInput struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int64
	Limit     int64
}

// SymptomService defines use-case operations for symptoms.
type SymptomService interface {
	Create(ctx context.Context, input CreateSymptomInput) (*domain.Symptom, error)
	List(ctx context.Context, input ListSymptomsInput) ([]*domain.Symptom, error)
}
