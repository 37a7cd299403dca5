package ports

import (
	"context"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// SymptomFilter carries the query parameters for listing symptoms.
// From/To bound the timestamp inclusively on both ends; zero values mean
// unbounded. Limit <= 0 means no limit.
type SymptomFilter struct {
	UserID string
	From   time.Time
	To     time.Time
	Skip   int64
	Limit  int64
}

// SymptomRepository defines persistence operations for the symptoms
// collection. Symptoms are insert-only: no update or delete is exposed.
type SymptomRepository interface {
	Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error)
	ListByUser(ctx context.Context, filter SymptomFilter) ([]*domain.Symptom, error)
}
