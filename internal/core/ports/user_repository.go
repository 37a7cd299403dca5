package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for the users collection.
// Identifiers cross this boundary as strings; conversion to the store's
// native key type happens inside the implementation.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
}
