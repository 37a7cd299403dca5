package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// UserService defines use-case operations for accounts.
type UserService interface {
	// Register creates a new user. A previously registered email reports
	// domain.ErrEmailTaken.
	Register(ctx context.Context, username, email string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
}
