package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

const testUserID = "507f1f77bcf86cd799439011"

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	lastSkip  int64
	lastLimit int64
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = testUserID
	}
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, skip, limit int64) ([]*domain.User, error) {
	r.lastSkip = skip
	r.lastLimit = limit
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func TestUserService_Register_AssignsCreationTime(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected assigned id")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned created_at")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "alice2", "alice@example.com")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Get_InvalidID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), testUserID)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_PaginationDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), -5, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSkip != 0 {
		t.Fatalf("expected negative skip clamped to 0, got %d", repo.lastSkip)
	}
	if repo.lastLimit != defaultListLimit {
		t.Fatalf("expected default limit %d, got %d", defaultListLimit, repo.lastLimit)
	}
}
