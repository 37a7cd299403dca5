package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

type stubSymptomRepo struct {
	records    []*domain.Symptom
	lastFilter ports.SymptomFilter
	listErr    error
}

func (r *stubSymptomRepo) Create(_ context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	clone := *s
	clone.ID = "64a000000000000000000001"
	r.records = append(r.records, &clone)
	return &clone, nil
}

func (r *stubSymptomRepo) ListByUser(_ context.Context, filter ports.SymptomFilter) ([]*domain.Symptom, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.records, nil
}

func TestSymptomService_Create_AssignsTimestamp(t *testing.T) {
	repo := &stubSymptomRepo{}
	svc := NewSymptomService(repo, zerolog.Nop())

	symptom, err := svc.Create(context.Background(), ports.CreateSymptomInput{
		UserID:   testUserID,
		Name:     "headache",
		Details:  "dull pain behind the eyes",
		Severity: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if symptom.Timestamp.IsZero() {
		t.Fatal("expected server-assigned timestamp")
	}
	if symptom.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestSymptomService_Create_SeverityBounds(t *testing.T) {
	repo := &stubSymptomRepo{}
	svc := NewSymptomService(repo, zerolog.Nop())

	for _, severity := range []int{0, -1, 11, 100} {
		_, err := svc.Create(context.Background(), ports.CreateSymptomInput{
			UserID:   testUserID,
			Details:  "x",
			Severity: severity,
		})
		if !errors.Is(err, domain.ErrInvalidSeverity) {
			t.Fatalf("severity %d: expected ErrInvalidSeverity, got %v", severity, err)
		}
	}
	if len(repo.records) != 0 {
		t.Fatalf("invalid symptoms must not be persisted, got %d records", len(repo.records))
	}
}

func TestSymptomService_Create_InvalidUserID(t *testing.T) {
	svc := NewSymptomService(&stubSymptomRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateSymptomInput{
		UserID:   "short",
		Details:  "x",
		Severity: 5,
	})
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestSymptomService_List_PassesWindowAndPagination(t *testing.T) {
	repo := &stubSymptomRepo{}
	svc := NewSymptomService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListSymptomsInput{
		UserID: testUserID,
		Skip:   -1,
		Limit:  0,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.Skip != 0 {
		t.Fatalf("expected skip clamped to 0, got %d", repo.lastFilter.Skip)
	}
	if repo.lastFilter.Limit != defaultListLimit {
		t.Fatalf("expected default limit, got %d", repo.lastFilter.Limit)
	}
	if !repo.lastFilter.From.IsZero() || !repo.lastFilter.To.IsZero() {
		t.Fatal("absent bounds must leave the window open")
	}
}
