package service

import (
	"testing"
	"time"
)

func TestResolveDateRange_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end := resolveDateRange(nil, nil, now)

	if !end.Equal(now) {
		t.Fatalf("expected end=now, got %v", end)
	}
	if !start.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("expected start 30 days before now, got %v", start)
	}
}

func TestResolveDateRange_OnlyEnd(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	start, end := resolveDateRange(nil, &e, now)

	if !end.Equal(e) {
		t.Fatalf("expected supplied end, got %v", end)
	}
	if !start.Equal(e.AddDate(0, 0, -30)) {
		t.Fatalf("expected start anchored to supplied end, got %v", start)
	}
}

func TestResolveDateRange_OnlyStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	start, end := resolveDateRange(&s, nil, now)

	if !start.Equal(s) {
		t.Fatalf("expected supplied start, got %v", start)
	}
	if !end.Equal(now) {
		t.Fatalf("expected end=now, got %v", end)
	}
}

// An inverted window passes through untouched; it just matches nothing later.
func TestResolveDateRange_StartAfterEnd(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	e := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	start, end := resolveDateRange(&s, &e, now)

	if !start.Equal(s) || !end.Equal(e) {
		t.Fatalf("expected inverted window preserved, got [%v, %v]", start, end)
	}
}
