package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

type stubUserService struct {
	registerFn func(ctx context.Context, username, email string) (*domain.User, error)
	getFn      func(ctx context.Context, id string) (*domain.User, error)
	listFn     func(ctx context.Context, skip, limit int64) ([]*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, email string) (*domain.User, error) {
	return s.registerFn(ctx, username, email)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, skip, limit int64) ([]*domain.User, error) {
	return s.listFn(ctx, skip, limit)
}

func TestUserHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubUserService{
		registerFn: func(_ context.Context, username, email string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &domain.User{
				ID:        "507f1f77bcf86cd799439011",
				Username:  username,
				Email:     email,
				CreatedAt: time.Now(),
			}, nil
		},
	})

	body := strings.NewReader(`{"username":"alice","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID == "" || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubUserService{
		registerFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"username":"alice","email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Create_DuplicatePassthrough(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubUserService{
		registerFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	body := strings.NewReader(`{"username":"alice","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("domain errors must pass through to the error handler, got %v", err)
	}
}
