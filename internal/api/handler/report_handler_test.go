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

	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

type stubReportService struct {
	generateFn    func(ctx context.Context, input ports.GenerateReportInput) (*ports.Report, error)
	generatePDFFn func(ctx context.Context, input ports.GenerateReportInput) ([]byte, *ports.Report, error)
}

func (s *stubReportService) Generate(ctx context.Context, input ports.GenerateReportInput) (*ports.Report, error) {
	return s.generateFn(ctx, input)
}

func (s *stubReportService) GeneratePDF(ctx context.Context, input ports.GenerateReportInput) ([]byte, *ports.Report, error) {
	return s.generatePDFFn(ctx, input)
}

func sampleReport() *ports.Report {
	return &ports.Report{
		UserID:           "507f1f77bcf86cd799439011",
		PeriodStart:      time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Narrative:        "# Summary\n\nStable period.",
		SymptomsCount:    3,
		MedicationsCount: 1,
	}
}

func TestReportHandler_Get_Envelope(t *testing.T) {
	e := newTestEcho()
	h := NewReportHandler(&stubReportService{
		generateFn: func(_ context.Context, input ports.GenerateReportInput) (*ports.Report, error) {
			if input.UserID != "507f1f77bcf86cd799439011" {
				t.Fatalf("unexpected user id: %s", input.UserID)
			}
			if input.Format != "detailed" {
				t.Fatalf("expected format passthrough, got %q", input.Format)
			}
			return sampleReport(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/507f1f77bcf86cd799439011?report_format=detailed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "507f1f77bcf86cd799439011" {
		t.Fatalf("unexpected user_id: %v", resp["user_id"])
	}
	if resp["generated_report"] != "# Summary\n\nStable period." {
		t.Fatalf("unexpected narrative: %v", resp["generated_report"])
	}

	period, ok := resp["report_period"].(map[string]any)
	if !ok {
		t.Fatalf("missing report_period: %v", resp)
	}
	if period["start_date"] != "2025-05-16T00:00:00Z" || period["end_date"] != "2025-06-15T00:00:00Z" {
		t.Fatalf("unexpected period: %v", period)
	}

	summary, ok := resp["data_summary"].(map[string]any)
	if !ok {
		t.Fatalf("missing data_summary: %v", resp)
	}
	if summary["symptoms_count"] != float64(3) || summary["medications_count"] != float64(1) {
		t.Fatalf("unexpected summary: %v", summary)
	}
}

func TestReportHandler_Get_ParsesDateBounds(t *testing.T) {
	e := newTestEcho()
	h := NewReportHandler(&stubReportService{
		generateFn: func(_ context.Context, input ports.GenerateReportInput) (*ports.Report, error) {
			if input.StartDate == nil || input.EndDate == nil {
				t.Fatal("expected both bounds parsed")
			}
			if !input.StartDate.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected start: %v", input.StartDate)
			}
			return sampleReport(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/507f1f77bcf86cd799439011?start_date=2025-05-01&end_date=2025-06-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestReportHandler_Get_BadDate(t *testing.T) {
	e := newTestEcho()
	h := NewReportHandler(&stubReportService{
		generateFn: func(_ context.Context, _ ports.GenerateReportInput) (*ports.Report, error) {
			t.Fatal("service must not be reached on a malformed date")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/507f1f77bcf86cd799439011?start_date=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestReportHandler_GetPDF(t *testing.T) {
	e := newTestEcho()
	h := NewReportHandler(&stubReportService{
		generatePDFFn: func(_ context.Context, input ports.GenerateReportInput) ([]byte, *ports.Report, error) {
			return []byte("%PDF-1.4 stub"), sampleReport(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/507f1f77bcf86cd799439011/pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.GetPDF(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(cd, "health_report_507f1f77bcf86cd799439011.pdf") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatalf("body is not a pdf: %q", rec.Body.String()[:8])
	}
}
