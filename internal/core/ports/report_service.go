package ports

import (
	"context"
	"time"
)

// GenerateReportInput carries the report request. StartDate/EndDate are
// optional; absent bounds default to the last 30 days ending now.
type GenerateReportInput struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
	Format    string
}

// Report is the assembled narrative report for one user and window.
type Report struct {
	UserID           string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	Narrative        string
	SymptomsCount    int
	MedicationsCount int
}

// ReportService composes stored records into a narrative health report.
type ReportService interface {
	Generate(ctx context.Context, input GenerateReportInput) (*Report, error)
	// GeneratePDF renders the detailed narrative as PDF bytes alongside the
	// report metadata.
	GeneratePDF(ctx context.Context, input GenerateReportInput) ([]byte, *Report, error)
}
