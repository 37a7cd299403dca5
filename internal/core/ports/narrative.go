package ports

import (
	"context"
	"time"
)

// SymptomRecord is the projection of a symptom handed to the narrative
// generator. Identifiers and user ids are discarded before this point.
type SymptomRecord struct {
	Details   string `json:"details"`
	Severity  int    `json:"severity"`
	Timestamp string `json:"timestamp"`
}

// MedicationRecord is the projection of a medication handed to the narrative
// generator.
type MedicationRecord struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// NarrativeRequest is the structured input for one narrative generation call.
type NarrativeRequest struct {
	Symptoms    []SymptomRecord
	Medications []MedicationRecord
	PeriodStart time.Time
	PeriodEnd   time.Time
	Format      string
}

// NarrativeGenerator produces a markdown health narrative from structured
// records. Implementations call an external text-completion service; the call
// blocks for its full duration and is not retried.
type NarrativeGenerator interface {
	Generate(ctx context.Context, req NarrativeRequest) (string, error)
}

// ReportRenderer lays a generated narrative out as a PDF document and returns
// the raw bytes. Markdown markers in the narrative are rendered as literal
// text.
type ReportRenderer interface {
	Render(narrative string, periodStart, periodEnd time.Time) ([]byte, error)
}
