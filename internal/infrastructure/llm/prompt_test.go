package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

func TestBuildUserPrompt_EmbedsData(t *testing.T) {
	req := ports.NarrativeRequest{
		Symptoms: []ports.SymptomRecord{
			{Details: "headache behind the eyes", Severity: 6, Timestamp: "2025-06-10T08:00:00Z"},
		},
		Medications: []ports.MedicationRecord{
			{Name: "Ibuprofen", Dosage: "200mg", Frequency: "twice daily"},
		},
		PeriodStart: time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Format:      "summary",
	}

	prompt := buildUserPrompt(req)

	for _, want := range []string{
		"May 16, 2025",
		"June 15, 2025",
		"# SYMPTOMS DATA:",
		"# MEDICATIONS DATA:",
		"headache behind the eyes",
		`"severity":6`,
		"Ibuprofen",
		"Report format requested: summary",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildUserPrompt_EmptyMedications(t *testing.T) {
	req := ports.NarrativeRequest{
		Symptoms: []ports.SymptomRecord{
			{Details: "nausea", Severity: 2, Timestamp: "2025-06-01T00:00:00Z"},
		},
		Medications: []ports.MedicationRecord{},
		PeriodStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Format:      "detailed",
	}

	prompt := buildUserPrompt(req)

	if !strings.Contains(prompt, "# MEDICATIONS DATA:\n[]") {
		t.Fatalf("empty medications must render as []:\n%s", prompt)
	}
}
