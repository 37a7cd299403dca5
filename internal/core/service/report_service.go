package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const defaultReportFormat = "summary"

// ReportService assembles a user's records into a narrative health report.
// Medications are deliberately fetched without the date window so current
// medications always appear regardless of the symptom range.
type ReportService struct {
	symptoms    ports.SymptomRepository
	medications ports.MedicationRepository
	generator   ports.NarrativeGenerator
	renderer    ports.ReportRenderer
	now         func() time.Time
	logger      zerolog.Logger
}

func NewReportService(
	symptoms ports.SymptomRepository,
	medications ports.MedicationRepository,
	generator ports.NarrativeGenerator,
	renderer ports.ReportRenderer,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		symptoms:    symptoms,
		medications: medications,
		generator:   generator,
		renderer:    renderer,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *ReportService) Generate(ctx context.Context, input ports.GenerateReportInput) (*ports.Report, error) {
	if !domain.IsValidID(input.UserID) {
		metrics.ReportErrorsTotal.WithLabelValues("invalid_id").Inc()
		return nil, domain.ErrInvalidID
	}

	start, end := resolveDateRange(input.StartDate, input.EndDate, s.now())

	symptoms, err := s.symptoms.ListByUser(ctx, ports.SymptomFilter{
		UserID: input.UserID,
		From:   start,
		To:     end,
	})
	if err != nil {
		metrics.ReportErrorsTotal.WithLabelValues("store").Inc()
		return nil, err
	}

	medications, err := s.medications.ListByUser(ctx, input.UserID, 0, 0)
	if err != nil {
		metrics.ReportErrorsTotal.WithLabelValues("store").Inc()
		return nil, err
	}

	// Medications alone never satisfy a report.
	if len(symptoms) == 0 {
		metrics.ReportErrorsTotal.WithLabelValues("no_data").Inc()
		return nil, domain.ErrNoSymptomsInRange
	}

	format := input.Format
	if format == "" {
		format = defaultReportFormat
	}

	narrative, err := s.generator.Generate(ctx, ports.NarrativeRequest{
		Symptoms:    projectSymptoms(symptoms),
		Medications: projectMedications(medications),
		PeriodStart: start,
		PeriodEnd:   end,
		Format:      format,
	})
	if err != nil {
		metrics.ReportErrorsTotal.WithLabelValues("generation").Inc()
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("narrative generation failed")
		return nil, err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(format).Inc()
	s.logger.Info().
		Str("user_id", input.UserID).
		Int("symptoms", len(symptoms)).
		Int("medications", len(medications)).
		Msg("report generated")

	return &ports.Report{
		UserID:           input.UserID,
		PeriodStart:      start,
		PeriodEnd:        end,
		Narrative:        narrative,
		SymptomsCount:    len(symptoms),
		MedicationsCount: len(medications),
	}, nil
}

// GeneratePDF produces the detailed narrative and lays it out as PDF bytes.
func (s *ReportService) GeneratePDF(ctx context.Context, input ports.GenerateReportInput) ([]byte, *ports.Report, error) {
	input.Format = "detailed"

	report, err := s.Generate(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.renderer.Render(report.Narrative, report.PeriodStart, report.PeriodEnd)
	if err != nil {
		metrics.ReportErrorsTotal.WithLabelValues("generation").Inc()
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrReportGeneration, err)
	}
	return data, report, nil
}

// projectSymptoms shapes symptoms for the narrative generator, discarding
// identifiers and the user id.
func projectSymptoms(in []*domain.Symptom) []ports.SymptomRecord {
	out := make([]ports.SymptomRecord, len(in))
	for i, s := range in {
		out[i] = ports.SymptomRecord{
			Details:   s.Details,
			Severity:  s.Severity,
			Timestamp: s.Timestamp.Format(time.RFC3339),
		}
	}
	return out
}

func projectMedications(in []*domain.Medication) []ports.MedicationRecord {
	out := make([]ports.MedicationRecord, len(in))
	for i, m := range in {
		out[i] = ports.MedicationRecord{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
		}
	}
	return out
}
