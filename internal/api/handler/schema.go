package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Symptoms ---

type createSymptomRequest struct {
	Name     string `json:"name"     validate:"required"`
	Details  string `json:"details"  validate:"required"`
	Severity int    `json:"severity" validate:"required,min=1,max=10"`
}

type symptomResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Severity  int       `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// --- Medications ---

type createMedicationRequest struct {
	Name      string `json:"name"      validate:"required"`
	Dosage    string `json:"dosage"    validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
}

// updateMedicationRequest is a partial update; absent fields stay nil and are
// not applied.
type updateMedicationRequest struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
}

type medicationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Reports ---

type reportPeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type dataSummaryResponse struct {
	SymptomsCount    int `json:"symptoms_count"`
	MedicationsCount int `json:"medications_count"`
}

type reportResponse struct {
	UserID          string               `json:"user_id"`
	ReportPeriod    reportPeriodResponse `json:"report_period"`
	GeneratedReport string               `json:"generated_report"`
	DataSummary     dataSummaryResponse  `json:"data_summary"`
}
