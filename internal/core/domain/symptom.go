package domain

import (
	"errors"
	"time"
)

const (
	SeverityMin = 1
	SeverityMax = 10
)

var ErrInvalidSeverity = errors.New("severity must be between 1 and 10")

// Symptom is a single recorded symptom occurrence. The timestamp is
// server-assigned at creation; symptoms are immutable afterwards and the API
// exposes no delete route for them.
type Symptom struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Severity  int       `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidSeverity reports whether n is inside the accepted [1,10] scale.
func ValidSeverity(n int) bool {
	return n >= SeverityMin && n <= SeverityMax
}
