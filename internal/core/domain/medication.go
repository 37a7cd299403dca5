package domain

import (
	"errors"
	"time"
)

var ErrMedicationNotFound = errors.New("medication not found or does not belong to user")
var ErrEmptyUpdate = errors.New("no fields to update")

// Medication is a medication entry owned by a user. Ownership is by
// convention only: user_id references a User but the store enforces no
// referential integrity.
type Medication struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MedicationUpdate carries a partial update; nil fields are left untouched.
type MedicationUpdate struct {
	Name      *string
	Dosage    *string
	Frequency *string
}

// IsEmpty reports whether the update would change nothing.
func (u MedicationUpdate) IsEmpty() bool {
	return u.Name == nil && u.Dosage == nil && u.Frequency == nil
}
