package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointment table. Date is a plain calendar day
// (YYYY-MM-DD); StartTime and EndTime are wall-clock strings, either "HH:MM"
// or embedded in an ISO datetime — both forms occur in stored data and
// consumers must tolerate both.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	ProfessionalID  uuid.UUID `db:"professional_id" json:"professional_id"`
	Date            *string   `db:"date" json:"date,omitempty"`
	StartTime       string    `db:"start_time" json:"start_time"`
	EndTime         *string   `db:"end_time" json:"end_time,omitempty"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	Status          Status    `db:"status" json:"status"`
	Procedure       *string   `db:"procedure_label" json:"procedure,omitempty"`
	Value           *float64  `db:"value" json:"value,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
