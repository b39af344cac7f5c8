package blocking

import (
	"time"

	"github.com/google/uuid"
)

// AllProfessionals is the selector sentinel meaning "every roster member".
// The fan-out creates one record per professional; no multi-professional
// record ever exists.
const AllProfessionals = "all"

// MaxReasonLen bounds the free-text reason of a blocked period.
const MaxReasonLen = 100

// BlockedPeriod maps to the blocked_period table: an inclusive date range
// during which one professional takes no bookings.
type BlockedPeriod struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ProfessionalID uuid.UUID `db:"professional_id" json:"professionalId"`
	StartDate      string    `db:"start_date" json:"startDate"`
	EndDate        string    `db:"end_date" json:"endDate"`
	Reason         string    `db:"reason" json:"reason"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Holiday maps to the holiday table. Holidays are created or seeded and
// deleted, never mutated in place.
type Holiday struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Date      string    `db:"date" json:"date"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Conflict references an existing appointment that a proposed blocked period
// would overlap. ProfessionalName is set only during "all professionals"
// resolution.
type Conflict struct {
	ID               uuid.UUID `json:"id"`
	StartTime        string    `json:"start_time"`
	ProfessionalName string    `json:"professional_name,omitempty"`
}
