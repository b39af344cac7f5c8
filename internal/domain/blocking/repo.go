package blocking

import (
	"context"

	"github.com/google/uuid"
)

type BlockedPeriodRepository interface {
	Create(ctx context.Context, bp *BlockedPeriod) error
	GetByID(ctx context.Context, id uuid.UUID) (*BlockedPeriod, error)
	UpdateReason(ctx context.Context, id uuid.UUID, reason string) (*BlockedPeriod, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListRange returns blocked periods overlapping [startDate, endDate]
	// (inclusive). A nil professionalID means every professional.
	ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*BlockedPeriod, error)
	// FindConflicts returns the professional's appointments whose calendar
	// date falls inside [startDate, endDate].
	FindConflicts(ctx context.Context, professionalID uuid.UUID, startDate, endDate string) ([]Conflict, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListYear(ctx context.Context, year int) ([]*Holiday, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]*Holiday, error)
	ExistsDate(ctx context.Context, date string) (bool, error)
}
