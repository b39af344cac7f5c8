package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListRange returns appointments whose calendar date falls inside
	// [startDate, endDate] (inclusive, YYYY-MM-DD), plus any row without a
	// date column — those keep their day inside the start time and the
	// caller resolves it. A nil professionalID means every professional.
	ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*Appointment, error)
}
