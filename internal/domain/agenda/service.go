package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafagnx/clinicos-sub001/internal/domain/appointment"
	"github.com/rafagnx/clinicos-sub001/internal/domain/blocking"
)

// The calendar reads through narrow source interfaces satisfied by the
// appointment and blocking repositories.

type AppointmentSource interface {
	ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*appointment.Appointment, error)
}

type BlockedPeriodSource interface {
	ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*blocking.BlockedPeriod, error)
}

type HolidaySource interface {
	ListRange(ctx context.Context, startDate, endDate string) ([]*blocking.Holiday, error)
}

type Service struct {
	appointments AppointmentSource
	periods      BlockedPeriodSource
	holidays     HolidaySource
}

func NewService(appts AppointmentSource, periods BlockedPeriodSource, holidays HolidaySource) *Service {
	return &Service{appointments: appts, periods: periods, holidays: holidays}
}

// VisibleRange returns the inclusive date window for one view around the
// reference date: the day itself, or the Sunday-first week containing it.
func VisibleRange(view ViewMode, referenceDate time.Time) (string, string) {
	if view == ViewWeek {
		start := WeekStart(referenceDate)
		return start.Format("2006-01-02"), start.AddDate(0, 0, daysPerWeek-1).Format("2006-01-02")
	}
	d := referenceDate.Format("2006-01-02")
	return d, d
}

// Grid loads the visible window's appointments, blocked periods (for the
// active professional filter) and holidays, builds the availability index
// and returns the computed layout.
func (s *Service) Grid(ctx context.Context, view ViewMode, referenceDate time.Time, professionalID *uuid.UUID) (*Grid, error) {
	if view != ViewDay && view != ViewWeek {
		return nil, fmt.Errorf("invalid view mode: %s", view)
	}

	startDate, endDate := VisibleRange(view, referenceDate)

	appts, err := s.appointments.ListRange(ctx, professionalID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	periods, err := s.periods.ListRange(ctx, professionalID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list blocked periods: %w", err)
	}
	holidays, err := s.holidays.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	grid := Layout(appts, view, referenceDate, NewIndex(periods, holidays))
	return &grid, nil
}
