package blocking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	periods  BlockedPeriodRepository
	holidays HolidayRepository
}

func NewService(periods BlockedPeriodRepository, holidays HolidayRepository) *Service {
	return &Service{periods: periods, holidays: holidays}
}

// CreateInput is one create-blocked-period request for one professional.
type CreateInput struct {
	ProfessionalID   uuid.UUID
	StartDate        string
	EndDate          string
	Reason           string
	ConfirmConflicts bool
}

// CreateResult is the outcome of one create request: either Created is set
// (the period was committed) or Conflicts is non-empty (nothing was created).
type CreateResult struct {
	Created   *BlockedPeriod
	Conflicts []Conflict
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CreateBlockedPeriod is the two-phase create operation. It looks up the
// professional's appointments inside the requested range; when any exist and
// the caller has not confirmed, the conflicts are returned and no record is
// created. Otherwise exactly one BlockedPeriod is committed. A conflict
// outcome is not an error.
func (s *Service) CreateBlockedPeriod(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if in.ProfessionalID == uuid.Nil {
		return nil, validationErrorf("professional_id is required")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, validationErrorf("reason is required")
	}
	if len([]rune(reason)) > MaxReasonLen {
		return nil, validationErrorf("reason must be at most %d characters", MaxReasonLen)
	}
	if !validDate(in.StartDate) || !validDate(in.EndDate) {
		return nil, validationErrorf("dates must be YYYY-MM-DD")
	}
	if in.EndDate < in.StartDate {
		return nil, validationErrorf("end_date must not precede start_date")
	}

	conflicts, err := s.periods.FindConflicts(ctx, in.ProfessionalID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	if len(conflicts) > 0 && !in.ConfirmConflicts {
		return &CreateResult{Conflicts: conflicts}, nil
	}

	bp := &BlockedPeriod{
		ProfessionalID: in.ProfessionalID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Reason:         reason,
	}
	if err := s.periods.Create(ctx, bp); err != nil {
		return nil, fmt.Errorf("create blocked period: %w", err)
	}
	return &CreateResult{Created: bp}, nil
}

func (s *Service) GetBlockedPeriod(ctx context.Context, id uuid.UUID) (*BlockedPeriod, error) {
	return s.periods.GetByID(ctx, id)
}

func (s *Service) ListBlockedPeriods(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*BlockedPeriod, error) {
	if !validDate(startDate) || !validDate(endDate) {
		return nil, validationErrorf("dates must be YYYY-MM-DD")
	}
	return s.periods.ListRange(ctx, professionalID, startDate, endDate)
}

func (s *Service) UpdateReason(ctx context.Context, id uuid.UUID, reason string) (*BlockedPeriod, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationErrorf("reason is required")
	}
	if len([]rune(reason)) > MaxReasonLen {
		return nil, validationErrorf("reason must be at most %d characters", MaxReasonLen)
	}
	return s.periods.UpdateReason(ctx, id, reason)
}

func (s *Service) DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error {
	return s.periods.Delete(ctx, id)
}

// -- Holidays --

func (s *Service) CreateHoliday(ctx context.Context, h *Holiday) error {
	if !validDate(h.Date) {
		return validationErrorf("date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(h.Name) == "" {
		return validationErrorf("name is required")
	}
	return s.holidays.Create(ctx, h)
}

func (s *Service) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	return s.holidays.Delete(ctx, id)
}

func (s *Service) ListHolidays(ctx context.Context, year int) ([]*Holiday, error) {
	return s.holidays.ListYear(ctx, year)
}

// nationalHolidays is the fixed-date Brazilian national set used by the
// bulk seed. Movable feasts are left to manual entry.
var nationalHolidays = []struct {
	month, day int
	name       string
}{
	{1, 1, "Confraternização Universal"},
	{4, 21, "Tiradentes"},
	{5, 1, "Dia do Trabalho"},
	{9, 7, "Independência do Brasil"},
	{10, 12, "Nossa Senhora Aparecida"},
	{11, 2, "Finados"},
	{11, 15, "Proclamação da República"},
	{11, 20, "Dia da Consciência Negra"},
	{12, 25, "Natal"},
}

// SeedHolidays bulk-imports the national holiday set for one year, skipping
// dates already present, and returns the number inserted.
func (s *Service) SeedHolidays(ctx context.Context, year int) (int, error) {
	if year < 1900 || year > 2200 {
		return 0, validationErrorf("invalid year: %d", year)
	}
	count := 0
	for _, nh := range nationalHolidays {
		date := fmt.Sprintf("%04d-%02d-%02d", year, nh.month, nh.day)
		exists, err := s.holidays.ExistsDate(ctx, date)
		if err != nil {
			return count, fmt.Errorf("check holiday %s: %w", date, err)
		}
		if exists {
			continue
		}
		if err := s.holidays.Create(ctx, &Holiday{Date: date, Name: nh.name}); err != nil {
			return count, fmt.Errorf("seed holiday %s: %w", date, err)
		}
		count++
	}
	return count, nil
}
