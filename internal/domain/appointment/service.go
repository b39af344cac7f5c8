package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.ProfessionalID == uuid.Nil {
		return fmt.Errorf("professional_id is required")
	}
	if a.StartTime == "" {
		return fmt.Errorf("start_time is required")
	}
	if a.Status == "" {
		a.Status = StatusAgendado
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ChangeStatus replaces the appointment's status label. Any target status is
// accepted from any current status; only unknown labels fail.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, target Status) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := Transition(a.Status, target)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	a.Status = next
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*Appointment, error) {
	return s.repo.ListRange(ctx, professionalID, startDate, endDate)
}
