package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, patient_id, professional_id, date, start_time, end_time,
	duration_minutes, status, procedure_label, value, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var date *time.Time
	err := row.Scan(&a.ID, &a.PatientID, &a.ProfessionalID, &date, &a.StartTime,
		&a.EndTime, &a.DurationMinutes, &a.Status, &a.Procedure, &a.Value,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if date != nil {
		d := date.Format("2006-01-02")
		a.Date = &d
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, professional_id, date, start_time,
			end_time, duration_minutes, status, procedure_label, value)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.PatientID, a.ProfessionalID, a.Date, a.StartTime,
		a.EndTime, a.DurationMinutes, a.Status, a.Procedure, a.Value)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE appointment SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*Appointment, error) {
	// Rows without a date column carry their calendar day inside the start
	// time value; they are included so the caller can resolve them.
	query := `SELECT ` + cols + ` FROM appointment WHERE (date IS NULL OR (date >= $1 AND date <= $2))`
	args := []interface{}{startDate, endDate}
	if professionalID != nil {
		query += ` AND professional_id = $3`
		args = append(args, *professionalID)
	}
	query += ` ORDER BY date, start_time`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
