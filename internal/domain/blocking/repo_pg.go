package blocking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== BlockedPeriod Repository ===========

type blockedPeriodRepoPG struct{ pool *pgxpool.Pool }

func NewBlockedPeriodRepoPG(pool *pgxpool.Pool) BlockedPeriodRepository {
	return &blockedPeriodRepoPG{pool: pool}
}

const bpCols = `id, professional_id, start_date, end_date, reason, created_at`

func scanBlockedPeriod(row pgx.Row) (*BlockedPeriod, error) {
	var bp BlockedPeriod
	var start, end time.Time
	err := row.Scan(&bp.ID, &bp.ProfessionalID, &start, &end, &bp.Reason, &bp.CreatedAt)
	if err != nil {
		return nil, err
	}
	bp.StartDate = start.Format("2006-01-02")
	bp.EndDate = end.Format("2006-01-02")
	return &bp, nil
}

func (r *blockedPeriodRepoPG) Create(ctx context.Context, bp *BlockedPeriod) error {
	bp.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO blocked_period (id, professional_id, start_date, end_date, reason)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		bp.ID, bp.ProfessionalID, bp.StartDate, bp.EndDate, bp.Reason).Scan(&bp.CreatedAt)
}

func (r *blockedPeriodRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*BlockedPeriod, error) {
	return scanBlockedPeriod(r.pool.QueryRow(ctx,
		`SELECT `+bpCols+` FROM blocked_period WHERE id = $1`, id))
}

func (r *blockedPeriodRepoPG) UpdateReason(ctx context.Context, id uuid.UUID, reason string) (*BlockedPeriod, error) {
	return scanBlockedPeriod(r.pool.QueryRow(ctx, `
		UPDATE blocked_period SET reason=$2 WHERE id = $1
		RETURNING `+bpCols, id, reason))
}

func (r *blockedPeriodRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blocked_period WHERE id = $1`, id)
	return err
}

func (r *blockedPeriodRepoPG) ListRange(ctx context.Context, professionalID *uuid.UUID, startDate, endDate string) ([]*BlockedPeriod, error) {
	query := `SELECT ` + bpCols + ` FROM blocked_period WHERE end_date >= $1 AND start_date <= $2`
	args := []interface{}{startDate, endDate}
	if professionalID != nil {
		query += ` AND professional_id = $3`
		args = append(args, *professionalID)
	}
	query += ` ORDER BY start_date`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BlockedPeriod
	for rows.Next() {
		bp, err := scanBlockedPeriod(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, bp)
	}
	return items, rows.Err()
}

func (r *blockedPeriodRepoPG) FindConflicts(ctx context.Context, professionalID uuid.UUID, startDate, endDate string) ([]Conflict, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, start_time FROM appointment
		WHERE professional_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, start_time`,
		professionalID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var conflicts []Conflict
	for rows.Next() {
		var c Conflict
		if err := rows.Scan(&c.ID, &c.StartTime); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, rows.Err()
}

// =========== Holiday Repository ===========

type holidayRepoPG struct{ pool *pgxpool.Pool }

func NewHolidayRepoPG(pool *pgxpool.Pool) HolidayRepository {
	return &holidayRepoPG{pool: pool}
}

const holCols = `id, date, name, created_at`

func scanHoliday(row pgx.Row) (*Holiday, error) {
	var h Holiday
	var date time.Time
	err := row.Scan(&h.ID, &date, &h.Name, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	h.Date = date.Format("2006-01-02")
	return &h, nil
}

func (r *holidayRepoPG) Create(ctx context.Context, h *Holiday) error {
	h.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO holiday (id, date, name) VALUES ($1,$2,$3)
		RETURNING created_at`,
		h.ID, h.Date, h.Name).Scan(&h.CreatedAt)
}

func (r *holidayRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM holiday WHERE id = $1`, id)
	return err
}

func (r *holidayRepoPG) ListYear(ctx context.Context, year int) ([]*Holiday, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+holCols+` FROM holiday WHERE EXTRACT(YEAR FROM date) = $1 ORDER BY date`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHolidays(rows)
}

func (r *holidayRepoPG) ListRange(ctx context.Context, startDate, endDate string) ([]*Holiday, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+holCols+` FROM holiday WHERE date >= $1 AND date <= $2 ORDER BY date`,
		startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHolidays(rows)
}

func (r *holidayRepoPG) ExistsDate(ctx context.Context, date string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM holiday WHERE date = $1)`, date).Scan(&exists)
	return exists, err
}

func collectHolidays(rows pgx.Rows) ([]*Holiday, error) {
	var items []*Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
