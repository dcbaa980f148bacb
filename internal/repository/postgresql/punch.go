package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
)

const punchColumns = `
	p.id, p.employee_id, p.company_id, p.date, p.time_in, p.time_out,
	p.lunch_minutes, p.miles, p.pto_hours, p.holiday_worked_hours,
	p.holiday_non_worked_hours, p.misc_hours, p.misc_reimbursement,
	p.status, p.created_at, p.updated_at, e.name
`

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

func scanPunch(row pgx.Row) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.TimeIn, &p.TimeOut,
		&p.LunchMinutes, &p.Miles, &p.PTOHours, &p.HolidayWorkedHours,
		&p.HolidayNonWorkedHours, &p.MiscHours, &p.MiscReimbursement,
		&p.Status, &p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
	)
	return p, err
}

func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = punch.StatusPending
	}

	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO punches (
				id, employee_id, company_id, date, time_in, time_out,
				lunch_minutes, miles, pto_hours, holiday_worked_hours,
				holiday_non_worked_hours, misc_hours, misc_reimbursement, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING *
		)
		SELECT %s
		FROM inserted p
		JOIN employees e ON e.id = p.employee_id
	`, punchColumns)

	created, err := scanPunch(q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.CompanyID, p.Date, p.TimeIn, p.TimeOut,
		p.LunchMinutes, p.Miles, p.PTOHours, p.HolidayWorkedHours,
		p.HolidayNonWorkedHours, p.MiscHours, p.MiscReimbursement, p.Status,
	))
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return created, nil
}

func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.company_id = $2
	`, punchColumns)

	p, err := scanPunch(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return p, nil
}

func (r *punchRepositoryImpl) List(ctx context.Context, companyID string, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.company_id = $1"}
	args := []interface{}{companyID}

	addCond := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.EmployeeID != nil {
		addCond("p.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.FromDate != nil {
		addCond("p.date >= $%d", *filter.FromDate)
	}
	if filter.ToDate != nil {
		addCond("p.date <= $%d", *filter.ToDate)
	}
	if filter.Status != nil {
		addCond("p.status = $%d", *filter.Status)
	}
	if filter.Search != "" {
		addCond("e.name ILIKE $%d", "%"+filter.Search+"%")
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
	`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.date DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, punchColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

func (r *punchRepositoryImpl) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.company_id = $1 AND p.date BETWEEN $2 AND $3
		ORDER BY p.date ASC, p.created_at ASC
	`, punchColumns)

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by range: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

func (r *punchRepositoryImpl) Update(ctx context.Context, id string, companyID string, req punch.UpdatePunchRequest) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Date != nil {
		addSet("date", *req.Date)
	}
	if req.TimeIn != nil {
		// Empty string clears the clock time.
		if *req.TimeIn == "" {
			setClauses = append(setClauses, "time_in = NULL")
		} else {
			addSet("time_in", *req.TimeIn)
		}
	}
	if req.TimeOut != nil {
		if *req.TimeOut == "" {
			setClauses = append(setClauses, "time_out = NULL")
		} else {
			addSet("time_out", *req.TimeOut)
		}
	}
	if req.LunchMinutes != nil {
		addSet("lunch_minutes", *req.LunchMinutes)
	}
	if req.Miles != nil {
		addSet("miles", *req.Miles)
	}
	if req.PTOHours != nil {
		addSet("pto_hours", *req.PTOHours)
	}
	if req.HolidayWorkedHours != nil {
		addSet("holiday_worked_hours", *req.HolidayWorkedHours)
	}
	if req.HolidayNonWorkedHours != nil {
		addSet("holiday_non_worked_hours", *req.HolidayNonWorkedHours)
	}
	if req.MiscHours != nil {
		addSet("misc_hours", *req.MiscHours)
	}
	if req.MiscReimbursement != nil {
		addSet("misc_reimbursement", *req.MiscReimbursement)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	args = append(args, id, companyID)
	query := fmt.Sprintf(`
		WITH updated AS (
			UPDATE punches
			SET %s
			WHERE id = $%d AND company_id = $%d
			RETURNING *
		)
		SELECT %s
		FROM updated p
		JOIN employees e ON e.id = p.employee_id
	`, strings.Join(setClauses, ", "), len(args)-1, len(args), punchColumns)

	p, err := scanPunch(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to update punch: %w", err)
	}

	return p, nil
}

func (r *punchRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM punches
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to delete punch: %w", err)
	}

	return nil
}

func (r *punchRepositoryImpl) DeleteByEmployeeAndRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM punches
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
	`

	if _, err := q.Exec(ctx, query, employeeID, companyID, from, to); err != nil {
		return fmt.Errorf("failed to delete punches in range: %w", err)
	}

	return nil
}
