package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
)

type payCalculationRepositoryImpl struct {
	db *database.DB
}

func NewPayCalculationRepository(db *database.DB) payroll.CalculationRepository {
	return &payCalculationRepositoryImpl{db: db}
}

func (r *payCalculationRepositoryImpl) GetByPunchID(ctx context.Context, punchID string, companyID string) (payroll.PayCalculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, punch_id, employee_id, company_id,
			worked_hours, reg_hours, ot_hours, pto_hours,
			holiday_worked_hours, holiday_non_worked_hours, misc_hours, miles,
			reg_pay, ot_pay, pto_pay, holiday_worked_pay, holiday_non_worked_pay,
			misc_hours_pay, mileage_pay, reimbursement, total_pay, computed_at
		FROM pay_calculations
		WHERE punch_id = $1 AND company_id = $2
	`

	var c payroll.PayCalculation
	err := q.QueryRow(ctx, query, punchID, companyID).Scan(
		&c.ID, &c.PunchID, &c.EmployeeID, &c.CompanyID,
		&c.Breakdown.WorkedHours, &c.Breakdown.RegHours, &c.Breakdown.OTHours, &c.Breakdown.PTOHours,
		&c.Breakdown.HolidayWorkedHours, &c.Breakdown.HolidayNonWorkedHours, &c.Breakdown.MiscHours, &c.Breakdown.Miles,
		&c.Breakdown.RegPay, &c.Breakdown.OTPay, &c.Breakdown.PTOPay, &c.Breakdown.HolidayWorkedPay, &c.Breakdown.HolidayNonWorkedPay,
		&c.Breakdown.MiscHoursPay, &c.Breakdown.MileagePay, &c.Breakdown.Reimbursement, &c.Breakdown.TotalPay, &c.ComputedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayCalculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.PayCalculation{}, fmt.Errorf("failed to get pay calculation: %w", err)
	}

	return c, nil
}

func (r *payCalculationRepositoryImpl) Upsert(ctx context.Context, calc payroll.PayCalculation) (payroll.PayCalculation, error) {
	q := GetQuerier(ctx, r.db)

	if calc.ID == "" {
		calc.ID = uuid.New().String()
	}

	query := `
		INSERT INTO pay_calculations (
			id, punch_id, employee_id, company_id,
			worked_hours, reg_hours, ot_hours, pto_hours,
			holiday_worked_hours, holiday_non_worked_hours, misc_hours, miles,
			reg_pay, ot_pay, pto_pay, holiday_worked_pay, holiday_non_worked_pay,
			misc_hours_pay, mileage_pay, reimbursement, total_pay, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (punch_id) DO UPDATE SET
			worked_hours = EXCLUDED.worked_hours,
			reg_hours = EXCLUDED.reg_hours,
			ot_hours = EXCLUDED.ot_hours,
			pto_hours = EXCLUDED.pto_hours,
			holiday_worked_hours = EXCLUDED.holiday_worked_hours,
			holiday_non_worked_hours = EXCLUDED.holiday_non_worked_hours,
			misc_hours = EXCLUDED.misc_hours,
			miles = EXCLUDED.miles,
			reg_pay = EXCLUDED.reg_pay,
			ot_pay = EXCLUDED.ot_pay,
			pto_pay = EXCLUDED.pto_pay,
			holiday_worked_pay = EXCLUDED.holiday_worked_pay,
			holiday_non_worked_pay = EXCLUDED.holiday_non_worked_pay,
			misc_hours_pay = EXCLUDED.misc_hours_pay,
			mileage_pay = EXCLUDED.mileage_pay,
			reimbursement = EXCLUDED.reimbursement,
			total_pay = EXCLUDED.total_pay,
			computed_at = EXCLUDED.computed_at
		RETURNING id
	`

	b := calc.Breakdown
	err := q.QueryRow(ctx, query,
		calc.ID, calc.PunchID, calc.EmployeeID, calc.CompanyID,
		b.WorkedHours, b.RegHours, b.OTHours, b.PTOHours,
		b.HolidayWorkedHours, b.HolidayNonWorkedHours, b.MiscHours, b.Miles,
		b.RegPay, b.OTPay, b.PTOPay, b.HolidayWorkedPay, b.HolidayNonWorkedPay,
		b.MiscHoursPay, b.MileagePay, b.Reimbursement, b.TotalPay, calc.ComputedAt,
	).Scan(&calc.ID)
	if err != nil {
		return payroll.PayCalculation{}, fmt.Errorf("failed to upsert pay calculation: %w", err)
	}

	return calc, nil
}

func (r *payCalculationRepositoryImpl) DeleteByPunchID(ctx context.Context, punchID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pay_calculations WHERE punch_id = $1 AND company_id = $2`
	if _, err := q.Exec(ctx, query, punchID, companyID); err != nil {
		return fmt.Errorf("failed to delete pay calculation: %w", err)
	}

	return nil
}

func (r *payCalculationRepositoryImpl) DeleteByCompanyID(ctx context.Context, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pay_calculations WHERE company_id = $1`
	if _, err := q.Exec(ctx, query, companyID); err != nil {
		return fmt.Errorf("failed to delete company pay calculations: %w", err)
	}

	return nil
}

func (r *payCalculationRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pay_calculations WHERE employee_id = $1 AND company_id = $2`
	if _, err := q.Exec(ctx, query, employeeID, companyID); err != nil {
		return fmt.Errorf("failed to delete employee pay calculations: %w", err)
	}

	return nil
}
