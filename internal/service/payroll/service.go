package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
)

type CalcServiceImpl struct {
	calcRepo     payroll.CalculationRepository
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	settings     setting.SettingsService
	calculator   Calculator
}

func NewCalcService(
	calcRepo payroll.CalculationRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	settings setting.SettingsService,
) payroll.CalcService {
	return &CalcServiceImpl{
		calcRepo:     calcRepo,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		settings:     settings,
		calculator:   NewCalculator(),
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *CalcServiceImpl) GetOrCompute(ctx context.Context, punchID string) (payroll.PayCalculation, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayCalculation{}, err
	}
	return s.getOrCompute(ctx, punchID, companyID)
}

// getOrCompute serves the cached row when present; a second call with an
// unchanged punch returns the stored breakdown untouched.
func (s *CalcServiceImpl) getOrCompute(ctx context.Context, punchID, companyID string) (payroll.PayCalculation, error) {
	cached, err := s.calcRepo.GetByPunchID(ctx, punchID, companyID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, payroll.ErrCalculationNotFound) {
		return payroll.PayCalculation{}, err
	}

	p, err := s.punchRepo.GetByID(ctx, punchID, companyID)
	if err != nil {
		return payroll.PayCalculation{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID, companyID)
	if err != nil {
		return payroll.PayCalculation{}, err
	}
	settings, err := s.settings.Resolve(ctx, companyID)
	if err != nil {
		return payroll.PayCalculation{}, err
	}

	breakdown, err := s.calculator.Compute(p, emp.HourlyRate, settings)
	if err != nil {
		return payroll.PayCalculation{}, err
	}

	return s.calcRepo.Upsert(ctx, payroll.PayCalculation{
		PunchID:    punchID,
		EmployeeID: p.EmployeeID,
		CompanyID:  companyID,
		Breakdown:  breakdown,
		ComputedAt: time.Now(),
	})
}

func (s *CalcServiceImpl) Invalidate(ctx context.Context, punchID string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.calcRepo.DeleteByPunchID(ctx, punchID, companyID)
}

// InvalidateCompany drops every cached breakdown for the caller's company.
// Used after a settings change, since every breakdown depends on settings.
func (s *CalcServiceImpl) InvalidateCompany(ctx context.Context) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.calcRepo.DeleteByCompanyID(ctx, companyID)
}
