package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalcRepo struct {
	byPunch map[string]payroll.PayCalculation
	upserts int
}

func (f *fakeCalcRepo) GetByPunchID(_ context.Context, punchID, _ string) (payroll.PayCalculation, error) {
	if calc, ok := f.byPunch[punchID]; ok {
		return calc, nil
	}
	return payroll.PayCalculation{}, payroll.ErrCalculationNotFound
}

func (f *fakeCalcRepo) Upsert(_ context.Context, calc payroll.PayCalculation) (payroll.PayCalculation, error) {
	f.upserts++
	calc.ID = "calc-1"
	f.byPunch[calc.PunchID] = calc
	return calc, nil
}

func (f *fakeCalcRepo) DeleteByPunchID(_ context.Context, punchID, _ string) error {
	delete(f.byPunch, punchID)
	return nil
}

func (f *fakeCalcRepo) DeleteByCompanyID(context.Context, string) error {
	f.byPunch = map[string]payroll.PayCalculation{}
	return nil
}

func (f *fakeCalcRepo) DeleteByEmployeeID(context.Context, string, string) error {
	return nil
}

type fakePunchRepo struct {
	punches map[string]punch.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id, _ string) (punch.Punch, error) {
	if p, ok := f.punches[id]; ok {
		return p, nil
	}
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) List(context.Context, string, punch.PunchFilter) ([]punch.Punch, int64, error) {
	return nil, 0, nil
}

func (f *fakePunchRepo) ListByRange(context.Context, string, time.Time, time.Time) ([]punch.Punch, error) {
	return nil, nil
}

func (f *fakePunchRepo) Update(_ context.Context, id, _ string, _ punch.UpdatePunchRequest) (punch.Punch, error) {
	return f.punches[id], nil
}

func (f *fakePunchRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakePunchRepo) DeleteByEmployeeAndRange(context.Context, string, string, time.Time, time.Time) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, _ string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(context.Context, string, employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id, _ string, _ employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) Deactivate(context.Context, string, string) error { return nil }

type fakeSettingsService struct{}

func (fakeSettingsService) Get(context.Context) (setting.SettingsResponse, error) {
	return setting.SettingsResponse{}, nil
}

func (fakeSettingsService) Update(context.Context, setting.UpdateSettingsRequest) (setting.SettingsResponse, error) {
	return setting.SettingsResponse{}, nil
}

func (fakeSettingsService) Resolve(_ context.Context, companyID string) (setting.Settings, error) {
	return setting.Defaults(companyID), nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "company-1",
		"role":       "admin",
		"type":       "access",
	})
	require.NoError(t, err)

	token, err := ja.Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func testService(t *testing.T) (payroll.CalcService, *fakeCalcRepo) {
	in, out := "08:00", "18:00"
	calcRepo := &fakeCalcRepo{byPunch: map[string]payroll.PayCalculation{}}
	punchRepo := &fakePunchRepo{punches: map[string]punch.Punch{
		"p1": {
			ID:           "p1",
			EmployeeID:   "e1",
			CompanyID:    "company-1",
			TimeIn:       &in,
			TimeOut:      &out,
			LunchMinutes: 30,
		},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e1": {ID: "e1", CompanyID: "company-1", Name: "Ava", HourlyRate: decimal.NewFromInt(20), IsActive: true},
	}}

	return NewCalcService(calcRepo, punchRepo, employeeRepo, fakeSettingsService{}), calcRepo
}

func TestGetOrComputeCachesAndReuses(t *testing.T) {
	ctx := authedContext(t)
	svc, calcRepo := testService(t)

	first, err := svc.GetOrCompute(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, calcRepo.upserts)
	// 9.5h at $20 with 1.5h past the 8h threshold.
	assert.True(t, first.Breakdown.TotalPay.Equal(decimal.NewFromInt(205)), "total %s", first.Breakdown.TotalPay)

	second, err := svc.GetOrCompute(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, calcRepo.upserts, "second read must serve the cached row")
	assert.True(t, second.Breakdown.TotalPay.Equal(first.Breakdown.TotalPay))
}

func TestInvalidateForcesRecompute(t *testing.T) {
	ctx := authedContext(t)
	svc, calcRepo := testService(t)

	_, err := svc.GetOrCompute(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(ctx, "p1"))
	assert.Empty(t, calcRepo.byPunch)

	_, err = svc.GetOrCompute(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, calcRepo.upserts)
}

func TestGetOrComputeUnknownPunch(t *testing.T) {
	ctx := authedContext(t)
	svc, _ := testService(t)

	_, err := svc.GetOrCompute(ctx, "missing")
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)
}
