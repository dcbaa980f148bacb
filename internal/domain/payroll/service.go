package payroll

import "context"

type CalculationRepository interface {
	GetByPunchID(ctx context.Context, punchID string, companyID string) (PayCalculation, error)
	Upsert(ctx context.Context, calc PayCalculation) (PayCalculation, error)
	DeleteByPunchID(ctx context.Context, punchID string, companyID string) error
	DeleteByCompanyID(ctx context.Context, companyID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string, companyID string) error
}

// CalcService enforces at most one stored Breakdown per punch. It never
// detects drift on its own: whoever mutates a punch or a setting the
// breakdown depends on must call the matching Invalidate.
type CalcService interface {
	GetOrCompute(ctx context.Context, punchID string) (PayCalculation, error)
	Invalidate(ctx context.Context, punchID string) error
	InvalidateCompany(ctx context.Context) error
}
