package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown is the derived pay for a single punch. TotalPay is always the
// exact decimal sum of the seven pay components plus the reimbursement
// passthrough.
type Breakdown struct {
	WorkedHours           decimal.Decimal
	RegHours              decimal.Decimal
	OTHours               decimal.Decimal
	PTOHours              decimal.Decimal
	HolidayWorkedHours    decimal.Decimal
	HolidayNonWorkedHours decimal.Decimal
	MiscHours             decimal.Decimal
	Miles                 decimal.Decimal

	RegPay              decimal.Decimal
	OTPay               decimal.Decimal
	PTOPay              decimal.Decimal
	HolidayWorkedPay    decimal.Decimal
	HolidayNonWorkedPay decimal.Decimal
	MiscHoursPay        decimal.Decimal
	MileagePay          decimal.Decimal
	Reimbursement       decimal.Decimal
	TotalPay            decimal.Decimal
}

// PayCalculation is the cached Breakdown for one punch. It is disposable:
// safe to delete at any time and regenerated on the next GetOrCompute.
type PayCalculation struct {
	ID         string
	PunchID    string
	EmployeeID string
	CompanyID  string
	Breakdown  Breakdown
	ComputedAt time.Time
}
