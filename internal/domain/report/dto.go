package report

import (
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PeriodSummary is one employee's totals across a pay period. Reports carry
// one summary per active employee, including those with no punches in range.
type PeriodSummary struct {
	EmployeeID            string
	EmployeeName          string
	HasEntries            bool
	RegHours              decimal.Decimal
	OTHours               decimal.Decimal
	PTOHours              decimal.Decimal
	HolidayWorkedHours    decimal.Decimal
	HolidayNonWorkedHours decimal.Decimal
	MiscHours             decimal.Decimal
	TotalHours            decimal.Decimal
	Miles                 decimal.Decimal
	Reimbursement         decimal.Decimal
	RegPay                decimal.Decimal
	OTPay                 decimal.Decimal
	PTOPay                decimal.Decimal
	HolidayPay            decimal.Decimal
	MiscPay               decimal.Decimal
	MileagePay            decimal.Decimal
	TotalPay              decimal.Decimal
}

// PeriodSummaryResponse is the UI-facing row: hours rounded to one decimal,
// currency to two. The CSV export path uses two decimals for both instead.
type PeriodSummaryResponse struct {
	EmployeeID            string          `json:"employee_id"`
	EmployeeName          string          `json:"employee_name"`
	HasEntries            bool            `json:"has_entries"`
	RegHours              decimal.Decimal `json:"reg_hours"`
	OTHours               decimal.Decimal `json:"ot_hours"`
	PTOHours              decimal.Decimal `json:"pto_hours"`
	HolidayWorkedHours    decimal.Decimal `json:"holiday_worked_hours"`
	HolidayNonWorkedHours decimal.Decimal `json:"holiday_non_worked_hours"`
	MiscHours             decimal.Decimal `json:"misc_hours"`
	TotalHours            decimal.Decimal `json:"total_hours"`
	Miles                 decimal.Decimal `json:"miles"`
	Reimbursement         decimal.Decimal `json:"reimbursement"`
	RegPay                decimal.Decimal `json:"reg_pay"`
	OTPay                 decimal.Decimal `json:"ot_pay"`
	PTOPay                decimal.Decimal `json:"pto_pay"`
	HolidayPay            decimal.Decimal `json:"holiday_pay"`
	MiscPay               decimal.Decimal `json:"misc_pay"`
	MileagePay            decimal.Decimal `json:"mileage_pay"`
	TotalPay              decimal.Decimal `json:"total_pay"`
}

func (s PeriodSummary) ToResponse() PeriodSummaryResponse {
	return PeriodSummaryResponse{
		EmployeeID:            s.EmployeeID,
		EmployeeName:          s.EmployeeName,
		HasEntries:            s.HasEntries,
		RegHours:              s.RegHours.Round(1),
		OTHours:               s.OTHours.Round(1),
		PTOHours:              s.PTOHours.Round(1),
		HolidayWorkedHours:    s.HolidayWorkedHours.Round(1),
		HolidayNonWorkedHours: s.HolidayNonWorkedHours.Round(1),
		MiscHours:             s.MiscHours.Round(1),
		TotalHours:            s.TotalHours.Round(1),
		Miles:                 s.Miles.Round(1),
		Reimbursement:         s.Reimbursement.Round(2),
		RegPay:                s.RegPay.Round(2),
		OTPay:                 s.OTPay.Round(2),
		PTOPay:                s.PTOPay.Round(2),
		HolidayPay:            s.HolidayPay.Round(2),
		MiscPay:               s.MiscPay.Round(2),
		MileagePay:            s.MileagePay.Round(2),
		TotalPay:              s.TotalPay.Round(2),
	}
}

type PayrollReportRequest struct {
	FromDate string
	ToDate   string
}

func (r *PayrollReportRequest) Validate() (from, to time.Time, err error) {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return from, to, nil
}

type PayrollReport struct {
	FromDate    string                  `json:"from_date"`
	ToDate      string                  `json:"to_date"`
	GeneratedAt string                  `json:"generated_at"`
	TotalPayout decimal.Decimal         `json:"total_payout"`
	Summaries   []PeriodSummaryResponse `json:"summaries"`
}
