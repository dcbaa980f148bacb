package report

import (
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/report"
)

// Aggregator folds derived breakdowns into per-employee period summaries.
// It is backend-agnostic: callers hand it already-fetched records and the
// breakdowns they managed to derive, keyed by punch id.
type Aggregator struct{}

func NewAggregator() Aggregator {
	return Aggregator{}
}

// Aggregate produces exactly one summary per employee, in input order,
// including employees with no punches in range (HasEntries false, all totals
// zero). Punches outside [from, to], rejected punches, and punches whose
// breakdown is absent are skipped; a single bad punch never aborts the report.
func (Aggregator) Aggregate(
	employees []employee.Employee,
	punches []punch.Punch,
	breakdowns map[string]payroll.Breakdown,
	from, to time.Time,
) []report.PeriodSummary {
	byEmployee := make(map[string][]punch.Punch, len(employees))
	for _, p := range punches {
		if p.Status == punch.StatusRejected {
			continue
		}
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	summaries := make([]report.PeriodSummary, 0, len(employees))
	for _, emp := range employees {
		summary := report.PeriodSummary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
		}
		for _, p := range byEmployee[emp.ID] {
			b, ok := breakdowns[p.ID]
			if !ok {
				continue
			}
			summary.HasEntries = true
			summary.RegHours = summary.RegHours.Add(b.RegHours)
			summary.OTHours = summary.OTHours.Add(b.OTHours)
			summary.PTOHours = summary.PTOHours.Add(b.PTOHours)
			summary.HolidayWorkedHours = summary.HolidayWorkedHours.Add(b.HolidayWorkedHours)
			summary.HolidayNonWorkedHours = summary.HolidayNonWorkedHours.Add(b.HolidayNonWorkedHours)
			summary.MiscHours = summary.MiscHours.Add(b.MiscHours)
			summary.Miles = summary.Miles.Add(b.Miles)
			summary.Reimbursement = summary.Reimbursement.Add(b.Reimbursement)
			summary.RegPay = summary.RegPay.Add(b.RegPay)
			summary.OTPay = summary.OTPay.Add(b.OTPay)
			summary.PTOPay = summary.PTOPay.Add(b.PTOPay)
			summary.HolidayPay = summary.HolidayPay.Add(b.HolidayWorkedPay).Add(b.HolidayNonWorkedPay)
			summary.MiscPay = summary.MiscPay.Add(b.MiscHoursPay)
			summary.MileagePay = summary.MileagePay.Add(b.MileagePay)
			summary.TotalPay = summary.TotalPay.Add(b.TotalPay)
		}
		summary.TotalHours = summary.RegHours.
			Add(summary.OTHours).
			Add(summary.PTOHours).
			Add(summary.HolidayWorkedHours).
			Add(summary.HolidayNonWorkedHours).
			Add(summary.MiscHours)
		summaries = append(summaries, summary)
	}

	return summaries
}
