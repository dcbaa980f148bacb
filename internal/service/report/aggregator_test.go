package report

import (
	"testing"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateOneSummaryPerEmployee(t *testing.T) {
	agg := NewAggregator()
	from, to := day("2026-03-02"), day("2026-03-08")

	employees := []employee.Employee{
		{ID: "e1", Name: "Ava"},
		{ID: "e2", Name: "Ben"},
		{ID: "e3", Name: "Cal"},
	}
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e1", Date: day("2026-03-04"), Status: punch.StatusApproved},
		{ID: "p3", EmployeeID: "e2", Date: day("2026-03-05"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {RegHours: d("8"), OTHours: d("1.5"), RegPay: d("160"), OTPay: d("45"), TotalPay: d("205")},
		"p2": {RegHours: d("8"), RegPay: d("160"), TotalPay: d("160")},
		"p3": {PTOHours: d("8"), PTOPay: d("120"), TotalPay: d("120")},
	}

	summaries := agg.Aggregate(employees, punches, breakdowns, from, to)

	assert.Len(t, summaries, 3)

	ava := summaries[0]
	assert.Equal(t, "Ava", ava.EmployeeName)
	assert.True(t, ava.HasEntries)
	assert.True(t, ava.RegHours.Equal(d("16")))
	assert.True(t, ava.OTHours.Equal(d("1.5")))
	assert.True(t, ava.TotalHours.Equal(d("17.5")))
	assert.True(t, ava.TotalPay.Equal(d("365")))

	ben := summaries[1]
	assert.True(t, ben.HasEntries)
	assert.True(t, ben.TotalHours.Equal(d("8")))
	assert.True(t, ben.PTOPay.Equal(d("120")))

	// Cal has no punches but still gets a zero summary.
	cal := summaries[2]
	assert.Equal(t, "Cal", cal.EmployeeName)
	assert.False(t, cal.HasEntries)
	assert.True(t, cal.TotalHours.IsZero())
	assert.True(t, cal.TotalPay.IsZero())
}

func TestAggregateSkipsRejectedAndOutOfRange(t *testing.T) {
	agg := NewAggregator()
	from, to := day("2026-03-02"), day("2026-03-08")

	employees := []employee.Employee{{ID: "e1", Name: "Ava"}}
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusRejected},
		{ID: "p2", EmployeeID: "e1", Date: day("2026-03-09"), Status: punch.StatusApproved},
		{ID: "p3", EmployeeID: "e1", Date: day("2026-03-01"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {TotalPay: d("100")},
		"p2": {TotalPay: d("100")},
		"p3": {TotalPay: d("100")},
	}

	summaries := agg.Aggregate(employees, punches, breakdowns, from, to)

	assert.Len(t, summaries, 1)
	assert.False(t, summaries[0].HasEntries)
	assert.True(t, summaries[0].TotalPay.IsZero())
}

func TestAggregateSkipsMissingBreakdown(t *testing.T) {
	agg := NewAggregator()
	from, to := day("2026-03-02"), day("2026-03-08")

	employees := []employee.Employee{{ID: "e1", Name: "Ava"}}
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e1", Date: day("2026-03-04"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p2": {RegHours: d("8"), RegPay: d("160"), TotalPay: d("160")},
	}

	summaries := agg.Aggregate(employees, punches, breakdowns, from, to)

	assert.Len(t, summaries, 1)
	assert.True(t, summaries[0].HasEntries)
	assert.True(t, summaries[0].TotalPay.Equal(d("160")))
}

func TestAggregateHolidayPayCombinesWorkedAndNonWorked(t *testing.T) {
	agg := NewAggregator()
	from, to := day("2026-03-02"), day("2026-03-08")

	employees := []employee.Employee{{ID: "e1", Name: "Ava"}}
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {
			HolidayWorkedHours:    d("4"),
			HolidayNonWorkedHours: d("4"),
			HolidayWorkedPay:      d("120"),
			HolidayNonWorkedPay:   d("80"),
			TotalPay:              d("200"),
		},
	}

	summaries := agg.Aggregate(employees, punches, breakdowns, from, to)

	assert.True(t, summaries[0].HolidayPay.Equal(d("200")))
	assert.True(t, summaries[0].TotalHours.Equal(d("8")))
}
