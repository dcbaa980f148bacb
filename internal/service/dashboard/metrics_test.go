package dashboard

import (
	"testing"
	"time"

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

func TestTrendPct(t *testing.T) {
	m := NewMetricsComputer()

	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"growth", "120", "100", "20"},
		{"decline", "80", "100", "-20"},
		{"zero previous yields zero", "50", "0", "0"},
		{"both zero", "0", "0", "0"},
		{"rounds to one decimal", "100", "3", "3233.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TrendPct(d(tt.current), d(tt.previous))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPeriodTotals(t *testing.T) {
	m := NewMetricsComputer()
	from, to := day("2026-03-02"), day("2026-03-08")

	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e2", Date: day("2026-03-04"), Status: punch.StatusRejected},
		{ID: "p3", EmployeeID: "e1", Date: day("2026-03-10"), Status: punch.StatusApproved},
		{ID: "p4", EmployeeID: "e2", Date: day("2026-03-05"), Status: punch.StatusPending},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {WorkedHours: d("9.5"), OTHours: d("1.5"), RegPay: d("160"), OTPay: d("45"), TotalPay: d("205")},
		"p2": {WorkedHours: d("8"), RegPay: d("100"), TotalPay: d("100")},
		"p3": {WorkedHours: d("8"), RegPay: d("100"), TotalPay: d("100")},
		"p4": {WorkedHours: d("4"), PTOHours: d("4"), RegPay: d("60"), PTOPay: d("60"), TotalPay: d("120")},
	}

	totals := m.PeriodTotals(punches, breakdowns, from, to)

	assert.Equal(t, "2026-03-02", totals.FromDate)
	assert.Equal(t, "2026-03-08", totals.ToDate)
	// p2 is rejected, p3 is out of range; only p1 and p4 count.
	assert.True(t, totals.TotalHours.Equal(d("17.5")), "total hours %s", totals.TotalHours)
	assert.True(t, totals.OTHours.Equal(d("1.5")))
	assert.True(t, totals.TotalPay.Equal(d("325")))
}

func TestPeriodTotalsSkipsMissingBreakdown(t *testing.T) {
	m := NewMetricsComputer()
	punches := []punch.Punch{
		{ID: "p1", Date: day("2026-03-03"), Status: punch.StatusApproved},
	}

	totals := m.PeriodTotals(punches, nil, day("2026-03-02"), day("2026-03-08"))
	assert.True(t, totals.TotalPay.IsZero())
}

func TestLeaderboard(t *testing.T) {
	m := NewMetricsComputer()
	from, to := day("2026-03-02"), day("2026-03-08")
	names := map[string]string{"e1": "Ava", "e2": "Ben", "e3": "Cal", "e4": "Dee"}

	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e1", Date: day("2026-03-04"), Status: punch.StatusApproved},
		{ID: "p3", EmployeeID: "e2", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p4", EmployeeID: "e3", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p5", EmployeeID: "e4", Date: day("2026-03-03"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {OTHours: d("2"), OTPay: d("60")},
		"p2": {OTHours: d("1"), OTPay: d("30")},
		"p3": {OTHours: d("3"), OTPay: d("90")},
		"p4": {OTHours: d("0")},
		"p5": {OTHours: d("3"), OTPay: d("45")},
	}

	entries := m.Leaderboard(punches, breakdowns, names, from, to, 0)

	// All three tie at 3 hours; name breaks the tie. e3 has no OT and is dropped.
	assert.Len(t, entries, 3)
	assert.Equal(t, "Ava", entries[0].EmployeeName)
	assert.True(t, entries[0].OTHours.Equal(d("3")))
	assert.True(t, entries[0].OTPay.Equal(d("90")))
	assert.Equal(t, "Ben", entries[1].EmployeeName)
	assert.Equal(t, "Dee", entries[2].EmployeeName)
}

func TestLeaderboardOrderAndLimit(t *testing.T) {
	m := NewMetricsComputer()
	from, to := day("2026-03-02"), day("2026-03-08")
	names := map[string]string{"e1": "Ava", "e2": "Ben", "e3": "Cal"}

	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e2", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p3", EmployeeID: "e3", Date: day("2026-03-03"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {OTHours: d("1"), OTPay: d("30")},
		"p2": {OTHours: d("5"), OTPay: d("150")},
		"p3": {OTHours: d("3"), OTPay: d("90")},
	}

	entries := m.Leaderboard(punches, breakdowns, names, from, to, 2)

	assert.Len(t, entries, 2)
	assert.Equal(t, "Ben", entries[0].EmployeeName)
	assert.Equal(t, "Cal", entries[1].EmployeeName)
}

func TestWeeklySeries(t *testing.T) {
	m := NewMetricsComputer()
	weekStartOf := func(t time.Time) time.Time {
		offset := (int(t.Weekday()) - 1 + 7) % 7
		return t.AddDate(0, 0, -offset)
	}
	currentWeekStart := day("2026-03-23")

	punches := []punch.Punch{
		{ID: "p1", Date: day("2026-03-24"), Status: punch.StatusApproved},
		{ID: "p2", Date: day("2026-03-17"), Status: punch.StatusApproved},
		{ID: "p3", Date: day("2026-03-18"), Status: punch.StatusApproved},
		{ID: "p4", Date: day("2026-03-03"), Status: punch.StatusApproved},
		// Before the trailing window.
		{ID: "p5", Date: day("2026-02-24"), Status: punch.StatusApproved},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {RegPay: d("100"), OTPay: d("30"), MileagePay: d("10")},
		"p2": {RegPay: d("80")},
		"p3": {RegPay: d("20"), OTPay: d("15")},
		"p4": {RegPay: d("50")},
		"p5": {RegPay: d("999")},
	}

	series := m.WeeklySeries(punches, breakdowns, weekStartOf, currentWeekStart)

	assert.Len(t, series, 3)
	assert.Equal(t, "2026-03-23", series[0].WeekStart)
	assert.True(t, series[0].RegPay.Equal(d("100")))
	assert.Equal(t, "2026-03-16", series[1].WeekStart)
	assert.True(t, series[1].RegPay.Equal(d("100")))
	assert.True(t, series[1].OTPay.Equal(d("15")))
	assert.Equal(t, "2026-03-02", series[2].WeekStart)
}

func TestRecentEntries(t *testing.T) {
	names := map[string]string{"e1": "Ava"}
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "e1", Date: day("2026-03-03"), Status: punch.StatusApproved},
		{ID: "p2", EmployeeID: "e1", Date: day("2026-03-05"), Status: punch.StatusPending},
	}
	breakdowns := map[string]payroll.Breakdown{
		"p1": {TotalPay: d("205")},
		"p2": {TotalPay: d("120")},
	}

	entries := recentEntries(punches, breakdowns, names)

	assert.Len(t, entries, 2)
	assert.Equal(t, "p2", entries[0].PunchID)
	assert.Equal(t, "2026-03-05", entries[0].Date)
	assert.Equal(t, "pending", entries[0].Status)
	assert.True(t, entries[0].TotalPay.Equal(d("120")))
	assert.Equal(t, "Ava", entries[1].EmployeeName)
}
