package dashboard

import (
	"sort"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
)

const trailingWeeks = 4

var hundred = decimal.NewFromInt(100)

// MetricsComputer builds week-over-week trend views from already-derived
// breakdowns. Pure: no storage, no clock reads.
type MetricsComputer struct{}

func NewMetricsComputer() MetricsComputer {
	return MetricsComputer{}
}

// TrendPct is ((current - previous) / previous) * 100. A zero previous
// period yields exactly 0 by policy: a report that divides by zero is worse
// than one that understates a brand-new trend.
func (MetricsComputer) TrendPct(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}

// PeriodTotals sums breakdowns for punches inside [from, to], rejected
// punches and underivable punches excluded.
func (MetricsComputer) PeriodTotals(
	punches []punch.Punch,
	breakdowns map[string]payroll.Breakdown,
	from, to time.Time,
) dashboard.PeriodTotals {
	totals := dashboard.PeriodTotals{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}
	for _, p := range punches {
		if p.Status == punch.StatusRejected || p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		b, ok := breakdowns[p.ID]
		if !ok {
			continue
		}
		totals.TotalHours = totals.TotalHours.Add(b.WorkedHours).
			Add(b.PTOHours).
			Add(b.HolidayWorkedHours).
			Add(b.HolidayNonWorkedHours).
			Add(b.MiscHours)
		totals.OTHours = totals.OTHours.Add(b.OTHours)
		totals.RegPay = totals.RegPay.Add(b.RegPay)
		totals.OTPay = totals.OTPay.Add(b.OTPay)
		totals.MileagePay = totals.MileagePay.Add(b.MileagePay)
		totals.TotalPay = totals.TotalPay.Add(b.TotalPay)
	}
	return totals
}

// Leaderboard ranks employees by overtime inside [from, to]. Employees with
// zero OT are excluded; ties sort by name so the order is stable.
func (MetricsComputer) Leaderboard(
	punches []punch.Punch,
	breakdowns map[string]payroll.Breakdown,
	names map[string]string,
	from, to time.Time,
	limit int,
) []dashboard.LeaderboardEntry {
	if limit <= 0 {
		limit = dashboard.DefaultLeaderboardSize
	}

	byEmployee := make(map[string]*dashboard.LeaderboardEntry)
	for _, p := range punches {
		if p.Status == punch.StatusRejected || p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		b, ok := breakdowns[p.ID]
		if !ok || b.OTHours.IsZero() {
			continue
		}
		entry, ok := byEmployee[p.EmployeeID]
		if !ok {
			entry = &dashboard.LeaderboardEntry{
				EmployeeID:   p.EmployeeID,
				EmployeeName: names[p.EmployeeID],
			}
			byEmployee[p.EmployeeID] = entry
		}
		entry.OTHours = entry.OTHours.Add(b.OTHours)
		entry.OTPay = entry.OTPay.Add(b.OTPay)
	}

	entries := make([]dashboard.LeaderboardEntry, 0, len(byEmployee))
	for _, entry := range byEmployee {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].OTHours.Equal(entries[j].OTHours) {
			return entries[i].OTHours.GreaterThan(entries[j].OTHours)
		}
		return entries[i].EmployeeName < entries[j].EmployeeName
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// WeeklySeries buckets punches by week-start date over the trailing four
// work weeks ending at currentWeekStart, most recent week first.
func (MetricsComputer) WeeklySeries(
	punches []punch.Punch,
	breakdowns map[string]payroll.Breakdown,
	weekStartOf func(time.Time) time.Time,
	currentWeekStart time.Time,
) []dashboard.WeekBucket {
	rangeStart := currentWeekStart.AddDate(0, 0, -7*(trailingWeeks-1))
	rangeEnd := currentWeekStart.AddDate(0, 0, 6)

	buckets := make(map[string]*dashboard.WeekBucket)
	for _, p := range punches {
		if p.Status == punch.StatusRejected || p.Date.Before(rangeStart) || p.Date.After(rangeEnd) {
			continue
		}
		b, ok := breakdowns[p.ID]
		if !ok {
			continue
		}
		weekStart := weekStartOf(p.Date).Format("2006-01-02")
		bucket, ok := buckets[weekStart]
		if !ok {
			bucket = &dashboard.WeekBucket{WeekStart: weekStart}
			buckets[weekStart] = bucket
		}
		bucket.RegPay = bucket.RegPay.Add(b.RegPay)
		bucket.OTPay = bucket.OTPay.Add(b.OTPay)
		bucket.MileagePay = bucket.MileagePay.Add(b.MileagePay)
	}

	series := make([]dashboard.WeekBucket, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].WeekStart > series[j].WeekStart
	})

	if len(series) > trailingWeeks {
		series = series[:trailingWeeks]
	}
	return series
}
