package dashboard

import "github.com/shopspring/decimal"

// PeriodTotals is one window's aggregate pay.
type PeriodTotals struct {
	FromDate   string          `json:"from_date"`
	ToDate     string          `json:"to_date"`
	TotalHours decimal.Decimal `json:"total_hours"`
	OTHours    decimal.Decimal `json:"ot_hours"`
	RegPay     decimal.Decimal `json:"reg_pay"`
	OTPay      decimal.Decimal `json:"ot_pay"`
	MileagePay decimal.Decimal `json:"mileage_pay"`
	TotalPay   decimal.Decimal `json:"total_pay"`
}

// Trends are week-over-week percentage changes. A zero previous-period
// denominator yields exactly 0, by policy, never an infinity or NaN.
type Trends struct {
	TotalHoursPct decimal.Decimal `json:"total_hours_pct"`
	OTHoursPct    decimal.Decimal `json:"ot_hours_pct"`
	TotalPayPct   decimal.Decimal `json:"total_pay_pct"`
}

type LeaderboardEntry struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	OTHours      decimal.Decimal `json:"ot_hours"`
	OTPay        decimal.Decimal `json:"ot_pay"`
}

type WeekBucket struct {
	WeekStart  string          `json:"week_start"`
	RegPay     decimal.Decimal `json:"reg_pay"`
	OTPay      decimal.Decimal `json:"ot_pay"`
	MileagePay decimal.Decimal `json:"mileage_pay"`
}

type RecentEntry struct {
	PunchID      string          `json:"punch_id"`
	EmployeeName string          `json:"employee_name"`
	Date         string          `json:"date"`
	TotalPay     decimal.Decimal `json:"total_pay"`
	Status       string          `json:"status"`
}

type DashboardResponse struct {
	ThisPeriod    PeriodTotals       `json:"this_period"`
	LastPeriod    PeriodTotals       `json:"last_period"`
	Trends        Trends             `json:"trends"`
	Leaderboard   []LeaderboardEntry `json:"overtime_leaderboard"`
	WeeklySeries  []WeekBucket       `json:"weekly_series"`
	RecentEntries []RecentEntry      `json:"recent_entries"`
}
