package setting

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds per-company payroll configuration. OTThresholdHours is a
// per-punch daily rule: hours inside one punch beyond the threshold pay 1.5x.
type Settings struct {
	ID                    string
	CompanyID             string
	MileageRate           decimal.Decimal
	OTThresholdHours      decimal.Decimal
	HolidayRateMultiplier decimal.Decimal
	WorkWeekStart         int // 0=Sunday .. 6=Saturday
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// WeekStartOf returns the most recent day on or before d whose weekday is the
// company's configured work-week start. Period boundaries derive from it.
func (s Settings) WeekStartOf(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := (int(d.Weekday()) - s.WorkWeekStart + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// Defaults returns the settings used when a company has never saved any.
func Defaults(companyID string) Settings {
	return Settings{
		CompanyID:             companyID,
		MileageRate:           decimal.NewFromFloat(0.30),
		OTThresholdHours:      decimal.NewFromInt(8),
		HolidayRateMultiplier: decimal.NewFromFloat(1.5),
		WorkWeekStart:         3,
	}
}
