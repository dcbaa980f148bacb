package payroll

import (
	"fmt"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	otMultiplier   = decimal.NewFromFloat(1.5)
	minutesPerHour = decimal.NewFromInt(60)
)

// Calculator derives the pay breakdown for a single punch. It is a pure
// function over already-resolved inputs; it never touches storage.
type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

// Compute splits worked time at the per-punch overtime threshold and prices
// every category. A shift whose clock-out precedes its clock-in is treated as
// crossing midnight. A punch with no clock times pays only the non-worked
// categories, and must carry at least one of them.
func (Calculator) Compute(p punch.Punch, rate decimal.Decimal, s setting.Settings) (payroll.Breakdown, error) {
	if !rate.IsPositive() {
		return payroll.Breakdown{}, fmt.Errorf("employee %s: %w", p.EmployeeID, payroll.ErrInvalidRate)
	}
	for field, v := range map[string]decimal.Decimal{
		"miles":                    p.Miles,
		"pto_hours":                p.PTOHours,
		"holiday_worked_hours":     p.HolidayWorkedHours,
		"holiday_non_worked_hours": p.HolidayNonWorkedHours,
		"misc_hours":               p.MiscHours,
		"misc_reimbursement":       p.MiscReimbursement,
	} {
		if v.IsNegative() {
			return payroll.Breakdown{}, fmt.Errorf("%s: %w", field, payroll.ErrNegativeInput)
		}
	}
	if p.LunchMinutes < 0 {
		return payroll.Breakdown{}, fmt.Errorf("lunch_minutes: %w", payroll.ErrNegativeInput)
	}

	workedMinutes, err := workedMinutes(p)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	if workedMinutes == 0 && p.TimeIn == nil && p.TimeOut == nil &&
		p.PTOHours.IsZero() && p.HolidayWorkedHours.IsZero() &&
		p.HolidayNonWorkedHours.IsZero() && p.MiscHours.IsZero() {
		return payroll.Breakdown{}, fmt.Errorf("punch %s: %w", p.ID, payroll.ErrNothingToPay)
	}

	worked := decimal.NewFromInt(int64(workedMinutes)).Div(minutesPerHour)
	reg := decimal.Min(worked, s.OTThresholdHours)
	ot := worked.Sub(reg)

	b := payroll.Breakdown{
		WorkedHours:           worked,
		RegHours:              reg,
		OTHours:               ot,
		PTOHours:              p.PTOHours,
		HolidayWorkedHours:    p.HolidayWorkedHours,
		HolidayNonWorkedHours: p.HolidayNonWorkedHours,
		MiscHours:             p.MiscHours,
		Miles:                 p.Miles,

		RegPay:              reg.Mul(rate),
		OTPay:               ot.Mul(rate).Mul(otMultiplier),
		PTOPay:              p.PTOHours.Mul(rate),
		HolidayWorkedPay:    p.HolidayWorkedHours.Mul(rate).Mul(s.HolidayRateMultiplier),
		HolidayNonWorkedPay: p.HolidayNonWorkedHours.Mul(rate),
		MiscHoursPay:        p.MiscHours.Mul(rate),
		MileagePay:          p.Miles.Mul(s.MileageRate),
		Reimbursement:       p.MiscReimbursement,
	}
	b.TotalPay = b.RegPay.
		Add(b.OTPay).
		Add(b.PTOPay).
		Add(b.HolidayWorkedPay).
		Add(b.HolidayNonWorkedPay).
		Add(b.MiscHoursPay).
		Add(b.MileagePay).
		Add(b.Reimbursement)

	return b, nil
}

// workedMinutes returns the paid clock time for a punch. Missing clock times
// mean zero worked minutes; a lunch longer than the shift clamps to zero so
// historical bad rows stay report-tolerant.
func workedMinutes(p punch.Punch) (int, error) {
	if p.TimeIn == nil || p.TimeOut == nil {
		return 0, nil
	}
	if !validator.IsValidClock(*p.TimeIn) {
		return 0, fmt.Errorf("time_in %q: %w", *p.TimeIn, payroll.ErrMalformedClock)
	}
	if !validator.IsValidClock(*p.TimeOut) {
		return 0, fmt.Errorf("time_out %q: %w", *p.TimeOut, payroll.ErrMalformedClock)
	}

	span := validator.ClockMinutes(*p.TimeOut) - validator.ClockMinutes(*p.TimeIn)
	if span < 0 {
		// clock-out on the following day
		span += 24 * 60
	}
	span -= p.LunchMinutes
	if span < 0 {
		span = 0
	}
	return span, nil
}
