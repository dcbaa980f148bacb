package payroll

import (
	"testing"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testSettings() setting.Settings {
	return setting.Defaults("company-1")
}

func workedPunch(in, out string, lunch int) punch.Punch {
	return punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimeIn:     strPtr(in),
		TimeOut:    strPtr(out),
		LunchMinutes: lunch,
	}
}

func TestCalculator_RegularAndOvertimeSplit(t *testing.T) {
	// $20/hr, threshold 8h, 08:00-18:00 with 30 min lunch => 9.5h worked:
	// 8h regular ($160) + 1.5h overtime ($45) = $205.
	calc := NewCalculator()
	p := workedPunch("08:00", "18:00", 30)

	b, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	require.NoError(t, err)

	assert.True(t, b.WorkedHours.Equal(decimal.NewFromFloat(9.5)), "worked = %s", b.WorkedHours)
	assert.True(t, b.RegHours.Equal(decimal.NewFromInt(8)), "reg = %s", b.RegHours)
	assert.True(t, b.OTHours.Equal(decimal.NewFromFloat(1.5)), "ot = %s", b.OTHours)
	assert.True(t, b.RegPay.Equal(decimal.NewFromInt(160)), "reg pay = %s", b.RegPay)
	assert.True(t, b.OTPay.Equal(decimal.NewFromInt(45)), "ot pay = %s", b.OTPay)
	assert.True(t, b.TotalPay.Equal(decimal.NewFromInt(205)), "total = %s", b.TotalPay)
}

func TestCalculator_RegPlusOTEqualsWorked(t *testing.T) {
	calc := NewCalculator()
	cases := []struct {
		in, out string
		lunch   int
	}{
		{"09:00", "17:00", 0},
		{"08:00", "20:00", 60},
		{"22:00", "06:00", 0},
		{"07:15", "15:45", 30},
		{"10:00", "10:00", 0},
	}
	for _, c := range cases {
		p := workedPunch(c.in, c.out, c.lunch)
		p.PTOHours = decimal.NewFromInt(1) // keep zero-length shifts payable
		b, err := calc.Compute(p, decimal.NewFromInt(18), testSettings())
		require.NoError(t, err, "%s-%s", c.in, c.out)

		assert.True(t, b.RegHours.Add(b.OTHours).Equal(b.WorkedHours),
			"%s-%s: reg %s + ot %s != worked %s", c.in, c.out, b.RegHours, b.OTHours, b.WorkedHours)
		assert.True(t, b.RegHours.LessThanOrEqual(testSettings().OTThresholdHours),
			"%s-%s: reg %s exceeds threshold", c.in, c.out, b.RegHours)
	}
}

func TestCalculator_OvernightShiftWraps(t *testing.T) {
	// 22:00 -> 06:00 with no lunch is exactly 8 hours, not -16.
	calc := NewCalculator()
	b, err := calc.Compute(workedPunch("22:00", "06:00", 0), decimal.NewFromInt(20), testSettings())
	require.NoError(t, err)

	assert.True(t, b.WorkedHours.Equal(decimal.NewFromInt(8)), "worked = %s", b.WorkedHours)
	assert.True(t, b.OTHours.IsZero(), "ot = %s", b.OTHours)
}

func TestCalculator_MileagePay(t *testing.T) {
	calc := NewCalculator()
	s := testSettings()
	s.MileageRate = decimal.NewFromFloat(0.67)

	p := workedPunch("09:00", "17:00", 0)
	p.Miles = decimal.NewFromInt(50)

	b, err := calc.Compute(p, decimal.NewFromInt(20), s)
	require.NoError(t, err)

	assert.True(t, b.MileagePay.Equal(decimal.NewFromFloat(33.50)), "mileage = %s", b.MileagePay)
}

func TestCalculator_HolidayMultiplier(t *testing.T) {
	calc := NewCalculator()
	p := punch.Punch{
		ID:                    "punch-h",
		EmployeeID:            "emp-1",
		Date:                  time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		HolidayWorkedHours:    decimal.NewFromInt(4),
		HolidayNonWorkedHours: decimal.NewFromInt(4),
	}

	b, err := calc.Compute(p, decimal.NewFromInt(10), testSettings())
	require.NoError(t, err)

	// Worked holiday hours pay 1.5x, non-worked pay straight time.
	assert.True(t, b.HolidayWorkedPay.Equal(decimal.NewFromInt(60)), "holiday worked pay = %s", b.HolidayWorkedPay)
	assert.True(t, b.HolidayNonWorkedPay.Equal(decimal.NewFromInt(40)), "holiday non-worked pay = %s", b.HolidayNonWorkedPay)
}

func TestCalculator_TotalIsExactComponentSum(t *testing.T) {
	calc := NewCalculator()
	p := workedPunch("06:30", "17:00", 45)
	p.Miles = decimal.NewFromFloat(12.3)
	p.PTOHours = decimal.NewFromFloat(1.5)
	p.HolidayWorkedHours = decimal.NewFromInt(2)
	p.HolidayNonWorkedHours = decimal.NewFromInt(1)
	p.MiscHours = decimal.NewFromFloat(0.25)
	p.MiscReimbursement = decimal.NewFromFloat(17.89)

	b, err := calc.Compute(p, decimal.NewFromFloat(21.75), testSettings())
	require.NoError(t, err)

	sum := b.RegPay.
		Add(b.OTPay).
		Add(b.PTOPay).
		Add(b.HolidayWorkedPay).
		Add(b.HolidayNonWorkedPay).
		Add(b.MiscHoursPay).
		Add(b.MileagePay).
		Add(b.Reimbursement)
	assert.True(t, b.TotalPay.Equal(sum), "total %s != sum %s", b.TotalPay, sum)
}

func TestCalculator_NonWorkedOnlyPunch(t *testing.T) {
	calc := NewCalculator()
	p := punch.Punch{
		ID:         "punch-pto",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		PTOHours:   decimal.NewFromInt(8),
	}

	b, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	require.NoError(t, err)

	assert.True(t, b.WorkedHours.IsZero())
	assert.True(t, b.PTOPay.Equal(decimal.NewFromInt(160)))
	assert.True(t, b.TotalPay.Equal(decimal.NewFromInt(160)))
}

func TestCalculator_NothingToPay(t *testing.T) {
	calc := NewCalculator()
	p := punch.Punch{
		ID:         "punch-empty",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Miles:      decimal.NewFromInt(10),
	}

	_, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	assert.ErrorIs(t, err, payroll.ErrNothingToPay)
}

func TestCalculator_InvalidRate(t *testing.T) {
	calc := NewCalculator()
	_, err := calc.Compute(workedPunch("09:00", "17:00", 0), decimal.Zero, testSettings())
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)

	_, err = calc.Compute(workedPunch("09:00", "17:00", 0), decimal.NewFromInt(-5), testSettings())
	assert.ErrorIs(t, err, payroll.ErrInvalidRate)
}

func TestCalculator_NegativeFieldRejected(t *testing.T) {
	calc := NewCalculator()
	p := workedPunch("09:00", "17:00", 0)
	p.Miles = decimal.NewFromInt(-1)

	_, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	assert.ErrorIs(t, err, payroll.ErrNegativeInput)
}

func TestCalculator_LunchLongerThanShiftClampsToZero(t *testing.T) {
	calc := NewCalculator()
	p := workedPunch("09:00", "09:30", 60)
	p.PTOHours = decimal.NewFromInt(4)

	b, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	require.NoError(t, err)
	assert.True(t, b.WorkedHours.IsZero(), "worked = %s", b.WorkedHours)
}

func TestCalculator_MalformedClockSurfaces(t *testing.T) {
	calc := NewCalculator()
	p := workedPunch("9am", "17:00", 0)

	_, err := calc.Compute(p, decimal.NewFromInt(20), testSettings())
	assert.ErrorIs(t, err, payroll.ErrMalformedClock)
}
