package setting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name      string
		weekStart int
		date      string
		want      string
	}{
		// 2026-03-25 is a Wednesday.
		{"on the start day itself", 3, "2026-03-25", "2026-03-25"},
		{"day after start", 3, "2026-03-26", "2026-03-25"},
		{"day before start wraps a week back", 3, "2026-03-24", "2026-03-18"},
		{"sunday start", 0, "2026-03-25", "2026-03-22"},
		{"monday start", 1, "2026-03-25", "2026-03-23"},
		{"saturday start", 6, "2026-03-25", "2026-03-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{WorkWeekStart: tt.weekStart}
			got := s.WeekStartOf(day(tt.date))
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestWeekStartOfTruncatesTime(t *testing.T) {
	s := Settings{WorkWeekStart: 3}
	at := time.Date(2026, 3, 25, 17, 42, 9, 0, time.UTC)

	got := s.WeekStartOf(at)

	assert.Equal(t, time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestDefaults(t *testing.T) {
	s := Defaults("company-1")

	assert.Equal(t, "company-1", s.CompanyID)
	assert.True(t, s.MileageRate.Equal(decimal.NewFromFloat(0.30)))
	assert.True(t, s.OTThresholdHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, s.HolidayRateMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.Equal(t, 3, s.WorkWeekStart)
}

func TestUpdateSettingsRequestValidate(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	zero := decimal.Zero
	bad := 7

	req := UpdateSettingsRequest{
		MileageRate:           &neg,
		HolidayRateMultiplier: &zero,
		WorkWeekStart:         &bad,
	}

	err := req.Validate()
	assert.Error(t, err)

	ok := UpdateSettingsRequest{}
	assert.NoError(t, ok.Validate())
}
