package setting

import (
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	CompanyID             string          `json:"company_id"`
	MileageRate           decimal.Decimal `json:"mileage_rate"`
	OTThresholdHours      decimal.Decimal `json:"ot_threshold"`
	HolidayRateMultiplier decimal.Decimal `json:"holiday_rate_multiplier"`
	WorkWeekStart         int             `json:"work_week_start"`
}

type UpdateSettingsRequest struct {
	MileageRate           *decimal.Decimal `json:"mileage_rate,omitempty"`
	OTThresholdHours      *decimal.Decimal `json:"ot_threshold,omitempty"`
	HolidayRateMultiplier *decimal.Decimal `json:"holiday_rate_multiplier,omitempty"`
	WorkWeekStart         *int             `json:"work_week_start,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MileageRate != nil && r.MileageRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "mileage_rate", Message: "must be non-negative"})
	}
	if r.OTThresholdHours != nil && r.OTThresholdHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ot_threshold", Message: "must be non-negative"})
	}
	if r.HolidayRateMultiplier != nil && !r.HolidayRateMultiplier.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "holiday_rate_multiplier", Message: "must be positive"})
	}
	if r.WorkWeekStart != nil && (*r.WorkWeekStart < 0 || *r.WorkWeekStart > 6) {
		errs = append(errs, validator.ValidationError{Field: "work_week_start", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
