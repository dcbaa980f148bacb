package punch

import (
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PunchResponse struct {
	ID                    string          `json:"id"`
	EmployeeID            string          `json:"employee_id"`
	EmployeeName          *string         `json:"employee_name,omitempty"`
	Date                  string          `json:"date"`
	TimeIn                *string         `json:"time_in,omitempty"`
	TimeOut               *string         `json:"time_out,omitempty"`
	LunchMinutes          int             `json:"lunch_minutes"`
	Miles                 decimal.Decimal `json:"miles"`
	PTOHours              decimal.Decimal `json:"pto_hours"`
	HolidayWorkedHours    decimal.Decimal `json:"holiday_worked_hours"`
	HolidayNonWorkedHours decimal.Decimal `json:"holiday_non_worked_hours"`
	MiscHours             decimal.Decimal `json:"misc_hours"`
	MiscReimbursement     decimal.Decimal `json:"misc_reimbursement"`
	Status                string          `json:"status"`
}

type CreatePunchRequest struct {
	EmployeeID            string          `json:"employee_id"`
	Date                  string          `json:"date"`
	TimeIn                *string         `json:"time_in,omitempty"`
	TimeOut               *string         `json:"time_out,omitempty"`
	LunchMinutes          int             `json:"lunch_minutes"`
	Miles                 decimal.Decimal `json:"miles"`
	PTOHours              decimal.Decimal `json:"pto_hours"`
	HolidayWorkedHours    decimal.Decimal `json:"holiday_worked_hours"`
	HolidayNonWorkedHours decimal.Decimal `json:"holiday_non_worked_hours"`
	MiscHours             decimal.Decimal `json:"misc_hours"`
	MiscReimbursement     decimal.Decimal `json:"misc_reimbursement"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.TimeIn != nil && !validator.IsValidClock(*r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be HH:MM"})
	}
	if r.TimeOut != nil && !validator.IsValidClock(*r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be HH:MM"})
	}
	if (r.TimeIn == nil) != (r.TimeOut == nil) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "time_in and time_out must be provided together"})
	}
	if r.LunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "lunch_minutes", Message: "must be non-negative"})
	}
	for field, v := range map[string]decimal.Decimal{
		"miles":                    r.Miles,
		"pto_hours":                r.PTOHours,
		"holiday_worked_hours":     r.HolidayWorkedHours,
		"holiday_non_worked_hours": r.HolidayNonWorkedHours,
		"misc_hours":               r.MiscHours,
		"misc_reimbursement":       r.MiscReimbursement,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	// A punch with no clock times must still represent a payable event.
	if r.TimeIn == nil && r.TimeOut == nil {
		if r.PTOHours.IsZero() && r.HolidayWorkedHours.IsZero() && r.HolidayNonWorkedHours.IsZero() && r.MiscHours.IsZero() {
			errs = append(errs, validator.ValidationError{Field: "time_in", Message: "punch without clock times requires PTO, holiday, or misc hours"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreatePunchRequest) ToEntity(companyID string) Punch {
	date, _ := time.Parse("2006-01-02", r.Date)
	return Punch{
		EmployeeID:            r.EmployeeID,
		CompanyID:             companyID,
		Date:                  date,
		TimeIn:                r.TimeIn,
		TimeOut:               r.TimeOut,
		LunchMinutes:          r.LunchMinutes,
		Miles:                 r.Miles,
		PTOHours:              r.PTOHours,
		HolidayWorkedHours:    r.HolidayWorkedHours,
		HolidayNonWorkedHours: r.HolidayNonWorkedHours,
		MiscHours:             r.MiscHours,
		MiscReimbursement:     r.MiscReimbursement,
		Status:                StatusPending,
	}
}

type UpdatePunchRequest struct {
	ID                    string
	Date                  *string          `json:"date,omitempty"`
	TimeIn                *string          `json:"time_in,omitempty"`
	TimeOut               *string          `json:"time_out,omitempty"`
	LunchMinutes          *int             `json:"lunch_minutes,omitempty"`
	Miles                 *decimal.Decimal `json:"miles,omitempty"`
	PTOHours              *decimal.Decimal `json:"pto_hours,omitempty"`
	HolidayWorkedHours    *decimal.Decimal `json:"holiday_worked_hours,omitempty"`
	HolidayNonWorkedHours *decimal.Decimal `json:"holiday_non_worked_hours,omitempty"`
	MiscHours             *decimal.Decimal `json:"misc_hours,omitempty"`
	MiscReimbursement     *decimal.Decimal `json:"misc_reimbursement,omitempty"`
	Status                *string          `json:"status,omitempty"`
}

func (r *UpdatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.TimeIn != nil && *r.TimeIn != "" && !validator.IsValidClock(*r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be HH:MM"})
	}
	if r.TimeOut != nil && *r.TimeOut != "" && !validator.IsValidClock(*r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be HH:MM"})
	}
	if r.LunchMinutes != nil && *r.LunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "lunch_minutes", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, approved, or rejected"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"miles":                    r.Miles,
		"pto_hours":                r.PTOHours,
		"holiday_worked_hours":     r.HolidayWorkedHours,
		"holiday_non_worked_hours": r.HolidayNonWorkedHours,
		"misc_hours":               r.MiscHours,
		"misc_reimbursement":       r.MiscReimbursement,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchReplaceRequest replaces every punch for one employee inside
// [from, to] with the supplied set, atomically.
type BatchReplaceRequest struct {
	EmployeeID string               `json:"employee_id"`
	FromDate   string               `json:"from_date"`
	ToDate     string               `json:"to_date"`
	Punches    []CreatePunchRequest `json:"punches"`
}

func (r *BatchReplaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "must be YYYY-MM-DD"})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must be YYYY-MM-DD"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must not precede from_date"})
	}

	for i := range r.Punches {
		p := &r.Punches[i]
		if p.EmployeeID == "" {
			p.EmployeeID = r.EmployeeID
		}
		if err := p.Validate(); err != nil {
			if vErrs, ok := err.(validator.ValidationErrors); ok {
				for _, e := range vErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "punches[" + validator.Itoa(i) + "]." + e.Field,
						Message: e.Message,
					})
				}
			}
			continue
		}
		if p.EmployeeID != r.EmployeeID {
			errs = append(errs, validator.ValidationError{Field: "punches[" + validator.Itoa(i) + "].employee_id", Message: "must match batch employee_id"})
		}
		if fromOK && toOK {
			d, _ := time.Parse("2006-01-02", p.Date)
			if d.Before(from) || d.After(to) {
				errs = append(errs, validator.ValidationError{Field: "punches[" + validator.Itoa(i) + "].date", Message: "outside the replacement range"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchFilter struct {
	EmployeeID *string
	FromDate   *time.Time
	ToDate     *time.Time
	Status     *Status
	Search     string
	Page       int
	Limit      int
}

type ListPunchResponse struct {
	Data       []PunchResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
