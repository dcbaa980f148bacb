package punch

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Punch is one timesheet record for one employee on one date. TimeIn and
// TimeOut are wall-clock "HH:MM" values; a punch with neither must carry at
// least one non-worked hours category to represent a payable event.
type Punch struct {
	ID                    string
	EmployeeID            string
	CompanyID             string
	Date                  time.Time
	TimeIn                *string
	TimeOut               *string
	LunchMinutes          int
	Miles                 decimal.Decimal
	PTOHours              decimal.Decimal
	HolidayWorkedHours    decimal.Decimal
	HolidayNonWorkedHours decimal.Decimal
	MiscHours             decimal.Decimal
	MiscReimbursement     decimal.Decimal
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	EmployeeName *string
}
