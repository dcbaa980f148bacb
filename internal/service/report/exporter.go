package report

import (
	"fmt"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/report"
)

// ExportColumns is the fixed export column order. Consumers depend on
// position, not name; never reorder.
var ExportColumns = []string{
	"Employee",
	"Total Hours",
	"PTO Hours",
	"Holiday Worked Hours",
	"Holiday Non-Worked Hours",
	"OT Hours",
	"Miles",
	"Reimbursements",
	"Regular Pay",
	"OT Pay",
	"PTO Pay",
	"Holiday Pay",
	"Mileage Pay",
	"Total Pay",
}

type Exporter struct{}

func NewExporter() Exporter {
	return Exporter{}
}

// ToTable renders summaries as a header row plus one row per employee.
// Export precision is two decimals for hours and currency alike.
func (Exporter) ToTable(summaries []report.PeriodSummary) [][]string {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, ExportColumns)
	for _, s := range summaries {
		rows = append(rows, []string{
			s.EmployeeName,
			s.TotalHours.StringFixed(2),
			s.PTOHours.StringFixed(2),
			s.HolidayWorkedHours.StringFixed(2),
			s.HolidayNonWorkedHours.StringFixed(2),
			s.OTHours.StringFixed(2),
			s.Miles.StringFixed(2),
			s.Reimbursement.StringFixed(2),
			s.RegPay.StringFixed(2),
			s.OTPay.StringFixed(2),
			s.PTOPay.StringFixed(2),
			s.HolidayPay.StringFixed(2),
			s.MileagePay.StringFixed(2),
			s.TotalPay.StringFixed(2),
		})
	}
	return rows
}

// ExportFilename encodes the covered range into the attachment name.
func (Exporter) ExportFilename(from, to time.Time) string {
	return fmt.Sprintf("payroll-%s-to-%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
}
