package report

import (
	"testing"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestToTableColumnOrder(t *testing.T) {
	exp := NewExporter()

	rows := exp.ToTable([]report.PeriodSummary{
		{
			EmployeeName:          "Ava",
			TotalHours:            d("17.5"),
			PTOHours:              d("0"),
			HolidayWorkedHours:    d("0"),
			HolidayNonWorkedHours: d("0"),
			OTHours:               d("1.5"),
			Miles:                 d("50"),
			Reimbursement:         d("12.345"),
			RegPay:                d("160"),
			OTPay:                 d("45"),
			PTOPay:                d("0"),
			HolidayPay:            d("0"),
			MileagePay:            d("33.5"),
			TotalPay:              d("250.845"),
		},
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, ExportColumns, rows[0])
	assert.Equal(t, []string{
		"Ava", "17.50", "0.00", "0.00", "0.00", "1.50", "50.00",
		"12.35", "160.00", "45.00", "0.00", "0.00", "33.50", "250.85",
	}, rows[1])
}

func TestToTableEmptySummaries(t *testing.T) {
	exp := NewExporter()

	rows := exp.ToTable(nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, ExportColumns, rows[0])
}

func TestExportFilename(t *testing.T) {
	exp := NewExporter()

	name := exp.ExportFilename(day("2026-03-02"), day("2026-03-08"))

	assert.Equal(t, "payroll-2026-03-02-to-2026-03-08.csv", name)
}
