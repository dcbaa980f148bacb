package report

import "context"

type ReportService interface {
	// PayrollReport aggregates derived pay for every active employee in range,
	// zero-entry employees included.
	PayrollReport(ctx context.Context, req PayrollReportRequest) (PayrollReport, error)

	// ExportCSV renders the same report as fixed-column CSV rows plus the
	// attachment filename.
	ExportCSV(ctx context.Context, req PayrollReportRequest) (filename string, rows [][]string, err error)
}
