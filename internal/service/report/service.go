package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
	calcService  payroll.CalcService
	aggregator   Aggregator
	exporter     Exporter
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	calcService payroll.CalcService,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		calcService:  calcService,
		aggregator:   NewAggregator(),
		exporter:     NewExporter(),
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ReportServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *ReportServiceImpl) PayrollReport(ctx context.Context, req report.PayrollReportRequest) (report.PayrollReport, error) {
	from, to, err := req.Validate()
	if err != nil {
		return report.PayrollReport{}, err
	}

	summaries, err := s.periodSummaries(ctx, from, to)
	if err != nil {
		return report.PayrollReport{}, err
	}

	totalPayout := decimal.Zero
	responses := make([]report.PeriodSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		totalPayout = totalPayout.Add(summary.TotalPay)
		responses = append(responses, summary.ToResponse())
	}

	return report.PayrollReport{
		FromDate:    from.Format("2006-01-02"),
		ToDate:      to.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalPayout: totalPayout.Round(2),
		Summaries:   responses,
	}, nil
}

func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.PayrollReportRequest) (string, [][]string, error) {
	from, to, err := req.Validate()
	if err != nil {
		return "", nil, err
	}

	summaries, err := s.periodSummaries(ctx, from, to)
	if err != nil {
		return "", nil, err
	}

	return s.exporter.ExportFilename(from, to), s.exporter.ToTable(summaries), nil
}

// periodSummaries derives a breakdown per punch and folds them into one
// summary per active employee. A punch whose derivation fails is dropped
// from the totals; one malformed historical row never sinks the report.
func (s *ReportServiceImpl) periodSummaries(ctx context.Context, from, to time.Time) ([]report.PeriodSummary, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	punches, err := s.punchRepo.ListByRange(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches: %w", err)
	}

	breakdowns := make(map[string]payroll.Breakdown, len(punches))
	for _, p := range punches {
		calc, err := s.calcService.GetOrCompute(ctx, p.ID)
		if err != nil {
			continue
		}
		breakdowns[p.ID] = calc.Breakdown
	}

	return s.aggregator.Aggregate(employees, punches, breakdowns, from, to), nil
}
