package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"golang.org/x/sync/errgroup"
)

const recentEntryCount = 10

type DashboardServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	calcService  payroll.CalcService
	settings     setting.SettingsService
	metrics      MetricsComputer
}

func NewDashboardService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	calcService payroll.CalcService,
	settings setting.SettingsService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		calcService:  calcService,
		settings:     settings,
		metrics:      NewMetricsComputer(),
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *DashboardServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id not found in claims")
	}
	return companyID, nil
}

// GetDashboard builds trend metrics, the overtime leaderboard, the trailing
// weekly series and the recent-entry feed in one pass over the trailing
// four work weeks.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, asOf time.Time) (*dashboard.DashboardResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}

	thisStart := settings.WeekStartOf(asOf)
	thisEnd := thisStart.AddDate(0, 0, 6)
	lastStart := thisStart.AddDate(0, 0, -7)
	lastEnd := thisStart.AddDate(0, 0, -1)
	rangeStart := thisStart.AddDate(0, 0, -7*(trailingWeeks-1))

	var (
		employees []employee.Employee
		punches   []punch.Punch
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		punches, err = s.punchRepo.ListByRange(gCtx, companyID, rangeStart, thisEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}
	breakdowns := s.deriveBreakdowns(ctx, punches)

	thisPeriod := s.metrics.PeriodTotals(punches, breakdowns, thisStart, thisEnd)
	lastPeriod := s.metrics.PeriodTotals(punches, breakdowns, lastStart, lastEnd)

	return &dashboard.DashboardResponse{
		ThisPeriod: thisPeriod,
		LastPeriod: lastPeriod,
		Trends: dashboard.Trends{
			TotalHoursPct: s.metrics.TrendPct(thisPeriod.TotalHours, lastPeriod.TotalHours),
			OTHoursPct:    s.metrics.TrendPct(thisPeriod.OTHours, lastPeriod.OTHours),
			TotalPayPct:   s.metrics.TrendPct(thisPeriod.TotalPay, lastPeriod.TotalPay),
		},
		Leaderboard:   s.metrics.Leaderboard(punches, breakdowns, names, thisStart, thisEnd, dashboard.DefaultLeaderboardSize),
		WeeklySeries:  s.metrics.WeeklySeries(punches, breakdowns, settings.WeekStartOf, thisStart),
		RecentEntries: recentEntries(punches, breakdowns, names),
	}, nil
}

func (s *DashboardServiceImpl) GetOvertimeLeaderboard(ctx context.Context, asOf time.Time, limit int) ([]dashboard.LeaderboardEntry, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}
	thisStart := settings.WeekStartOf(asOf)
	thisEnd := thisStart.AddDate(0, 0, 6)

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	punches, err := s.punchRepo.ListByRange(ctx, companyID, thisStart, thisEnd)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}
	breakdowns := s.deriveBreakdowns(ctx, punches)

	return s.metrics.Leaderboard(punches, breakdowns, names, thisStart, thisEnd, limit), nil
}

// deriveBreakdowns resolves a breakdown per punch, skipping punches that
// fail to derive so one bad row never empties the dashboard.
func (s *DashboardServiceImpl) deriveBreakdowns(ctx context.Context, punches []punch.Punch) map[string]payroll.Breakdown {
	breakdowns := make(map[string]payroll.Breakdown, len(punches))
	for _, p := range punches {
		calc, err := s.calcService.GetOrCompute(ctx, p.ID)
		if err != nil {
			continue
		}
		breakdowns[p.ID] = calc.Breakdown
	}
	return breakdowns
}

func recentEntries(punches []punch.Punch, breakdowns map[string]payroll.Breakdown, names map[string]string) []dashboard.RecentEntry {
	sorted := make([]punch.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	entries := make([]dashboard.RecentEntry, 0, recentEntryCount)
	for _, p := range sorted {
		if len(entries) == recentEntryCount {
			break
		}
		entry := dashboard.RecentEntry{
			PunchID:      p.ID,
			EmployeeName: names[p.EmployeeID],
			Date:         p.Date.Format("2006-01-02"),
			Status:       string(p.Status),
		}
		if b, ok := breakdowns[p.ID]; ok {
			entry.TotalPay = b.TotalPay.Round(2)
		}
		entries = append(entries, entry)
	}
	return entries
}
