package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/audit"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/repository/postgresql"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

type PunchServiceImpl struct {
	db           *database.DB
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	calcRepo     payroll.CalculationRepository
	auditLogger  audit.Logger
}

func NewPunchService(
	db *database.DB,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	calcRepo payroll.CalculationRepository,
	auditLogger audit.Logger,
) punch.PunchService {
	return &PunchServiceImpl{
		db:           db,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		calcRepo:     calcRepo,
		auditLogger:  auditLogger,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *PunchServiceImpl) Create(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return punch.PunchResponse{}, err
	}

	created, err := s.punchRepo.Create(ctx, req.ToEntity(companyID))
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return toResponse(created), nil
}

func (s *PunchServiceImpl) GetByID(ctx context.Context, id string) (punch.PunchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	p, err := s.punchRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return toResponse(p), nil
}

func (s *PunchServiceImpl) List(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	punches, total, err := s.punchRepo.List(ctx, companyID, filter)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	data := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		data = append(data, toResponse(p))
	}
	return punch.ListPunchResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update applies a partial edit, records field-level audit entries, and drops
// the punch's cached breakdown so the next read recomputes it.
func (s *PunchServiceImpl) Update(ctx context.Context, req punch.UpdatePunchRequest) (punch.PunchResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	before, err := s.punchRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	var updated punch.Punch
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.punchRepo.Update(txCtx, req.ID, companyID, req)
		if err != nil {
			return err
		}
		if err := s.calcRepo.DeleteByPunchID(txCtx, req.ID, companyID); err != nil {
			return err
		}
		return s.auditLogger.Record(txCtx, punchChanges(before, updated, companyID, userID))
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete removes the punch and its cached breakdown together.
func (s *PunchServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.punchRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.calcRepo.DeleteByPunchID(txCtx, id, companyID); err != nil {
			return err
		}
		return s.punchRepo.Delete(txCtx, id, companyID)
	})
}

// BatchReplace swaps every punch for one employee inside [from, to] with the
// supplied set. All-or-nothing: any failure rolls the whole range back.
func (s *PunchServiceImpl) BatchReplace(ctx context.Context, req punch.BatchReplaceRequest) ([]punch.PunchResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(req.Punches) == 0 {
		return nil, punch.ErrEmptyBatch
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	var responses []punch.PunchResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Breakdowns are disposable, so dropping the employee's whole cache
		// is safe and simpler than matching rows to the replaced range.
		if err := s.calcRepo.DeleteByEmployeeID(txCtx, req.EmployeeID, companyID); err != nil {
			return err
		}
		if err := s.punchRepo.DeleteByEmployeeAndRange(txCtx, req.EmployeeID, companyID, from, to); err != nil {
			return err
		}

		responses = make([]punch.PunchResponse, 0, len(req.Punches))
		for i := range req.Punches {
			created, err := s.punchRepo.Create(txCtx, req.Punches[i].ToEntity(companyID))
			if err != nil {
				return err
			}
			responses = append(responses, toResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func toResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:                    p.ID,
		EmployeeID:            p.EmployeeID,
		EmployeeName:          p.EmployeeName,
		Date:                  p.Date.Format("2006-01-02"),
		TimeIn:                p.TimeIn,
		TimeOut:               p.TimeOut,
		LunchMinutes:          p.LunchMinutes,
		Miles:                 p.Miles,
		PTOHours:              p.PTOHours,
		HolidayWorkedHours:    p.HolidayWorkedHours,
		HolidayNonWorkedHours: p.HolidayNonWorkedHours,
		MiscHours:             p.MiscHours,
		MiscReimbursement:     p.MiscReimbursement,
		Status:                string(p.Status),
	}
}

// punchChanges diffs two punch rows into audit entries, one per changed field.
func punchChanges(before, after punch.Punch, companyID, actor string) []audit.Entry {
	var entries []audit.Entry
	add := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		entries = append(entries, audit.Entry{
			CompanyID: companyID,
			TableName: "punches",
			RowID:     after.ID,
			Field:     field,
			OldValue:  oldVal,
			NewValue:  newVal,
			Actor:     actor,
		})
	}

	clock := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	add("date", before.Date.Format("2006-01-02"), after.Date.Format("2006-01-02"))
	add("time_in", clock(before.TimeIn), clock(after.TimeIn))
	add("time_out", clock(before.TimeOut), clock(after.TimeOut))
	add("lunch_minutes", fmt.Sprintf("%d", before.LunchMinutes), fmt.Sprintf("%d", after.LunchMinutes))
	add("miles", before.Miles.String(), after.Miles.String())
	add("pto_hours", before.PTOHours.String(), after.PTOHours.String())
	add("holiday_worked_hours", before.HolidayWorkedHours.String(), after.HolidayWorkedHours.String())
	add("holiday_non_worked_hours", before.HolidayNonWorkedHours.String(), after.HolidayNonWorkedHours.String())
	add("misc_hours", before.MiscHours.String(), after.MiscHours.String())
	add("misc_reimbursement", before.MiscReimbursement.String(), after.MiscReimbursement.String())
	add("status", string(before.Status), string(after.Status))

	return entries
}
