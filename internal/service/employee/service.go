package employee

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/audit"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/repository/postgresql"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	calcRepo     payroll.CalculationRepository
	auditLogger  audit.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	calcRepo payroll.CalculationRepository,
	auditLogger audit.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:  companyID,
		Name:       req.Name,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
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

	employees, total, err := s.employeeRepo.List(ctx, companyID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, toResponse(emp))
	}
	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update edits the employee and, when the hourly rate changes, drops every
// cached breakdown for them since each one priced the old rate.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	before, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	rateChanged := req.HourlyRate != nil && !req.HourlyRate.Equal(before.HourlyRate)

	var updated employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.employeeRepo.Update(txCtx, req.ID, companyID, req)
		if err != nil {
			return err
		}
		if rateChanged {
			if err := s.calcRepo.DeleteByEmployeeID(txCtx, req.ID, companyID); err != nil {
				return err
			}
		}
		return s.auditLogger.Record(txCtx, employeeChanges(before, updated, companyID, userID))
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// Deactivate soft-retires the employee. Their punches and history stay.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employeeRepo.Deactivate(txCtx, id, companyID); err != nil {
			return err
		}
		return s.auditLogger.Record(txCtx, []audit.Entry{{
			CompanyID: companyID,
			TableName: "employees",
			RowID:     id,
			Field:     "is_active",
			OldValue:  "true",
			NewValue:  "false",
			Actor:     userID,
		}})
	})
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		HourlyRate: emp.HourlyRate,
		IsActive:   emp.IsActive,
	}
}

func employeeChanges(before, after employee.Employee, companyID, actor string) []audit.Entry {
	var entries []audit.Entry
	add := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		entries = append(entries, audit.Entry{
			CompanyID: companyID,
			TableName: "employees",
			RowID:     after.ID,
			Field:     field,
			OldValue:  oldVal,
			NewValue:  newVal,
			Actor:     actor,
		})
	}

	add("name", before.Name, after.Name)
	add("hourly_rate", before.HourlyRate.String(), after.HourlyRate.String())
	add("is_active", fmt.Sprintf("%t", before.IsActive), fmt.Sprintf("%t", after.IsActive))

	return entries
}
