package setting

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/audit"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/repository/postgresql"
)

type SettingsServiceImpl struct {
	db          *database.DB
	settingRepo setting.SettingsRepository
	calcRepo    payroll.CalculationRepository
	auditLogger audit.Logger
}

func NewSettingsService(
	db *database.DB,
	settingRepo setting.SettingsRepository,
	calcRepo payroll.CalculationRepository,
	auditLogger audit.Logger,
) setting.SettingsService {
	return &SettingsServiceImpl{
		db:          db,
		settingRepo: settingRepo,
		calcRepo:    calcRepo,
		auditLogger: auditLogger,
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

func (s *SettingsServiceImpl) Get(ctx context.Context) (setting.SettingsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	resolved, err := s.Resolve(ctx, companyID)
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	return toResponse(resolved), nil
}

// Resolve returns the stored row, or the defaults when the company has never
// saved settings. Callers always get a usable value.
func (s *SettingsServiceImpl) Resolve(ctx context.Context, companyID string) (setting.Settings, error) {
	stored, err := s.settingRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, setting.ErrSettingsNotFound) {
			return setting.Defaults(companyID), nil
		}
		return setting.Settings{}, err
	}
	return stored, nil
}

// Update persists the new settings and drops every cached breakdown for the
// company, since each stored breakdown priced the old rates.
func (s *SettingsServiceImpl) Update(ctx context.Context, req setting.UpdateSettingsRequest) (setting.SettingsResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return setting.SettingsResponse{}, err
	}

	before, err := s.Resolve(ctx, companyID)
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	next := before
	if req.MileageRate != nil {
		next.MileageRate = *req.MileageRate
	}
	if req.OTThresholdHours != nil {
		next.OTThresholdHours = *req.OTThresholdHours
	}
	if req.HolidayRateMultiplier != nil {
		next.HolidayRateMultiplier = *req.HolidayRateMultiplier
	}
	if req.WorkWeekStart != nil {
		next.WorkWeekStart = *req.WorkWeekStart
	}

	var saved setting.Settings
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		saved, err = s.settingRepo.Upsert(txCtx, next)
		if err != nil {
			return err
		}
		if err := s.calcRepo.DeleteByCompanyID(txCtx, companyID); err != nil {
			return err
		}
		return s.auditLogger.Record(txCtx, settingChanges(before, saved, companyID, userID))
	})
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	return toResponse(saved), nil
}

func toResponse(s setting.Settings) setting.SettingsResponse {
	return setting.SettingsResponse{
		CompanyID:             s.CompanyID,
		MileageRate:           s.MileageRate,
		OTThresholdHours:      s.OTThresholdHours,
		HolidayRateMultiplier: s.HolidayRateMultiplier,
		WorkWeekStart:         s.WorkWeekStart,
	}
}

func settingChanges(before, after setting.Settings, companyID, actor string) []audit.Entry {
	var entries []audit.Entry
	add := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		entries = append(entries, audit.Entry{
			CompanyID: companyID,
			TableName: "company_settings",
			RowID:     after.ID,
			Field:     field,
			OldValue:  oldVal,
			NewValue:  newVal,
			Actor:     actor,
		})
	}

	add("mileage_rate", before.MileageRate.String(), after.MileageRate.String())
	add("ot_threshold", before.OTThresholdHours.String(), after.OTThresholdHours.String())
	add("holiday_rate_multiplier", before.HolidayRateMultiplier.String(), after.HolidayRateMultiplier.String())
	add("work_week_start", fmt.Sprintf("%d", before.WorkWeekStart), fmt.Sprintf("%d", after.WorkWeekStart))

	return entries
}
