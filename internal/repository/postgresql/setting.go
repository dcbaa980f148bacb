package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingsRepository {
	return &settingRepositoryImpl{db: db}
}

func (r *settingRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (setting.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, mileage_rate, ot_threshold, holiday_rate_multiplier,
			work_week_start, created_at, updated_at
		FROM company_settings
		WHERE company_id = $1
	`

	var s setting.Settings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.MileageRate, &s.OTThresholdHours,
		&s.HolidayRateMultiplier, &s.WorkWeekStart, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return setting.Settings{}, setting.ErrSettingsNotFound
		}
		return setting.Settings{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	return s, nil
}

func (r *settingRepositoryImpl) Upsert(ctx context.Context, settings setting.Settings) (setting.Settings, error) {
	q := GetQuerier(ctx, r.db)

	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}

	query := `
		INSERT INTO company_settings (
			id, company_id, mileage_rate, ot_threshold, holiday_rate_multiplier, work_week_start
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE SET
			mileage_rate = EXCLUDED.mileage_rate,
			ot_threshold = EXCLUDED.ot_threshold,
			holiday_rate_multiplier = EXCLUDED.holiday_rate_multiplier,
			work_week_start = EXCLUDED.work_week_start,
			updated_at = NOW()
		RETURNING id, company_id, mileage_rate, ot_threshold, holiday_rate_multiplier,
			work_week_start, created_at, updated_at
	`

	var s setting.Settings
	err := q.QueryRow(ctx, query,
		settings.ID, settings.CompanyID, settings.MileageRate,
		settings.OTThresholdHours, settings.HolidayRateMultiplier, settings.WorkWeekStart,
	).Scan(
		&s.ID, &s.CompanyID, &s.MileageRate, &s.OTThresholdHours,
		&s.HolidayRateMultiplier, &s.WorkWeekStart, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return setting.Settings{}, fmt.Errorf("failed to upsert company settings: %w", err)
	}

	return s, nil
}
