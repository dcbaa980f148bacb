package setting

import "context"

type SettingsRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}

type SettingsService interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// Resolve returns stored settings or defaults, as an entity for engine use.
	Resolve(ctx context.Context, companyID string) (Settings, error)
}
