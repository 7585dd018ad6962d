package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// SettingsRepository manages the single process-wide settings document.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when nothing has been
	// saved yet.
	Get(ctx context.Context) (*domain.Settings, error)
	// Upsert merges the supplied fields into the stored document and returns
	// the result.
	Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)
}
