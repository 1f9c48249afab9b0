package repository

import "github.com/mithuncards/cardpos/internal/domain/entity"

// SettingsRepository persists shop settings locally. Load is called
// synchronously at startup and must return defaults when nothing has
// been saved yet.
type SettingsRepository interface {
	Load() (entity.ShopSettings, error)
	Save(settings entity.ShopSettings) error
}
