package localstore

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	domainRepo "github.com/mithuncards/cardpos/internal/domain/repository"
)

// settingsRepository persists shop settings to a local file so they
// survive restarts. A dedicated viper instance owns the file; the
// process-wide viper is reserved for environment configuration.
type settingsRepository struct {
	path string
	v    *viper.Viper
}

// NewSettingsRepository creates a settings repository at path.
func NewSettingsRepository(path string) domainRepo.SettingsRepository {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return &settingsRepository{path: path, v: v}
}

// Load reads the persisted settings. A missing file yields defaults.
func (r *settingsRepository) Load() (entity.ShopSettings, error) {
	defaults := entity.DefaultShopSettings()

	if err := r.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, err
	}

	settings := entity.ShopSettings{
		CompanyName: r.v.GetString("company_name"),
		Currency:    r.v.GetString("currency"),
		TaxRate:     r.v.GetFloat64("tax_rate"),
		TaxMode:     enum.ParseTaxMode(r.v.GetString("tax_mode")),
		Theme:       r.v.GetString("theme"),
	}
	if settings.CompanyName == "" {
		settings.CompanyName = defaults.CompanyName
	}
	if settings.Currency == "" {
		settings.Currency = defaults.Currency
	}
	if settings.TaxRate <= 0 {
		settings.TaxRate = defaults.TaxRate
	}
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	return settings, nil
}

// Save writes the settings file, creating its directory when needed.
func (r *settingsRepository) Save(settings entity.ShopSettings) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	r.v.Set("company_name", settings.CompanyName)
	r.v.Set("currency", settings.Currency)
	r.v.Set("tax_rate", settings.TaxRate)
	r.v.Set("tax_mode", settings.TaxMode.String())
	r.v.Set("theme", settings.Theme)

	return r.v.WriteConfigAs(r.path)
}
