package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	repo := NewSettingsRepository(filepath.Join(t.TempDir(), "settings.yaml"))

	settings, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultShopSettings(), settings)
}

func TestSaveThenLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := NewSettingsRepository(path)

	saved := entity.ShopSettings{
		CompanyName: "Card Corner",
		Currency:    "INR",
		TaxRate:     18,
		TaxMode:     enum.TaxModeInclusive,
		Theme:       "dark",
	}
	require.NoError(t, repo.Save(saved))

	loaded, err := NewSettingsRepository(path).Load()
	require.NoError(t, err)

	assert.Equal(t, saved, loaded)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.yaml")
	repo := NewSettingsRepository(path)

	require.NoError(t, repo.Save(entity.DefaultShopSettings()))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShopSettings(), loaded)
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := NewSettingsRepository(path)

	require.NoError(t, repo.Save(entity.ShopSettings{CompanyName: "Card Corner"}))

	loaded, err := NewSettingsRepository(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "Card Corner", loaded.CompanyName)
	assert.Equal(t, "USD", loaded.Currency)
	assert.Equal(t, entity.DefaultTaxRate, loaded.TaxRate)
	assert.Equal(t, "system", loaded.Theme)
}
