package service

import (
	"sync"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/internal/domain/repository"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// SettingsService holds the shop settings in memory, loading them from
// local persistence once at startup and writing through on update.
type SettingsService struct {
	mu      sync.RWMutex
	repo    repository.SettingsRepository
	current entity.ShopSettings
}

// NewSettingsService loads the persisted settings synchronously; a
// failed read falls back to defaults.
func NewSettingsService(repo repository.SettingsRepository) (*SettingsService, error) {
	settings, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &SettingsService{repo: repo, current: settings}, nil
}

// Get returns the current shop settings.
func (s *SettingsService) Get() entity.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// UpdateSettingsInput carries the fields to change; nil fields keep
// their current value.
type UpdateSettingsInput struct {
	CompanyName *string
	Currency    *string
	TaxRate     *float64
	TaxMode     *string
	Theme       *string
}

// Update merges the input over the current settings and persists the result.
func (s *SettingsService) Update(input *UpdateSettingsInput) (entity.ShopSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.current
	if input.CompanyName != nil {
		updated.CompanyName = *input.CompanyName
	}
	if input.Currency != nil {
		updated.Currency = *input.Currency
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 {
			return updated, apperror.NewValidationError([]apperror.FieldError{
				{Field: "tax_rate", Message: "must not be negative"},
			})
		}
		updated.TaxRate = *input.TaxRate
	}
	if input.TaxMode != nil {
		updated.TaxMode = enum.ParseTaxMode(*input.TaxMode)
	}
	if input.Theme != nil {
		updated.Theme = *input.Theme
	}

	if err := s.repo.Save(updated); err != nil {
		return s.current, err
	}
	s.current = updated
	return updated, nil
}
