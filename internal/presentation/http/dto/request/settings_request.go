package request

import (
	"math"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// UpdateSettingsRequest changes shop settings; absent fields keep
// their current value.
type UpdateSettingsRequest struct {
	CompanyName *string  `json:"company_name"`
	Currency    *string  `json:"currency"`
	TaxRate     *float64 `json:"tax_rate"`
	TaxMode     *string  `json:"tax_mode"`
	Theme       *string  `json:"theme"`
}

// Validate checks field values. TaxRate is a percentage, not a
// monetary amount.
func (r *UpdateSettingsRequest) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if r.TaxRate != nil {
		rate := *r.TaxRate
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			errs = append(errs, apperror.FieldError{Field: "tax_rate", Message: "must be a non-negative percentage"})
		}
	}
	return errs
}

// ToInput converts the request to the service input.
func (r *UpdateSettingsRequest) ToInput() *service.UpdateSettingsInput {
	return &service.UpdateSettingsInput{
		CompanyName: r.CompanyName,
		Currency:    r.Currency,
		TaxRate:     r.TaxRate,
		TaxMode:     r.TaxMode,
		Theme:       r.Theme,
	}
}
