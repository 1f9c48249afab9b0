package entity

import "github.com/mithuncards/cardpos/internal/domain/enum"

// ShopSettings holds process-wide shop preferences. They are persisted
// locally and read synchronously at startup; every price-rendering
// surface consults them for the currency symbol and tax rate.
type ShopSettings struct {
	CompanyName string       `json:"company_name" mapstructure:"company_name"`
	Currency    string       `json:"currency" mapstructure:"currency"`
	TaxRate     float64      `json:"tax_rate" mapstructure:"tax_rate"`
	TaxMode     enum.TaxMode `json:"tax_mode" mapstructure:"tax_mode"`
	Theme       string       `json:"theme" mapstructure:"theme"`
}

// DefaultTaxRate applies when no rate has been configured.
const DefaultTaxRate = 8.25

// DefaultShopSettings returns the settings used before any have been saved.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		CompanyName: "Mithun Cards",
		Currency:    "USD",
		TaxRate:     DefaultTaxRate,
		TaxMode:     enum.TaxModeExclusive,
		Theme:       "system",
	}
}

// EffectiveTaxRate falls back to the default rate when the stored rate
// is unset.
func (s ShopSettings) EffectiveTaxRate() float64 {
	if s.TaxRate <= 0 {
		return DefaultTaxRate
	}
	return s.TaxRate
}

// CurrencySymbol maps the configured currency to its display symbol,
// falling back to the currency code itself.
func (s ShopSettings) CurrencySymbol() string {
	switch s.Currency {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	default:
		return s.Currency
	}
}
