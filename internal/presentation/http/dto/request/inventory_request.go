package request

import (
	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// QuickAddItemRequest creates a catalog item mid-sale.
type QuickAddItemRequest struct {
	Name              string   `json:"name" binding:"required"`
	Price             *float64 `json:"price" binding:"required"`
	Stock             *int     `json:"stock"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
}

// Validate checks field values.
func (r *QuickAddItemRequest) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if !validMoney(*r.Price) || *r.Price == 0 {
		errs = append(errs, apperror.FieldError{Field: "price", Message: "must be a positive amount"})
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs = append(errs, apperror.FieldError{Field: "stock", Message: "must not be negative"})
	}
	return errs
}

// ToInput converts the request to the service input.
func (r *QuickAddItemRequest) ToInput() *service.QuickAddInput {
	input := &service.QuickAddInput{
		Name:        r.Name,
		CostPerUnit: billing.Cents(*r.Price),
	}
	if r.Stock != nil {
		input.Stock = *r.Stock
	}
	if r.LowStockThreshold != nil {
		input.LowStockThreshold = *r.LowStockThreshold
	}
	return input
}
