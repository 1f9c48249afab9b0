package request

import (
	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// CreateExpenseRequest records an expenditure.
type CreateExpenseRequest struct {
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Date        string   `json:"date"`
}

// Validate checks field values.
func (r *CreateExpenseRequest) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if !validMoney(*r.Amount) || *r.Amount == 0 {
		errs = append(errs, apperror.FieldError{Field: "amount", Message: "must be a positive amount"})
	}
	return errs
}

// ToInput converts the request to the service input.
func (r *CreateExpenseRequest) ToInput() *service.CreateExpenseInput {
	return &service.CreateExpenseInput{
		Description: r.Description,
		Amount:      billing.Cents(*r.Amount),
		Date:        r.Date,
	}
}
