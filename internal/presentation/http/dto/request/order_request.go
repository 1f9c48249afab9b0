package request

import (
	"math"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// Monetary request fields arrive as decimal currency amounts and are
// converted to cents once validated. A malformed or negative amount is
// rejected here, never coerced to zero.

func validMoney(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// CreateDraftRequest opens a new order draft, optionally prefilled
// from an existing order.
type CreateDraftRequest struct {
	EditingOrderID *int64 `json:"editing_order_id"`
}

// CatalogItemRequest adds a catalog item to a draft.
type CatalogItemRequest struct {
	InventoryItemID int64 `json:"inventory_item_id" binding:"required"`
}

// QuickItemRequest adds a free-form line to a draft.
type QuickItemRequest struct {
	Title    string   `json:"title"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// Validate checks field values; binding has already rejected
// non-numeric input.
func (r *QuickItemRequest) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if r.Price != nil && !validMoney(*r.Price) {
		errs = append(errs, apperror.FieldError{Field: "price", Message: "must be a non-negative amount"})
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		errs = append(errs, apperror.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	return errs
}

// ToInput converts the request to the service input.
func (r *QuickItemRequest) ToInput() *service.QuickItemInput {
	input := &service.QuickItemInput{Title: r.Title, Quantity: 1}
	if r.Price != nil {
		input.UnitPrice = billing.Cents(*r.Price)
	}
	if r.Quantity != nil {
		input.Quantity = *r.Quantity
	}
	return input
}

// QuantityRequest adjusts a draft line quantity by a signed delta.
type QuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// UpdateDraftRequest changes draft-level fields; absent fields are
// left untouched.
type UpdateDraftRequest struct {
	CustomerID    *int64   `json:"customer_id"`
	CustomerName  *string  `json:"customer_name"`
	CustomerPhone *string  `json:"customer_phone"`
	CustomerEmail *string  `json:"customer_email"`
	Discount      *float64 `json:"discount"`
	TaxEnabled    *bool    `json:"tax_enabled"`
	PaymentMethod *string  `json:"payment_method"`
	AmountPaid    *float64 `json:"amount_paid"`
	Status        *string  `json:"status"`
}

// Validate checks field values.
func (r *UpdateDraftRequest) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if r.Discount != nil && !validMoney(*r.Discount) {
		errs = append(errs, apperror.FieldError{Field: "discount", Message: "must be a non-negative amount"})
	}
	if r.AmountPaid != nil && !validMoney(*r.AmountPaid) {
		errs = append(errs, apperror.FieldError{Field: "amount_paid", Message: "must be a non-negative amount"})
	}
	return errs
}

// ToInput converts the request to the service input.
func (r *UpdateDraftRequest) ToInput() *service.DraftUpdateInput {
	input := &service.DraftUpdateInput{
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		TaxEnabled:    r.TaxEnabled,
		PaymentMethod: r.PaymentMethod,
	}
	if r.Discount != nil {
		discount := billing.Cents(*r.Discount)
		input.Discount = &discount
	}
	if r.AmountPaid != nil {
		paid := billing.Cents(*r.AmountPaid)
		input.AmountPaid = &paid
	}
	if r.Status != nil {
		status := enum.ParseOrderStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// UpdateStatusRequest sets an explicit status on a persisted order.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BulkDeleteRequest removes a batch of orders.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}
