package repository

import (
	"context"

	"github.com/mithuncards/cardpos/internal/domain/entity"
)

// ExpensePayload is the expense representation the upstream backend
// accepts on creation. Amount is in cents.
type ExpensePayload struct {
	Description string
	Amount      int64
	Date        string
}

// ExpenseRepository proxies expenditure persistence to the upstream backend.
type ExpenseRepository interface {
	List(ctx context.Context) ([]entity.Expense, error)
	Create(ctx context.Context, payload *ExpensePayload) (*entity.Expense, error)
	Delete(ctx context.Context, id int64) error
}
