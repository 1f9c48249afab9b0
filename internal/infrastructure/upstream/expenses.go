package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	domainRepo "github.com/mithuncards/cardpos/internal/domain/repository"
)

type expenseRepository struct {
	client *Client
}

// NewExpenseRepository creates an expense repository backed by the upstream API.
func NewExpenseRepository(client *Client) domainRepo.ExpenseRepository {
	return &expenseRepository{client: client}
}

type wireExpense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

func (w *wireExpense) toEntity() entity.Expense {
	expense := entity.Expense{
		ID:          w.ID,
		Description: w.Description,
		Amount:      billing.Cents(w.Amount),
		Date:        dateOnly(w.Date),
	}
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		expense.CreatedAt = ts
	}
	return expense
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	var wires []wireExpense
	if err := r.client.do(ctx, "GET", "/expenses", nil, &wires); err != nil {
		return nil, err
	}
	expenses := make([]entity.Expense, 0, len(wires))
	for i := range wires {
		expenses = append(expenses, wires[i].toEntity())
	}
	return expenses, nil
}

func (r *expenseRepository) Create(ctx context.Context, payload *domainRepo.ExpensePayload) (*entity.Expense, error) {
	body := map[string]interface{}{
		"description": payload.Description,
		"amount":      float64(payload.Amount) / 100,
		"date":        payload.Date,
	}
	var wire wireExpense
	if err := r.client.do(ctx, "POST", "/expenses", body, &wire); err != nil {
		return nil, err
	}
	expense := wire.toEntity()
	return &expense, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, "DELETE", fmt.Sprintf("/expenses/%d", id), nil, nil)
}
