package service

import (
	"context"
	"strings"
	"time"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/repository"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// ExpenseService records shop expenditures alongside sales so reports
// can net the two.
type ExpenseService struct {
	store *session.Store
}

func NewExpenseService(store *session.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ListExpenses returns cached expenses.
func (s *ExpenseService) ListExpenses() []entity.Expense {
	return s.store.Expenses()
}

// CreateExpenseInput carries a new expenditure. Amount is in cents;
// Date is YYYY-MM-DD and defaults to today when empty.
type CreateExpenseInput struct {
	Description string
	Amount      int64
	Date        string
}

// CreateExpense records an expenditure upstream.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "description is required"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount must be greater than zero"})
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	return s.store.CreateExpense(ctx, &repository.ExpensePayload{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Date:        date,
	})
}

// DeleteExpense removes an expenditure.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	return s.store.DeleteExpense(ctx, id)
}
