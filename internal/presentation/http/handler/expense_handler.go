package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/request"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
	"github.com/mithuncards/cardpos/pkg/pagination"
)

// ExpenseHandler handles expenditure HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses with paging
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses := h.expenseService.ListExpenses()

	page, perPage := pageParams(c)
	result := pagination.Paginate(expenses, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Create handles recording an expenditure
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Delete handles removing an expenditure
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}
