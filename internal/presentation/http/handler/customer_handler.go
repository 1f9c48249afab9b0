package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/request"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
	"github.com/mithuncards/cardpos/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with search and paging
func (h *CustomerHandler) List(c *gin.Context) {
	customers := h.customerService.ListCustomers(c.Query("search"))

	page, perPage := pageParams(c)
	result := pagination.Paginate(customers, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// Orders handles listing one customer's orders
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	orders, err := h.customerService.CustomerOrders(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer orders retrieved successfully", orders)
}
