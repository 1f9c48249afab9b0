package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/request"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
	"github.com/mithuncards/cardpos/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	invoiceService *service.InvoiceService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, invoiceService *service.InvoiceService) *OrderHandler {
	return &OrderHandler{orderService: orderService, invoiceService: invoiceService}
}

// List handles listing orders with search, status filter and paging
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.orderService.ListOrders()

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := make([]entity.Order, 0, len(orders))
		for _, order := range orders {
			if strings.Contains(strings.ToLower(order.CustomerName), search) {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.ParseOrderStatus(statusStr)
		filtered := make([]entity.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	page, perPage := pageParams(c)
	result := pagination.Paginate(orders, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles updating order status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.ParseOrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Delete handles deleting a single order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// BulkDelete handles deleting a batch of orders, reporting each outcome
func (h *OrderHandler) BulkDelete(c *gin.Context) {
	var req request.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	results, err := h.orderService.DeleteOrders(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted := 0
	for _, r := range results {
		if r.Deleted {
			deleted++
		}
	}

	response.OK(c, fmt.Sprintf("Deleted %d of %d orders", deleted, len(results)), gin.H{
		"results": results,
	})
}

// Invoice handles rendering the order invoice as a PDF
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	pdf, err := h.invoiceService.RenderInvoice(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", id))
	c.Data(200, "application/pdf", pdf)
}
