package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/catalog"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/request"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
	"github.com/mithuncards/cardpos/pkg/pagination"
)

// InventoryHandler handles catalog browsing and quick additions
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing catalog items filtered by occasion and title
func (h *InventoryHandler) List(c *gin.Context) {
	subtype := catalog.ParseSubtype(c.Query("subtype"))
	items := h.inventoryService.ListItems(subtype, c.Query("search"))

	page, perPage := pageParams(c)
	result := pagination.Paginate(items, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})

	response.SuccessWithPagination(c, 200, "Inventory retrieved successfully", result)
}

// Get handles getting a single catalog item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// GetLowStock handles listing low and out-of-stock items
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	response.OK(c, "Low stock items retrieved successfully", h.inventoryService.LowStockItems())
}

// Subtypes handles listing the occasion filters
func (h *InventoryHandler) Subtypes(c *gin.Context) {
	response.OK(c, "Subtypes retrieved successfully", h.inventoryService.Subtypes())
}

// QuickAdd handles creating a catalog item mid-sale
func (h *InventoryHandler) QuickAdd(c *gin.Context) {
	var req request.QuickAddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	item, err := h.inventoryService.QuickAdd(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}
