package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/request"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
)

// DraftHandler handles the order-entry flow: composing a draft cart,
// pricing it and saving it as an order.
type DraftHandler struct {
	orderService *service.OrderService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(orderService *service.OrderService) *DraftHandler {
	return &DraftHandler{orderService: orderService}
}

// draftView pairs a draft with its derived totals so every mutation
// response carries the current price.
func (h *DraftHandler) draftView(draft *service.Draft) (gin.H, error) {
	totals, err := h.orderService.Preview(draft.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{"draft": draft, "totals": totals}, nil
}

// Create handles opening a new draft
func (h *DraftHandler) Create(c *gin.Context) {
	var req request.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.orderService.CreateDraft(req.EditingOrderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Draft created successfully", view)
}

// Get handles fetching a draft with its totals
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.orderService.GetDraft(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft retrieved successfully", view)
}

// Discard handles abandoning a draft
func (h *DraftHandler) Discard(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	h.orderService.DiscardDraft(id)
	response.NoContent(c)
}

// AddCatalogItem handles adding a catalog item to the draft cart
func (h *DraftHandler) AddCatalogItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req request.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.orderService.AddCatalogItem(id, req.InventoryItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added successfully", view)
}

// AddQuickItem handles adding a free-form line to the draft cart
func (h *DraftHandler) AddQuickItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req request.QuickItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	draft, err := h.orderService.AddQuickItem(id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added successfully", view)
}

// UpdateItemQuantity handles adjusting a line quantity
func (h *DraftHandler) UpdateItemQuantity(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}
	itemID := c.Param("item_id")

	var req request.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.orderService.UpdateItemQuantity(id, itemID, *req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated successfully", view)
}

// RemoveItem handles removing a line from the draft cart
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.orderService.RemoveItem(id, c.Param("item_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed successfully", view)
}

// Update handles changing draft-level fields
func (h *DraftHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	draft, err := h.orderService.UpdateDraft(id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.draftView(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft updated successfully", view)
}

// Save handles persisting the draft as an order
func (h *DraftHandler) Save(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	result, err := h.orderService.Save(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order saved successfully", result)
}
