package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/internal/domain/repository"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// Draft is an order being composed. It lives only in the draft
// registry: created empty, mutated by the order-entry flows, converted
// to a persisted order on save and then discarded. Monetary fields are
// in cents.
type Draft struct {
	ID             uuid.UUID          `json:"id"`
	EditingOrderID *int64             `json:"editing_order_id,omitempty"`
	CustomerID     *int64             `json:"customer_id,omitempty"`
	CustomerName   string             `json:"customer_name,omitempty"`
	CustomerPhone  string             `json:"customer_phone,omitempty"`
	CustomerEmail  string             `json:"customer_email,omitempty"`
	OrderDate      string             `json:"date"`
	StatusOverride *enum.OrderStatus  `json:"status_override,omitempty"`
	Items          []billing.LineItem `json:"items"`
	Discount       int64              `json:"-"`
	TaxEnabled     bool               `json:"tax_enabled"`
	PaymentMethod  string             `json:"payment_method"`
	AmountPaid     int64              `json:"-"`
	CreatedAt      time.Time          `json:"created_at"`
}

// OrderService owns the draft registry and the business rules around
// composing, pricing and saving orders. Both order-entry flows (the
// catalog-driven one and the quick-bill one) drive the same drafts.
type OrderService struct {
	mu       sync.Mutex
	drafts   map[uuid.UUID]*Draft
	store    *session.Store
	settings *SettingsService
}

// NewOrderService creates a new order service.
func NewOrderService(store *session.Store, settings *SettingsService) *OrderService {
	return &OrderService{
		drafts:   make(map[uuid.UUID]*Draft),
		store:    store,
		settings: settings,
	}
}

// CreateDraft opens a new empty draft. When editingOrderID is set, the
// draft is prefilled from the cached copy of that order so the flow
// becomes an edit instead of a create.
func (s *OrderService) CreateDraft(editingOrderID *int64) (*Draft, error) {
	draft := &Draft{
		ID:            uuid.New(),
		OrderDate:     time.Now().Format("2006-01-02"),
		TaxEnabled:    true,
		PaymentMethod: "Cash",
		CreatedAt:     time.Now(),
	}

	if editingOrderID != nil {
		order, ok := s.store.OrderByID(*editingOrderID)
		if !ok {
			return nil, apperror.NewNotFoundError("Order")
		}
		draft.EditingOrderID = editingOrderID
		draft.CustomerID = order.CustomerID
		draft.CustomerName = order.CustomerName
		draft.OrderDate = order.OrderDate
		draft.Discount = order.Discount
		draft.AmountPaid = order.AdvancePaid
		status := order.Status
		draft.StatusOverride = &status
		for _, item := range order.Items {
			draft.Items = append(draft.Items, billing.LineItem{
				ID:        strconv.FormatInt(item.ID, 10),
				Title:     item.ProductName,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()
	return draft, nil
}

// GetDraft returns a draft by id.
func (s *OrderService) GetDraft(id uuid.UUID) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return draft, nil
}

// DiscardDraft abandons a draft.
func (s *OrderService) DiscardDraft(id uuid.UUID) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// AddCatalogItem adds a cached inventory item to the draft cart. An
// existing line for the item gains quantity instead of a duplicate
// line. Stock on hand is not checked.
func (s *OrderService) AddCatalogItem(draftID uuid.UUID, inventoryItemID int64) (*Draft, error) {
	item, ok := s.store.InventoryItemByID(inventoryItemID)
	if !ok {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	draft.Items = billing.AddLineItem(draft.Items, billing.LineItem{
		ID:        strconv.FormatInt(item.ID, 10),
		Title:     item.Title,
		UnitPrice: item.CostPerUnit,
	})
	return draft, nil
}

// QuickItemInput describes a free-form line for the quick-bill flow.
// UnitPrice is in cents.
type QuickItemInput struct {
	Title     string
	UnitPrice int64
	Quantity  int
}

// AddQuickItem appends a free-form line to the draft. The line needs a
// title or a price; an untitled line is recorded as "Item".
func (s *OrderService) AddQuickItem(draftID uuid.UUID, input *QuickItemInput) (*Draft, error) {
	if input.Title == "" && input.UnitPrice <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "item name or price is required"},
		})
	}

	title := input.Title
	if title == "" {
		title = "Item"
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	draft.Items = append(draft.Items, billing.LineItem{
		ID:        "NB-" + uuid.New().String(),
		Title:     title,
		UnitPrice: input.UnitPrice,
		Quantity:  quantity,
	})
	return draft, nil
}

// UpdateItemQuantity adjusts a line's quantity by delta; the result
// never drops below one.
func (s *OrderService) UpdateItemQuantity(draftID uuid.UUID, itemID string, delta int) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	draft.Items = billing.UpdateQuantity(draft.Items, itemID, delta)
	return draft, nil
}

// RemoveItem removes a line from the draft entirely.
func (s *OrderService) RemoveItem(draftID uuid.UUID, itemID string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	draft.Items = billing.RemoveLineItem(draft.Items, itemID)
	return draft, nil
}

// DraftUpdateInput carries draft-level fields to change; nil fields
// keep their current value. Monetary fields are in cents.
type DraftUpdateInput struct {
	CustomerID    *int64
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Discount      *int64
	TaxEnabled    *bool
	PaymentMethod *string
	AmountPaid    *int64
	Status        *enum.OrderStatus
}

// UpdateDraft merges draft-level fields. Selecting an existing
// customer clears any pending new-customer fields and vice versa.
func (s *OrderService) UpdateDraft(draftID uuid.UUID, input *DraftUpdateInput) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}

	if input.CustomerID != nil {
		draft.CustomerID = input.CustomerID
		draft.CustomerName = ""
		draft.CustomerPhone = ""
		draft.CustomerEmail = ""
	}
	if input.CustomerName != nil {
		draft.CustomerName = *input.CustomerName
		draft.CustomerID = nil
	}
	if input.CustomerPhone != nil {
		draft.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		draft.CustomerEmail = *input.CustomerEmail
	}
	if input.Discount != nil {
		if *input.Discount < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "discount", Message: "must not be negative"},
			})
		}
		draft.Discount = *input.Discount
	}
	if input.TaxEnabled != nil {
		draft.TaxEnabled = *input.TaxEnabled
	}
	if input.PaymentMethod != nil {
		draft.PaymentMethod = *input.PaymentMethod
	}
	if input.AmountPaid != nil {
		if *input.AmountPaid < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "amount_paid", Message: "must not be negative"},
			})
		}
		draft.AmountPaid = *input.AmountPaid
	}
	if input.Status != nil {
		draft.StatusOverride = input.Status
	}
	return draft, nil
}

// Preview derives all monetary fields for the draft without touching
// the upstream. The tax rate comes from shop settings.
func (s *OrderService) Preview(draftID uuid.UUID) (billing.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return billing.Totals{}, apperror.NewNotFoundError("Draft")
	}
	return s.computeTotals(draft), nil
}

func (s *OrderService) computeTotals(draft *Draft) billing.Totals {
	rate := s.settings.Get().EffectiveTaxRate()
	return billing.ComputeTotals(draft.Items, draft.Discount, rate, draft.TaxEnabled, draft.AmountPaid)
}

// SaveResult is the outcome of persisting a draft. Order carries the
// canonical backend record, which is authoritative for every monetary
// field. Preview is the gateway's own derivation; TotalsDiverged is
// set when the two disagree on the total so the discrepancy is
// surfaced instead of silently merged.
type SaveResult struct {
	Order          *entity.Order  `json:"order"`
	Preview        billing.Totals `json:"-"`
	TotalsDiverged bool           `json:"totals_diverged"`
}

// Save validates the draft, persists it through the upstream and
// discards it. A draft with no identified customer or no line items
// fails validation before any network call. New-customer details are
// created upstream first; the resulting id is used for the order.
func (s *OrderService) Save(ctx context.Context, draftID uuid.UUID) (*SaveResult, error) {
	s.mu.Lock()
	draft, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError("Draft")
	}
	snapshot := *draft
	snapshot.Items = append([]billing.LineItem(nil), draft.Items...)
	s.mu.Unlock()

	var fieldErrors []apperror.FieldError
	if snapshot.CustomerID == nil && snapshot.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "customer", Message: "select a customer or enter a new customer name",
		})
	}
	if len(snapshot.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "items", Message: "add at least one item",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customerID := snapshot.CustomerID
	if customerID == nil {
		customer, err := s.store.CreateCustomer(ctx, &repository.CustomerPayload{
			Name:  snapshot.CustomerName,
			Phone: snapshot.CustomerPhone,
			Email: snapshot.CustomerEmail,
		})
		if err != nil {
			return nil, err
		}
		customerID = &customer.ID
	}

	preview := s.computeTotals(&snapshot)

	payload := &repository.OrderPayload{
		CustomerID:    *customerID,
		AdvancePaid:   snapshot.AmountPaid,
		Discount:      snapshot.Discount,
		PaymentMethod: snapshot.PaymentMethod,
		Items:         make([]repository.OrderItemPayload, 0, len(snapshot.Items)),
	}
	for _, item := range snapshot.Items {
		payload.Items = append(payload.Items, repository.OrderItemPayload{
			ProductName: item.Title,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	var (
		order *entity.Order
		err   error
	)
	if snapshot.EditingOrderID != nil {
		status := preview.Status
		if snapshot.StatusOverride != nil {
			status = *snapshot.StatusOverride
		}
		payload.Status = &status
		order, err = s.store.UpdateOrder(ctx, *snapshot.EditingOrderID, payload)
	} else {
		order, err = s.store.CreateOrder(ctx, payload)
	}
	if err != nil {
		return nil, err
	}

	diverged := order.Total != preview.Total
	if diverged {
		log.Printf("order %d: backend total %d differs from local preview %d (cents); backend is authoritative",
			order.ID, order.Total, preview.Total)
	}

	s.DiscardDraft(draftID)
	return &SaveResult{Order: order, Preview: preview, TotalsDiverged: diverged}, nil
}

// ListOrders returns the cached orders.
func (s *OrderService) ListOrders() []entity.Order {
	return s.store.Orders()
}

// GetOrder returns one cached order.
func (s *OrderService) GetOrder(id int64) (entity.Order, error) {
	order, ok := s.store.OrderByID(id)
	if !ok {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// DeleteOrder removes one order.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.store.DeleteOrder(ctx, id)
}

// DeleteOrders removes a batch of orders, reporting each outcome.
func (s *OrderService) DeleteOrders(ctx context.Context, ids []int64) ([]session.DeleteResult, error) {
	if len(ids) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "ids", Message: "at least one order id is required"},
		})
	}
	return s.store.DeleteOrders(ctx, ids), nil
}

// UpdateOrderStatus sets an explicit status on a persisted order,
// keeping its items and payment as they are.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status enum.OrderStatus) (*entity.Order, error) {
	order, ok := s.store.OrderByID(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.CustomerID == nil {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("order %d has no customer reference", id))
	}

	payload := &repository.OrderPayload{
		CustomerID:    *order.CustomerID,
		AdvancePaid:   order.AdvancePaid,
		Discount:      order.Discount,
		PaymentMethod: order.PaymentMethod,
		Status:        &status,
		Items:         make([]repository.OrderItemPayload, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, repository.OrderItemPayload{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return s.store.UpdateOrder(ctx, id, payload)
}
