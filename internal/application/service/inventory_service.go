package service

import (
	"context"
	"strings"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/catalog"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/repository"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// InventoryService exposes the card catalog: browsing by occasion,
// title search and quick additions from the order-entry screen.
type InventoryService struct {
	store *session.Store
}

func NewInventoryService(store *session.Store) *InventoryService {
	return &InventoryService{store: store}
}

// ListItems returns cached inventory filtered by occasion subtype and
// title query. An empty subtype means all items.
func (s *InventoryService) ListItems(subtype catalog.Subtype, query string) []entity.InventoryItem {
	items := s.store.Inventory()
	items = catalog.FilterBySubtype(items, subtype)
	items = catalog.SearchByTitle(items, query)
	return items
}

// GetItem returns one cached inventory item.
func (s *InventoryService) GetItem(id int64) (entity.InventoryItem, error) {
	item, ok := s.store.InventoryItemByID(id)
	if !ok {
		return entity.InventoryItem{}, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// LowStockItems returns cached items the backend flagged as low or out
// of stock.
func (s *InventoryService) LowStockItems() []entity.InventoryItem {
	var low []entity.InventoryItem
	for _, item := range s.store.Inventory() {
		if item.IsLowStock || item.Stock == 0 {
			low = append(low, item)
		}
	}
	return low
}

// QuickAddInput carries a new catalog item created mid-sale. Price is
// in cents.
type QuickAddInput struct {
	Name              string
	Stock             int
	CostPerUnit       int64
	LowStockThreshold int
}

// QuickAdd creates a new inventory item upstream so it is immediately
// available in the catalog. Name and a positive price are required.
func (s *InventoryService) QuickAdd(ctx context.Context, input *QuickAddInput) (*entity.InventoryItem, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.CostPerUnit <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "price must be greater than zero"})
	}
	if input.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "stock must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	threshold := input.LowStockThreshold
	if threshold <= 0 {
		threshold = 5
	}
	return s.store.CreateInventoryItem(ctx, &repository.InventoryItemPayload{
		Name:              strings.TrimSpace(input.Name),
		Stock:             input.Stock,
		CostPerUnit:       input.CostPerUnit,
		LowStockThreshold: threshold,
	})
}

// Subtypes lists the known occasion filters.
func (s *InventoryService) Subtypes() []catalog.Subtype {
	return catalog.Subtypes()
}
