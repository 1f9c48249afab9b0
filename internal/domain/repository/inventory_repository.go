package repository

import (
	"context"

	"github.com/mithuncards/cardpos/internal/domain/entity"
)

// InventoryItemPayload is the inventory representation the upstream
// backend accepts on creation. CostPerUnit is in cents.
type InventoryItemPayload struct {
	Name              string
	Stock             int
	CostPerUnit       int64
	LowStockThreshold int
}

// InventoryRepository proxies inventory persistence to the upstream backend.
type InventoryRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Create(ctx context.Context, payload *InventoryItemPayload) (*entity.InventoryItem, error)
}
