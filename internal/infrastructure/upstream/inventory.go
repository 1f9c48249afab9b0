package upstream

import (
	"context"
	"time"

	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	domainRepo "github.com/mithuncards/cardpos/internal/domain/repository"
)

type inventoryRepository struct {
	client *Client
}

// NewInventoryRepository creates an inventory repository backed by the upstream API.
func NewInventoryRepository(client *Client) domainRepo.InventoryRepository {
	return &inventoryRepository{client: client}
}

type wireInventoryItem struct {
	ID                int64   `json:"id"`
	ItemName          string  `json:"item_name"`
	StockQuantity     int     `json:"stock_quantity"`
	CostPerUnit       float64 `json:"cost_per_unit"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	IsLowStock        bool    `json:"is_low_stock"`
	Image             *string `json:"image"`
	CreatedAt         string  `json:"created_at"`
}

func (w *wireInventoryItem) toEntity() entity.InventoryItem {
	item := entity.InventoryItem{
		ID:                w.ID,
		Title:             w.ItemName,
		Stock:             w.StockQuantity,
		CostPerUnit:       billing.Cents(w.CostPerUnit),
		LowStockThreshold: w.LowStockThreshold,
		IsLowStock:        w.IsLowStock,
		Image:             w.Image,
	}
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		item.CreatedAt = ts
	}
	return item
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var wires []wireInventoryItem
	if err := r.client.do(ctx, "GET", "/inventory", nil, &wires); err != nil {
		return nil, err
	}
	items := make([]entity.InventoryItem, 0, len(wires))
	for i := range wires {
		items = append(items, wires[i].toEntity())
	}
	return items, nil
}

func (r *inventoryRepository) Create(ctx context.Context, payload *domainRepo.InventoryItemPayload) (*entity.InventoryItem, error) {
	body := map[string]interface{}{
		"name":                payload.Name,
		"stock":               payload.Stock,
		"cost_per_unit":       float64(payload.CostPerUnit) / 100,
		"low_stock_threshold": payload.LowStockThreshold,
	}
	var wire wireInventoryItem
	if err := r.client.do(ctx, "POST", "/inventory", body, &wire); err != nil {
		return nil, err
	}
	item := wire.toEntity()
	return &item, nil
}
