package entity

import (
	"encoding/json"
	"time"
)

// StockStatus labels an inventory item's on-hand state for display.
type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// InventoryItem is a card design or print product held in stock.
// CostPerUnit is in cents.
type InventoryItem struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Stock             int       `json:"stock"`
	CostPerUnit       int64     `json:"-"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	IsLowStock        bool      `json:"is_low_stock"`
	Image             *string   `json:"image,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// StockStatus derives the display status from stock and the low-stock flag.
func (i *InventoryItem) StockStatus() StockStatus {
	switch {
	case i.Stock == 0:
		return StockStatusOut
	case i.IsLowStock:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// MarshalJSON renders the unit cost as a two-decimal currency value and
// attaches the derived stock status.
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		CostPerUnit float64     `json:"price"`
		Status      StockStatus `json:"status"`
	}{
		Alias:       Alias(i),
		CostPerUnit: float64(i.CostPerUnit) / 100,
		Status:      i.StockStatus(),
	})
}
