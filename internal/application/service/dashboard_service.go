package service

import (
	"encoding/json"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
)

const recentOrdersLimit = 5

// Dashboard is the landing-page summary. Monetary fields are in cents.
type Dashboard struct {
	TotalRevenue   int64                  `json:"-"`
	Outstanding    int64                  `json:"-"`
	TotalExpenses  int64                  `json:"-"`
	OrdersCount    int                    `json:"orders_count"`
	PendingOrders  int                    `json:"pending_orders"`
	CustomersCount int                    `json:"customers_count"`
	LowStockCount  int                    `json:"low_stock_count"`
	RecentOrders   []entity.Order         `json:"recent_orders"`
	LowStockItems  []entity.InventoryItem `json:"low_stock_items"`
}

// MarshalJSON renders the cent fields in currency units.
func (d Dashboard) MarshalJSON() ([]byte, error) {
	type alias Dashboard
	return json.Marshal(struct {
		alias
		TotalRevenue  float64 `json:"total_revenue"`
		Outstanding   float64 `json:"outstanding"`
		TotalExpenses float64 `json:"total_expenses"`
	}{
		alias:         alias(d),
		TotalRevenue:  float64(d.TotalRevenue) / 100,
		Outstanding:   float64(d.Outstanding) / 100,
		TotalExpenses: float64(d.TotalExpenses) / 100,
	})
}

// DashboardService aggregates the session cache into the landing-page
// summary.
type DashboardService struct {
	store *session.Store
}

func NewDashboardService(store *session.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Build assembles the dashboard from the cache. Cancelled orders are
// excluded from the monetary totals but still counted.
func (s *DashboardService) Build() *Dashboard {
	dashboard := &Dashboard{}

	orders := s.store.Orders()
	dashboard.OrdersCount = len(orders)
	for _, order := range orders {
		if order.Status == enum.OrderStatusPending {
			dashboard.PendingOrders++
		}
		if order.Status == enum.OrderStatusCancelled {
			continue
		}
		dashboard.TotalRevenue += order.Total
		dashboard.Outstanding += order.BalanceDue
	}
	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}
	dashboard.RecentOrders = orders

	for _, expense := range s.store.Expenses() {
		dashboard.TotalExpenses += expense.Amount
	}

	dashboard.CustomersCount = len(s.store.Customers())

	for _, item := range s.store.Inventory() {
		if item.IsLowStock || item.Stock == 0 {
			dashboard.LowStockItems = append(dashboard.LowStockItems, item)
		}
	}
	dashboard.LowStockCount = len(dashboard.LowStockItems)

	return dashboard
}
