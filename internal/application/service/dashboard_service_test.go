package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
)

func TestDashboardBuild(t *testing.T) {
	store := session.NewStore(
		&stubOrderRepo{orders: []entity.Order{
			{ID: 1, Total: 10000, BalanceDue: 4000, Status: enum.OrderStatusPending},
			{ID: 2, Total: 5000, Status: enum.OrderStatusPaid},
			{ID: 3, Total: 7000, Status: enum.OrderStatusCancelled},
		}},
		&stubCustomerRepo{customers: []entity.Customer{{ID: 1}, {ID: 2}}},
		&stubInventoryRepo{items: []entity.InventoryItem{
			{ID: 1, Title: "Wedding Gold", Stock: 50},
			{ID: 2, Title: "Engagement Blue", Stock: 2, IsLowStock: true},
			{ID: 3, Title: "Baptism Dove", Stock: 0},
		}},
		&stubExpenseRepo{expenses: []entity.Expense{{ID: 1, Amount: 1500}}},
	)
	require.NoError(t, store.Refresh(context.Background()))

	dashboard := NewDashboardService(store).Build()

	assert.Equal(t, 3, dashboard.OrdersCount)
	assert.Equal(t, 1, dashboard.PendingOrders)
	assert.Equal(t, int64(15000), dashboard.TotalRevenue, "cancelled order excluded")
	assert.Equal(t, int64(4000), dashboard.Outstanding)
	assert.Equal(t, int64(1500), dashboard.TotalExpenses)
	assert.Equal(t, 2, dashboard.CustomersCount)
	assert.Equal(t, 2, dashboard.LowStockCount)
	assert.Len(t, dashboard.RecentOrders, 3)
}

func TestDashboardRecentOrdersCapped(t *testing.T) {
	orders := make([]entity.Order, 8)
	for i := range orders {
		orders[i] = entity.Order{ID: int64(i + 1)}
	}
	store := session.NewStore(&stubOrderRepo{orders: orders}, &stubCustomerRepo{}, &stubInventoryRepo{}, &stubExpenseRepo{})
	require.NoError(t, store.Refresh(context.Background()))

	dashboard := NewDashboardService(store).Build()

	assert.Len(t, dashboard.RecentOrders, 5)
	assert.Equal(t, int64(1), dashboard.RecentOrders[0].ID)
}
