package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/repository"
)

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    []entity.Order
	listErr   error
	deleteErr map[int64]error
	nextID    int64
	deleted   []int64
}

func (m *mockOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.orders, nil
}

func (m *mockOrderRepo) Create(ctx context.Context, payload *repository.OrderPayload) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order := entity.Order{
		ID:            m.nextID,
		CustomerID:    &payload.CustomerID,
		AdvancePaid:   payload.AdvancePaid,
		Discount:      payload.Discount,
		PaymentMethod: payload.PaymentMethod,
	}
	for i, item := range payload.Items {
		lineTotal := item.UnitPrice * int64(item.Quantity)
		order.SubTotal += lineTotal
		order.Items = append(order.Items, entity.OrderItem{
			ID:          int64(i + 1),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Total:       lineTotal,
		})
	}
	order.Total = order.SubTotal - order.Discount
	order.BalanceDue = order.Total - order.AdvancePaid
	return &order, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, id int64, payload *repository.OrderPayload) (*entity.Order, error) {
	order, err := m.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	order.ID = id
	if payload.Status != nil {
		order.Status = *payload.Status
	}
	return order, nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	if err := m.deleteErr[id]; err != nil {
		return err
	}
	m.mu.Lock()
	m.deleted = append(m.deleted, id)
	m.mu.Unlock()
	return nil
}

type mockCustomerRepo struct {
	customers []entity.Customer
	listErr   error
	nextID    int64
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.customers, nil
}

func (m *mockCustomerRepo) Create(ctx context.Context, payload *repository.CustomerPayload) (*entity.Customer, error) {
	m.nextID++
	return &entity.Customer{ID: m.nextID, Name: payload.Name}, nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockInventoryRepo struct {
	items   []entity.InventoryItem
	listErr error
	nextID  int64
}

func (m *mockInventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockInventoryRepo) Create(ctx context.Context, payload *repository.InventoryItemPayload) (*entity.InventoryItem, error) {
	m.nextID++
	return &entity.InventoryItem{
		ID:          m.nextID,
		Title:       payload.Name,
		Stock:       payload.Stock,
		CostPerUnit: payload.CostPerUnit,
	}, nil
}

type mockExpenseRepo struct {
	expenses []entity.Expense
	listErr  error
	nextID   int64
}

func (m *mockExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.expenses, nil
}

func (m *mockExpenseRepo) Create(ctx context.Context, payload *repository.ExpensePayload) (*entity.Expense, error) {
	m.nextID++
	return &entity.Expense{ID: m.nextID, Description: payload.Description, Amount: payload.Amount, Date: payload.Date}, nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func newTestStore(orderRepo *mockOrderRepo, customerRepo *mockCustomerRepo, invRepo *mockInventoryRepo, expRepo *mockExpenseRepo) *Store {
	if orderRepo == nil {
		orderRepo = &mockOrderRepo{}
	}
	if customerRepo == nil {
		customerRepo = &mockCustomerRepo{}
	}
	if invRepo == nil {
		invRepo = &mockInventoryRepo{}
	}
	if expRepo == nil {
		expRepo = &mockExpenseRepo{}
	}
	return NewStore(orderRepo, customerRepo, invRepo, expRepo)
}

func TestRefreshPopulatesAllCollections(t *testing.T) {
	store := newTestStore(
		&mockOrderRepo{orders: []entity.Order{{ID: 1}, {ID: 2}}},
		&mockCustomerRepo{customers: []entity.Customer{{ID: 5, Name: "Anita"}}},
		&mockInventoryRepo{items: []entity.InventoryItem{{ID: 9, Title: "Wedding Gold"}}},
		&mockExpenseRepo{expenses: []entity.Expense{{ID: 3}}},
	)

	require.NoError(t, store.Refresh(context.Background()))

	assert.Len(t, store.Orders(), 2)
	assert.Len(t, store.Customers(), 1)
	assert.Len(t, store.Inventory(), 1)
	assert.Len(t, store.Expenses(), 1)
}

func TestRefreshFailsWhenOrdersUnavailable(t *testing.T) {
	store := newTestStore(&mockOrderRepo{listErr: errors.New("backend down")}, nil, nil, nil)

	err := store.Refresh(context.Background())

	require.Error(t, err)
	assert.Empty(t, store.Orders())
}

func TestRefreshToleratesCustomerFailure(t *testing.T) {
	store := newTestStore(
		&mockOrderRepo{orders: []entity.Order{{ID: 1}}},
		&mockCustomerRepo{listErr: errors.New("timeout")},
		nil, nil,
	)

	require.NoError(t, store.Refresh(context.Background()))

	assert.Len(t, store.Orders(), 1)
	assert.Empty(t, store.Customers())
}

func TestCreateOrderPrepends(t *testing.T) {
	orderRepo := &mockOrderRepo{orders: []entity.Order{{ID: 1}}}
	store := newTestStore(orderRepo, nil, nil, nil)
	require.NoError(t, store.Refresh(context.Background()))

	order, err := store.CreateOrder(context.Background(), &repository.OrderPayload{
		CustomerID: 5,
		Items:      []repository.OrderItemPayload{{ProductName: "Card", Quantity: 2, UnitPrice: 250}},
	})

	require.NoError(t, err)
	orders := store.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, order.ID, orders[0].ID, "new order goes to the front")
	assert.Equal(t, int64(500), orders[0].Total)
}

func TestDeleteOrderDropsFromCache(t *testing.T) {
	orderRepo := &mockOrderRepo{orders: []entity.Order{{ID: 1}, {ID: 2}}}
	store := newTestStore(orderRepo, nil, nil, nil)
	require.NoError(t, store.Refresh(context.Background()))

	require.NoError(t, store.DeleteOrder(context.Background(), 1))

	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID)
}

func TestDeleteOrdersReportsPartialFailure(t *testing.T) {
	orderRepo := &mockOrderRepo{
		orders:    []entity.Order{{ID: 1}, {ID: 2}, {ID: 3}},
		deleteErr: map[int64]error{2: errors.New("order not found")},
	}
	store := newTestStore(orderRepo, nil, nil, nil)
	require.NoError(t, store.Refresh(context.Background()))

	results := store.DeleteOrders(context.Background(), []int64{1, 2, 3})

	require.Len(t, results, 3)
	assert.True(t, results[0].Deleted)
	assert.False(t, results[1].Deleted)
	assert.Contains(t, results[1].Error, "not found")
	assert.True(t, results[2].Deleted)

	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID, "failed delete stays cached")
}

func TestClearDropsEverything(t *testing.T) {
	store := newTestStore(
		&mockOrderRepo{orders: []entity.Order{{ID: 1}}},
		&mockCustomerRepo{customers: []entity.Customer{{ID: 5}}},
		nil, nil,
	)
	require.NoError(t, store.Refresh(context.Background()))

	store.Clear()

	assert.Empty(t, store.Orders())
	assert.Empty(t, store.Customers())
	assert.Empty(t, store.Inventory())
	assert.Empty(t, store.Expenses())
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := newTestStore(&mockOrderRepo{orders: []entity.Order{{ID: 1, CustomerName: "Anita"}}}, nil, nil, nil)
	require.NoError(t, store.Refresh(context.Background()))

	snapshot := store.Orders()
	snapshot[0].CustomerName = "changed"

	fresh := store.Orders()
	assert.Equal(t, "Anita", fresh[0].CustomerName)
}
