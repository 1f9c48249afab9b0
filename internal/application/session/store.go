package session

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/repository"
)

// Store is the session-scoped cache of backend collections. It is
// constructed for a session and torn down with it; nothing else holds
// collection state. CRUD operations proxy to the upstream repositories
// and update the cache optimistically on success. There is no rollback
// on failure beyond surfacing the error, and no invalidation policy
// beyond a full Refresh.
type Store struct {
	mu        sync.RWMutex
	orders    []entity.Order
	customers []entity.Customer
	inventory []entity.InventoryItem
	expenses  []entity.Expense

	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	invRepo      repository.InventoryRepository
	expenseRepo  repository.ExpenseRepository
}

// NewStore creates an empty session store over the upstream repositories.
func NewStore(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	invRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
) *Store {
	return &Store{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		invRepo:      invRepo,
		expenseRepo:  expenseRepo,
	}
}

// Refresh refetches every collection concurrently and replaces the
// cache wholesale. Orders and inventory failures abort the refresh;
// customer and expense fetch failures degrade to empty lists, matching
// how the dashboard tolerates their absence.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		orders    []entity.Order
		inventory []entity.InventoryItem
		customers []entity.Customer
		expenses  []entity.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = s.invRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if customers, err = s.customerRepo.List(gctx); err != nil {
			log.Printf("session: customer refresh failed, continuing without: %v", err)
			customers = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = s.expenseRepo.List(gctx); err != nil {
			log.Printf("session: expense refresh failed, continuing without: %v", err)
			expenses = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.inventory = inventory
	s.customers = customers
	s.expenses = expenses
	s.mu.Unlock()
	return nil
}

// Clear drops all cached state. Invoked when the upstream reports the
// session token is no longer valid.
func (s *Store) Clear() {
	s.mu.Lock()
	s.orders = nil
	s.customers = nil
	s.inventory = nil
	s.expenses = nil
	s.mu.Unlock()
}

// Orders returns a snapshot of the cached orders.
func (s *Store) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Customers returns a snapshot of the cached customers.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Inventory returns a snapshot of the cached inventory.
func (s *Store) Inventory() []entity.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Expenses returns a snapshot of the cached expenses.
func (s *Store) Expenses() []entity.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// OrderByID looks up a cached order.
func (s *Store) OrderByID(id int64) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return entity.Order{}, false
}

// CustomerByID looks up a cached customer.
func (s *Store) CustomerByID(id int64) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return entity.Customer{}, false
}

// InventoryItemByID looks up a cached inventory item.
func (s *Store) InventoryItemByID(id int64) (entity.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return entity.InventoryItem{}, false
}

// CreateOrder persists a new order upstream and prepends it to the cache.
func (s *Store) CreateOrder(ctx context.Context, payload *repository.OrderPayload) (*entity.Order, error) {
	order, err := s.orderRepo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.orders = append([]entity.Order{*order}, s.orders...)
	s.mu.Unlock()
	return order, nil
}

// UpdateOrder persists an order update upstream and replaces the cached copy.
func (s *Store) UpdateOrder(ctx context.Context, id int64, payload *repository.OrderPayload) (*entity.Order, error) {
	order, err := s.orderRepo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = *order
			break
		}
	}
	s.mu.Unlock()
	return order, nil
}

// DeleteOrder deletes an order upstream and drops it from the cache.
func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = removeByID(s.orders, func(o entity.Order) int64 { return o.ID }, id)
	s.mu.Unlock()
	return nil
}

// DeleteResult reports the outcome of one item in a batch delete.
type DeleteResult struct {
	ID      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// bulkDeleteConcurrency bounds how many deletes run against the
// upstream at once.
const bulkDeleteConcurrency = 4

// DeleteOrders deletes a batch of orders concurrently and returns a
// per-item result list. There is no transaction: deletions that
// succeed stay applied even when others fail.
func (s *Store) DeleteOrders(ctx context.Context, ids []int64) []DeleteResult {
	results := make([]DeleteResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkDeleteConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := s.DeleteOrder(gctx, id); err != nil {
				results[i] = DeleteResult{ID: id, Error: err.Error()}
			} else {
				results[i] = DeleteResult{ID: id, Deleted: true}
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// CreateCustomer persists a new customer upstream and appends it to the cache.
func (s *Store) CreateCustomer(ctx context.Context, payload *repository.CustomerPayload) (*entity.Customer, error) {
	customer, err := s.customerRepo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.customers = append(s.customers, *customer)
	s.mu.Unlock()
	return customer, nil
}

// DeleteCustomer deletes a customer upstream and drops it from the cache.
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.customers = removeByID(s.customers, func(c entity.Customer) int64 { return c.ID }, id)
	s.mu.Unlock()
	return nil
}

// CreateInventoryItem persists a new inventory item upstream and
// appends it to the cache.
func (s *Store) CreateInventoryItem(ctx context.Context, payload *repository.InventoryItemPayload) (*entity.InventoryItem, error) {
	item, err := s.invRepo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.inventory = append(s.inventory, *item)
	s.mu.Unlock()
	return item, nil
}

// CreateExpense persists a new expense upstream and appends it to the cache.
func (s *Store) CreateExpense(ctx context.Context, payload *repository.ExpensePayload) (*entity.Expense, error) {
	expense, err := s.expenseRepo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.expenses = append(s.expenses, *expense)
	s.mu.Unlock()
	return expense, nil
}

// DeleteExpense deletes an expense upstream and drops it from the cache.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.expenses = removeByID(s.expenses, func(e entity.Expense) int64 { return e.ID }, id)
	s.mu.Unlock()
	return nil
}

func removeByID[T any](items []T, idOf func(T) int64, id int64) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
