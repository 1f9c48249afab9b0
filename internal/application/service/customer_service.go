package service

import (
	"context"
	"strings"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/repository"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// CustomerService exposes customer listing, search and mutation over
// the session cache.
type CustomerService struct {
	store *session.Store
}

func NewCustomerService(store *session.Store) *CustomerService {
	return &CustomerService{store: store}
}

// ListCustomers returns cached customers, optionally filtered by a
// case-insensitive match on name or phone.
func (s *CustomerService) ListCustomers(query string) []entity.Customer {
	customers := s.store.Customers()
	if query == "" {
		return customers
	}
	query = strings.ToLower(query)
	filtered := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), query) {
			filtered = append(filtered, c)
			continue
		}
		if c.Phone != nil && strings.Contains(*c.Phone, query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GetCustomer returns one cached customer.
func (s *CustomerService) GetCustomer(id int64) (entity.Customer, error) {
	customer, ok := s.store.CustomerByID(id)
	if !ok {
		return entity.Customer{}, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// CreateCustomerInput carries a new customer's details.
type CreateCustomerInput struct {
	Name  string
	Phone string
	Email string
}

// CreateCustomer persists a new customer upstream. Name is required.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	return s.store.CreateCustomer(ctx, &repository.CustomerPayload{
		Name:  strings.TrimSpace(input.Name),
		Phone: input.Phone,
		Email: input.Email,
	})
}

// DeleteCustomer removes a customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.store.DeleteCustomer(ctx, id)
}

// CustomerOrders returns the cached orders belonging to one customer,
// newest first as the cache holds them.
func (s *CustomerService) CustomerOrders(id int64) ([]entity.Order, error) {
	if _, ok := s.store.CustomerByID(id); !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}
	var orders []entity.Order
	for _, order := range s.store.Orders() {
		if order.CustomerID != nil && *order.CustomerID == id {
			orders = append(orders, order)
		}
	}
	return orders, nil
}
