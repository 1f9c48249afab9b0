package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	domainRepo "github.com/mithuncards/cardpos/internal/domain/repository"
)

type customerRepository struct {
	client *Client
}

// NewCustomerRepository creates a customer repository backed by the upstream API.
func NewCustomerRepository(client *Client) domainRepo.CustomerRepository {
	return &customerRepository{client: client}
}

type wireCustomer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	OrdersCount int     `json:"orders_count"`
	CreatedAt   string  `json:"created_at"`
}

func (w *wireCustomer) toEntity() entity.Customer {
	customer := entity.Customer{
		ID:          w.ID,
		Name:        w.Name,
		Email:       w.Email,
		Phone:       w.Phone,
		OrdersCount: w.OrdersCount,
	}
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		customer.CreatedAt = ts
	}
	return customer
}

func (r *customerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	var wires []wireCustomer
	if err := r.client.do(ctx, "GET", "/customers", nil, &wires); err != nil {
		return nil, err
	}
	customers := make([]entity.Customer, 0, len(wires))
	for i := range wires {
		customers = append(customers, wires[i].toEntity())
	}
	return customers, nil
}

func (r *customerRepository) Create(ctx context.Context, payload *domainRepo.CustomerPayload) (*entity.Customer, error) {
	body := map[string]string{
		"name":  payload.Name,
		"phone": payload.Phone,
		"email": payload.Email,
	}
	var wire wireCustomer
	if err := r.client.do(ctx, "POST", "/customers", body, &wire); err != nil {
		return nil, err
	}
	customer := wire.toEntity()
	return &customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, "DELETE", fmt.Sprintf("/customers/%d", id), nil, nil)
}
