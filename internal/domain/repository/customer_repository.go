package repository

import (
	"context"

	"github.com/mithuncards/cardpos/internal/domain/entity"
)

// CustomerPayload is the customer representation the upstream backend
// accepts on creation.
type CustomerPayload struct {
	Name  string
	Phone string
	Email string
}

// CustomerRepository proxies customer persistence to the upstream backend.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Create(ctx context.Context, payload *CustomerPayload) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}
