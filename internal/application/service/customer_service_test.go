package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func newCustomerFixture(t *testing.T, customers []entity.Customer, orders []entity.Order) (*CustomerService, *stubCustomerRepo) {
	t.Helper()
	customerRepo := &stubCustomerRepo{customers: customers}
	store := session.NewStore(&stubOrderRepo{orders: orders}, customerRepo, &stubInventoryRepo{}, &stubExpenseRepo{})
	require.NoError(t, store.Refresh(context.Background()))
	return NewCustomerService(store), customerRepo
}

func TestListCustomersSearchesNameAndPhone(t *testing.T) {
	svc, _ := newCustomerFixture(t, []entity.Customer{
		{ID: 1, Name: "Anita Menon", Phone: strPtr("9876543210")},
		{ID: 2, Name: "Priya", Phone: strPtr("5550001111")},
	}, nil)

	assert.Len(t, svc.ListCustomers(""), 2)

	byName := svc.ListCustomers("anita")
	require.Len(t, byName, 1)
	assert.Equal(t, int64(1), byName[0].ID)

	byPhone := svc.ListCustomers("555000")
	require.Len(t, byPhone, 1)
	assert.Equal(t, int64(2), byPhone[0].ID)

	assert.Empty(t, svc.ListCustomers("nobody"))
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc, repo := newCustomerFixture(t, nil, nil)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "   "})

	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.created)
}

func TestCreateCustomerTrimsName(t *testing.T) {
	svc, repo := newCustomerFixture(t, nil, nil)

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "  Priya  "})
	require.NoError(t, err)

	assert.Equal(t, "Priya", customer.Name)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Priya", repo.created[0].Name)
}

func TestCustomerOrders(t *testing.T) {
	five := int64(5)
	six := int64(6)
	svc, _ := newCustomerFixture(t,
		[]entity.Customer{{ID: 5, Name: "Anita"}},
		[]entity.Order{
			{ID: 1, CustomerID: &five},
			{ID: 2, CustomerID: &six},
			{ID: 3, CustomerID: &five},
		},
	)

	orders, err := svc.CustomerOrders(5)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	_, err = svc.CustomerOrders(99)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
