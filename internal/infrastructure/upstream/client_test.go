package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/config"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.UpstreamConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"status":true,"data":{"id":1}}`))
	})

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, client.do(context.Background(), "GET", "/orders", nil, &out))

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, int64(1), out.ID)
}

func TestClientDiscardsPayloadWhenOutIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"deleted"}`))
	})

	assert.NoError(t, client.do(context.Background(), "DELETE", "/orders/1", nil, nil))
}

func TestClientMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.do(context.Background(), "GET", "/orders/99", nil, nil)

	assert.Equal(t, apperror.ErrNotFound, err)
}

func TestClientMapsBadRequestWithUpstreamMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":false,"message":"quantity must be positive"}`))
	})

	err := client.do(context.Background(), "POST", "/orders", map[string]int{"quantity": -1}, nil)

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "quantity must be positive", appErr.Message)
}

func TestClientFiresUnauthorizedHook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	fired := false
	client.OnUnauthorized(func() { fired = true })

	err := client.do(context.Background(), "GET", "/orders", nil, nil)

	assert.Equal(t, apperror.ErrSessionExpired, err)
	assert.True(t, fired)
}

func TestClientMapsServerErrorToUpstream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.do(context.Background(), "GET", "/orders", nil, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestClientMapsNetworkFailure(t *testing.T) {
	client := NewClient(&config.UpstreamConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
	})

	err := client.do(context.Background(), "GET", "/orders", nil, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestClientRejectsMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	var out map[string]any
	err := client.do(context.Background(), "GET", "/orders", nil, &out)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestOrderRepositoryRoundtrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET" && r.URL.Path == "/orders":
			w.Write([]byte(`{"status":true,"data":[{
				"id":42,
				"customer":{"id":5,"name":"Anita"},
				"created_at":"2026-08-15T09:30:00Z",
				"subtotal":100.00,
				"tax":8.25,
				"discount":0,
				"total":108.25,
				"advance_paid":50.00,
				"balance_due":58.25,
				"status":"pending",
				"payment_method":"Cash",
				"items":[{"id":1,"product_name":"Wedding Gold Invite","unit_price":50.00,"quantity":2,"total_price":100.00}]
			}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewOrderRepository(client)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "Anita", order.CustomerName)
	assert.Equal(t, "2026-08-15", order.OrderDate)
	assert.Equal(t, int64(10000), order.SubTotal)
	assert.Equal(t, int64(825), order.Tax)
	assert.Equal(t, int64(10825), order.Total)
	assert.Equal(t, int64(5825), order.BalanceDue)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(5000), order.Items[0].UnitPrice)
}

func TestOrderWithoutCustomerDefaultsName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[{"id":1,"created_at":"2026-08-15T09:30:00Z","status":"pending"}]}`))
	})
	repo := NewOrderRepository(client)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].CustomerID)
	assert.Equal(t, "N/A", orders[0].CustomerName)
}
