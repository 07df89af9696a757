package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeGatewayCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "Herbal Healing Oil", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1850", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_gateway_1"}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway("sk_test_abc", "https://shop.example/products?session_id={CHECKOUT_SESSION_ID}", "https://shop.example/products", srv.URL)

	id, err := gw.CreateSession(context.Background(), []LineItem{
		{Name: "Herbal Healing Oil", Currency: "usd", UnitAmount: 1850, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_gateway_1", id)
}

func TestStripeGatewayPropagatesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway("sk_test_abc", "https://s", "https://c", srv.URL)

	_, err := gw.CreateSession(context.Background(), []LineItem{
		{Name: "Oil", Currency: "usd", UnitAmount: 100, Quantity: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}
