package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	calls int
	items []LineItem
	id    string
	err   error
}

func (g *recordingGateway) CreateSession(ctx context.Context, items []LineItem) (string, error) {
	g.calls++
	g.items = items
	return g.id, g.err
}

func TestCreateSessionEmptyCart(t *testing.T) {
	gw := &recordingGateway{id: "cs_test_1"}
	svc := NewService(gw, "usd")

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{})
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, gw.calls, "empty cart must not reach the provider")
}

func TestCreateSessionPricesLineItems(t *testing.T) {
	gw := &recordingGateway{id: "cs_test_42"}
	svc := NewService(gw, "usd")

	resp, err := svc.CreateSession(context.Background(), CreateSessionRequest{
		Items: []CartItem{
			{Name: "Herbal Healing Oil", UnitPrice: 18.50, Quantity: 2, ImageURL: "https://img/oil.png"},
			{Name: "Black Soap", UnitPrice: 19.995, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_42", resp.SessionID)

	require.Len(t, gw.items, 2)
	assert.Equal(t, int64(1850), gw.items[0].UnitAmount)
	assert.Equal(t, 2, gw.items[0].Quantity)
	assert.Equal(t, "usd", gw.items[0].Currency)
	// Rounded, not truncated.
	assert.Equal(t, int64(2000), gw.items[1].UnitAmount)
}

func TestCreateSessionRejectsBadItems(t *testing.T) {
	gw := &recordingGateway{id: "cs_test_1"}
	svc := NewService(gw, "usd")

	tests := []struct {
		name string
		item CartItem
	}{
		{"zero quantity", CartItem{Name: "Oil", UnitPrice: 10, Quantity: 0}},
		{"zero price", CartItem{Name: "Oil", UnitPrice: 0, Quantity: 1}},
		{"missing name", CartItem{UnitPrice: 10, Quantity: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSession(context.Background(), CreateSessionRequest{Items: []CartItem{tt.item}})
			assert.Error(t, err)
		})
	}
	assert.Zero(t, gw.calls)
}

func TestCreateSessionWrapsProviderErrors(t *testing.T) {
	gw := &recordingGateway{err: errors.New("stripe API error 402: card testing suspected")}
	svc := NewService(gw, "usd")

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{
		Items: []CartItem{{Name: "Oil", UnitPrice: 10, Quantity: 1}},
	})
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "card testing suspected")
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.995, 2000},
		{10.004, 1000},
		{0.01, 1},
		{24.99, 2499},
		{100, 10000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price), "price %v", tt.price)
	}
}
