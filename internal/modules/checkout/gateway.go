package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gateway is the provider-agnostic interface for creating hosted checkout
// sessions. To support a new provider, implement this interface.
type Gateway interface {
	// CreateSession asks the provider for a new checkout session and returns
	// its opaque session id.
	CreateSession(ctx context.Context, items []LineItem) (string, error)
}

// ── Stripe Checkout Adapter ───────────────────────────────────────────────────

type stripeGateway struct {
	secretKey  string
	successURL string
	cancelURL  string
	baseURL    string
	client     *http.Client
}

// NewStripeGateway creates a Gateway backed by the Stripe Checkout Sessions
// API. baseURL is overridable for tests; pass "" for the live endpoint.
func NewStripeGateway(secretKey, successURL, cancelURL, baseURL string) Gateway {
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return &stripeGateway{
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *stripeGateway) CreateSession(ctx context.Context, items []LineItem) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", g.successURL)
	form.Set("cancel_url", g.cancelURL)
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &errBody) == nil && errBody.Error.Message != "" {
			return "", fmt.Errorf("stripe API error %d: %s", resp.StatusCode, errBody.Error.Message)
		}
		return "", fmt.Errorf("stripe API error %d", resp.StatusCode)
	}

	var session struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if session.ID == "" {
		return "", fmt.Errorf("stripe returned no session id")
	}
	return session.ID, nil
}

// ── Sandbox Adapter ───────────────────────────────────────────────────────────

type sandboxGateway struct{}

// NewSandboxGateway returns a Gateway that fabricates session ids without
// calling out, for dev mode and tests.
func NewSandboxGateway() Gateway { return &sandboxGateway{} }

func (g *sandboxGateway) CreateSession(ctx context.Context, items []LineItem) (string, error) {
	return "cs_test_" + strings.ReplaceAll(uuid.New().String(), "-", ""), nil
}
