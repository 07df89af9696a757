package checkout

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyCart is returned when a checkout is attempted with no items.
// It is raised before any call to the payment provider.
var ErrEmptyCart = errors.New("cart is empty")

// ProviderError carries the payment provider's message without exposing the
// provider's error shape to callers.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("checkout provider error: %s", e.Message)
}

// CartItem describes one entry of a customer's cart at checkout time.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// CreateSessionRequest is the payload for starting a checkout.
type CreateSessionRequest struct {
	Items []CartItem `json:"items"`
}

// CreateSessionResponse carries the provider's opaque session id back to the
// storefront, which redirects the customer to the hosted payment page.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// LineItem is a priced entry sent to the payment provider. UnitAmount is in
// minor currency units (cents).
type LineItem struct {
	Name       string
	ImageURL   string
	Currency   string
	UnitAmount int64
	Quantity   int
}

// MinorUnits converts a decimal price to integer minor currency units,
// rounding rather than truncating so 19.995 becomes 2000, not 1999.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
