package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment lifecycle of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
	StatusRefunded   OrderStatus = "REFUNDED"
)

// validTransitions defines the allowed status state machine. Cancelled and
// refunded are alternate terminal states reachable until the order ships
// (refunds stay possible after delivery).
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled, StatusRefunded},
	StatusShipped:    {StatusDelivered, StatusRefunded},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// CanTransition returns true if an order may move from current to next.
func CanTransition(current, next OrderStatus) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// CustomerDetails is the buyer information the payment provider collected on
// the hosted checkout page.
type CustomerDetails struct {
	Name    string          `json:"name,omitempty"`
	Email   string          `json:"email,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Address json.RawMessage `json:"address,omitempty"`
}

// OrderItem is a single line item within an order. Subtotal is always
// UnitAmount x Quantity, in minor currency units.
type OrderItem struct {
	ProductName string `json:"product_name"`
	UnitAmount  int64  `json:"unit_amount"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// Order is the denormalized record written when the payment provider reports
// a completed checkout. Orders are created only by the webhook, never by the
// storefront. All amounts are minor currency units.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	CheckoutSessionID string          `json:"checkout_session_id"`
	Status            OrderStatus     `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	AmountSubtotal    int64           `json:"amount_subtotal"`
	AmountTax         int64           `json:"amount_tax"`
	AmountShipping    int64           `json:"amount_shipping"`
	AmountTotal       int64           `json:"amount_total"`
	Currency          string          `json:"currency"`
	Items             []OrderItem     `json:"items,omitempty"`
	CustomerDetails   CustomerDetails `json:"customer_details"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ── Webhook event envelope ────────────────────────────────────────────────────

// EventCheckoutCompleted is the only event type that produces an order write.
const EventCheckoutCompleted = "checkout.session.completed"

// Event is the provider's webhook envelope.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CheckoutSession `json:"object"`
	} `json:"data"`
}

// CheckoutSession is the completed-session object inside a webhook event.
type CheckoutSession struct {
	ID              string          `json:"id"`
	AmountSubtotal  int64           `json:"amount_subtotal"`
	AmountTotal     int64           `json:"amount_total"`
	Currency        string          `json:"currency"`
	PaymentStatus   string          `json:"payment_status"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	TotalDetails    struct {
		AmountTax      int64 `json:"amount_tax"`
		AmountShipping int64 `json:"amount_shipping"`
	} `json:"total_details"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
