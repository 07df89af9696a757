package checkout

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Service defines checkout business logic.
type Service interface {
	// CreateSession prices the cart and requests a hosted checkout session
	// from the payment provider.
	CreateSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error)
}

type service struct {
	gateway  Gateway
	currency string
	validate *validator.Validate
}

// NewService creates a new checkout service. currency defaults to usd.
func NewService(gateway Gateway, currency string) Service {
	if currency == "" {
		currency = "usd"
	}
	return &service{gateway: gateway, currency: currency, validate: validator.New()}
}

func (s *service) CreateSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]LineItem, 0, len(req.Items))
	for _, ci := range req.Items {
		if err := s.validate.Struct(ci); err != nil {
			return nil, fmt.Errorf("invalid cart item %q: %w", ci.Name, err)
		}
		items = append(items, LineItem{
			Name:       ci.Name,
			ImageURL:   ci.ImageURL,
			Currency:   s.currency,
			UnitAmount: MinorUnits(ci.UnitPrice),
			Quantity:   ci.Quantity,
		})
	}

	sessionID, err := s.gateway.CreateSession(ctx, items)
	if err != nil {
		// Surface only the provider's message, never its error shape.
		return nil, &ProviderError{Message: err.Error()}
	}
	return &CreateSessionResponse{SessionID: sessionID}, nil
}
