package order

import (
	"context"
	"sort"
	"sync"
)

// memoryRepo keeps orders in process memory, keyed by checkout session id.
// It backs dev mode (no DATABASE_URL) and the package tests.
type memoryRepo struct {
	mu        sync.Mutex
	bySession map[string]*Order
}

// NewMemoryRepository creates an empty in-memory order store.
func NewMemoryRepository() Repository {
	return &memoryRepo{bySession: map[string]*Order{}}
}

func (r *memoryRepo) UpsertBySessionID(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bySession[o.CheckoutSessionID]; ok {
		// Keep the original id and status; refresh the provider-owned fields.
		cp := *o
		cp.ID = existing.ID
		cp.Status = existing.Status
		cp.CreatedAt = existing.CreatedAt
		r.bySession[o.CheckoutSessionID] = &cp
		return nil
	}
	cp := *o
	r.bySession[o.CheckoutSessionID] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.bySession {
		if o.ID.String() == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) GetBySessionID(ctx context.Context, sessionID string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.bySession[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]*Order, 0, len(r.bySession))
	for _, o := range r.bySession {
		cp := *o
		orders = append(orders, &cp)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.bySession {
		if o.ID.String() == id {
			o.Status = status
			return nil
		}
	}
	return ErrNotFound
}
