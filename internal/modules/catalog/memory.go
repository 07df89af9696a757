package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryRepo holds the catalog in process memory. All reads return copies so
// callers never alias the internal slices; all mutations run under a single
// mutex, which also covers the story sync cascades.
type memoryRepo struct {
	mu          sync.Mutex
	products    []Product
	ingredients []Ingredient
	stories     []CommunityStory
}

// NewMemoryRepository creates an in-memory catalog repository pre-populated
// with the given seed data.
func NewMemoryRepository(products []Product, ingredients []Ingredient, stories []CommunityStory) Repository {
	return &memoryRepo{
		products:    append([]Product(nil), products...),
		ingredients: append([]Ingredient(nil), ingredients...),
		stories:     append([]CommunityStory(nil), stories...),
	}
}

// ── Products ──────────────────────────────────────────────────────────────────

func (r *memoryRepo) ListProducts(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Product, len(r.products))
	copy(cp, r.products)
	return cp, nil
}

func (r *memoryRepo) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == uid {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) AddProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, *p)
	return nil
}

func (r *memoryRepo) UpdateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID != p.ID {
			continue
		}
		renamed := r.products[i].Name != p.Name
		r.products[i] = *p
		if renamed {
			// Keep the denormalized copy on referencing stories current.
			for j := range r.stories {
				if r.stories[j].ProductID != nil && *r.stories[j].ProductID == p.ID {
					r.stories[j].ProductName = p.Name
				}
			}
		}
		return nil
	}
	return ErrNotFound
}

func (r *memoryRepo) RemoveProduct(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil // unknown id, nothing to remove
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID != uid {
			continue
		}
		r.products = append(r.products[:i], r.products[i+1:]...)
		// Detach referencing stories rather than deleting them.
		for j := range r.stories {
			if r.stories[j].ProductID != nil && *r.stories[j].ProductID == uid {
				r.stories[j].ProductID = nil
				r.stories[j].ProductName = ""
			}
		}
		return nil
	}
	return nil // removing a nonexistent product is a no-op
}

// ── Ingredients ───────────────────────────────────────────────────────────────

func (r *memoryRepo) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Ingredient, len(r.ingredients))
	copy(cp, r.ingredients)
	return cp, nil
}

func (r *memoryRepo) GetIngredientBySlug(ctx context.Context, slug string) (*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ingredients {
		if r.ingredients[i].Slug == slug {
			ing := r.ingredients[i]
			return &ing, nil
		}
	}
	return nil, ErrNotFound
}

// ── Stories ───────────────────────────────────────────────────────────────────

func (r *memoryRepo) ListStories(ctx context.Context) ([]CommunityStory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]CommunityStory, len(r.stories))
	copy(cp, r.stories)
	return cp, nil
}

func (r *memoryRepo) AddStory(ctx context.Context, s *CommunityStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest stories first, matching how the community page displays them.
	r.stories = append([]CommunityStory{*s}, r.stories...)
	return nil
}

func (r *memoryRepo) RemoveStory(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stories {
		if r.stories[i].ID == uid {
			r.stories = append(r.stories[:i], r.stories[i+1:]...)
			return nil
		}
	}
	return nil
}
