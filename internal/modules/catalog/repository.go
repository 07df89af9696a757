package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product, ingredient or story does not exist.
var ErrNotFound = errors.New("not found")

// Repository defines the interface for catalog data storage.
//
// UpdateProduct and RemoveProduct own the denormalized story sync: a rename
// rewrites ProductName on every referencing story, a removal clears the
// ProductID/ProductName pair, both atomically with the product mutation so
// no story referencing a nonexistent product is ever observable.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	AddProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	RemoveProduct(ctx context.Context, id string) error

	ListIngredients(ctx context.Context) ([]Ingredient, error)
	GetIngredientBySlug(ctx context.Context, slug string) (*Ingredient, error)

	ListStories(ctx context.Context) ([]CommunityStory, error)
	AddStory(ctx context.Context, s *CommunityStory) error
	RemoveStory(ctx context.Context, id string) error
}
