package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T) Service {
	t.Helper()
	products, ingredients, stories := SeedData()
	return NewService(NewMemoryRepository(products, ingredients, stories))
}

func TestRemoveProductDetachesStories(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	products, err := svc.ListProducts(ctx, FilterCriteria{})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	target := products[0]

	require.NoError(t, svc.RemoveProduct(ctx, target.ID.String()))

	stories, err := svc.ListStories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stories, "stories must survive product removal")
	for _, s := range stories {
		if s.ProductID != nil {
			assert.NotEqual(t, target.ID, *s.ProductID, "no story may reference a removed product")
		}
		// ProductID and ProductName are null together or set together.
		if s.ProductID == nil {
			assert.Empty(t, s.ProductName)
		} else {
			assert.NotEmpty(t, s.ProductName)
		}
	}
}

func TestRemoveProductUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	before, err := svc.ListProducts(ctx, FilterCriteria{})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveProduct(ctx, "not-a-uuid"))
	require.NoError(t, svc.RemoveProduct(ctx, "6a44cfcd-6bc2-4a60-8e27-d964a0a3e126"))

	after, err := svc.ListProducts(ctx, FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateProductRenameSyncsStories(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	products, err := svc.ListProducts(ctx, FilterCriteria{})
	require.NoError(t, err)
	target := products[0]

	updated, err := svc.UpdateProduct(ctx, target.ID.String(), CreateProductRequest{
		Name:        "Sacred Anointing Oil (Triumph)",
		Price:       target.Price,
		Category:    target.Category,
		Ailments:    target.Ailments,
		Ingredients: target.Ingredients,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sacred Anointing Oil (Triumph)", updated.Name)

	stories, err := svc.ListStories(ctx)
	require.NoError(t, err)
	referenced := 0
	for _, s := range stories {
		if s.ProductID != nil && *s.ProductID == target.ID {
			referenced++
			assert.Equal(t, "Sacred Anointing Oil (Triumph)", s.ProductName)
		}
	}
	require.Positive(t, referenced, "seed data must include a story for the renamed product")
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	tests := []struct {
		name string
		req  CreateProductRequest
	}{
		{"zero price", CreateProductRequest{Name: "X", Price: 0, Category: "Oils", Ailments: []AilmentType{AilmentPhysical}}},
		{"negative price", CreateProductRequest{Name: "X", Price: -1, Category: "Oils", Ailments: []AilmentType{AilmentPhysical}}},
		{"no ailments", CreateProductRequest{Name: "X", Price: 9.99, Category: "Oils"}},
		{"bad ailment tag", CreateProductRequest{Name: "X", Price: 9.99, Category: "Oils", Ailments: []AilmentType{"cosmic"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestAddStoryResolvesProductName(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	products, err := svc.ListProducts(ctx, FilterCriteria{})
	require.NoError(t, err)
	target := products[1]

	story, err := svc.AddStory(ctx, AddStoryRequest{
		UserName:  "Rowan Ashe",
		ProductID: target.ID.String(),
		Story:     "This oil carried me through a rough winter.",
	})
	require.NoError(t, err)
	require.NotNil(t, story.ProductID)
	assert.Equal(t, target.ID, *story.ProductID)
	assert.Equal(t, target.Name, story.ProductName)

	// Newest first
	stories, err := svc.ListStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, story.ID, stories[0].ID)
}

func TestAddStoryRejectsUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	_, err := svc.AddStory(ctx, AddStoryRequest{
		UserName:  "Rowan Ashe",
		ProductID: "29a9b1de-48c5-4d10-9f3b-5f26d24a2a01",
		Story:     "A story about nothing.",
	})
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lavender", Slugify("Lavender"))
	assert.Equal(t, "st-johns-wort", Slugify("St. John's Wort"))
	assert.Equal(t, "blue-lotus", Slugify("  Blue   Lotus  "))
}
