package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, criteria FilterCriteria) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	RemoveProduct(ctx context.Context, id string) error

	ListIngredients(ctx context.Context) ([]Ingredient, error)
	GetIngredientBySlug(ctx context.Context, slug string) (*Ingredient, error)

	ListStories(ctx context.Context) ([]CommunityStory, error)
	AddStory(ctx context.Context, req AddStoryRequest) (*CommunityStory, error)
	RemoveStory(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a new catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) ListProducts(ctx context.Context, criteria FilterCriteria) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, criteria), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	p, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	if err := s.repo.AddProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	existing, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) RemoveProduct(ctx context.Context, id string) error {
	return s.repo.RemoveProduct(ctx, id)
}

func (s *service) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

func (s *service) GetIngredientBySlug(ctx context.Context, slug string) (*Ingredient, error) {
	return s.repo.GetIngredientBySlug(ctx, slug)
}

func (s *service) ListStories(ctx context.Context) ([]CommunityStory, error) {
	return s.repo.ListStories(ctx)
}

func (s *service) AddStory(ctx context.Context, req AddStoryRequest) (*CommunityStory, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid story: %w", err)
	}
	story := &CommunityStory{
		ID:            uuid.New(),
		UserName:      req.UserName,
		UserAvatarURL: req.UserAvatarURL,
		Story:         req.Story,
		Date:          time.Now().UTC().Format("2006-01-02"),
	}
	if req.ProductID != "" {
		// Resolve the product so the denormalized name is correct at write time.
		p, err := s.repo.GetProduct(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}
		story.ProductID = &p.ID
		story.ProductName = p.Name
	}
	if err := s.repo.AddStory(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *service) RemoveStory(ctx context.Context, id string) error {
	return s.repo.RemoveStory(ctx, id)
}

func (s *service) productFromRequest(req CreateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	for _, a := range req.Ailments {
		if !ValidAilment(a) {
			return nil, fmt.Errorf("invalid ailment tag: %s", a)
		}
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &Product{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		Price:            req.Price,
		Category:         req.Category,
		Ailments:         req.Ailments,
		Ingredients:      req.Ingredients,
		SKU:              req.SKU,
		Inventory:        req.Inventory,
		IsActive:         active,
	}, nil
}

// Slugify derives a URL slug from an ingredient name: lowercased, whitespace
// collapsed to hyphens, everything else non-alphanumeric dropped.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
