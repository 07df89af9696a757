package catalog

import (
	"time"

	"github.com/google/uuid"
)

// AilmentType classifies what kind of ailment a product is suited for.
type AilmentType string

const (
	AilmentSpiritual AilmentType = "spiritual"
	AilmentEmotional AilmentType = "emotional"
	AilmentPhysical  AilmentType = "physical"
	AilmentMental    AilmentType = "mental"
)

// ValidAilment reports whether s is one of the four fixed ailment tags.
func ValidAilment(s AilmentType) bool {
	switch s {
	case AilmentSpiritual, AilmentEmotional, AilmentPhysical, AilmentMental:
		return true
	}
	return false
}

// Product is an item in the apothecary catalog.
type Product struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"short_description"`
	Description      string        `json:"description"`
	ImageURL         string        `json:"image_url,omitempty"`
	Price            float64       `json:"price"`
	Category         string        `json:"category"`
	Ailments         []AilmentType `json:"ailments"`
	Ingredients      []string      `json:"ingredients"` // ingredient names, not ids
	SKU              string        `json:"sku,omitempty"`
	Inventory        int           `json:"inventory"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Ingredient is a glossary entry describing a single herb or botanical.
// Ingredients are seeded at startup and immutable afterwards.
type Ingredient struct {
	ID                uuid.UUID `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	TraditionalUses   string    `json:"traditional_uses"`
	SpiritualBenefits string    `json:"spiritual_benefits"`
	PhysicalBenefits  string    `json:"physical_benefits"`
	ImageURL          string    `json:"image_url,omitempty"`
}

// CommunityStory is a customer testimonial, optionally tied to a product.
// ProductID and ProductName are a denormalized pair: both set or both empty.
// The store keeps ProductName in sync when the product is renamed, and
// clears both when the product is removed.
type CommunityStory struct {
	ID            uuid.UUID  `json:"id"`
	UserName      string     `json:"user_name"`
	UserAvatarURL string     `json:"user_avatar_url,omitempty"`
	ProductID     *uuid.UUID `json:"product_id,omitempty"`
	ProductName   string     `json:"product_name,omitempty"`
	Story         string     `json:"story"`
	Date          string     `json:"date"` // ISO date, e.g. 2023-10-15
}

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CreateProductRequest is the payload for creating or replacing a product.
type CreateProductRequest struct {
	Name             string        `json:"name" validate:"required"`
	ShortDescription string        `json:"short_description"`
	Description      string        `json:"description"`
	ImageURL         string        `json:"image_url"`
	Price            float64       `json:"price" validate:"required,gt=0"`
	Category         string        `json:"category" validate:"required"`
	Ailments         []AilmentType `json:"ailments" validate:"required,min=1"`
	Ingredients      []string      `json:"ingredients"`
	SKU              string        `json:"sku"`
	Inventory        int           `json:"inventory" validate:"gte=0"`
	IsActive         *bool         `json:"is_active,omitempty"` // defaults to true
}

// AddStoryRequest is the payload for submitting a community story.
type AddStoryRequest struct {
	UserName      string `json:"user_name" validate:"required"`
	UserAvatarURL string `json:"user_avatar_url"`
	ProductID     string `json:"product_id"`
	Story         string `json:"story" validate:"required"`
}
