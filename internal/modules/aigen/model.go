package aigen

import "errors"

// ErrGeneration is the generic failure for any text or image generation call.
// Upstream error shapes never leak past this package.
var ErrGeneration = errors.New("generation failed")

// DescriptionRequest asks for full product copy from a name, a short
// description for context, and comma-separated keywords.
type DescriptionRequest struct {
	Name             string `json:"name" validate:"required"`
	ShortDescription string `json:"short_description"`
	Keywords         string `json:"keywords"`
}

// DescriptionResponse carries the generated product description.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// ImagesRequest asks for a set of product images. ContextImage is an
// optional data URI used as a style reference.
type ImagesRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	ContextImage string `json:"context_image,omitempty"`
}

// ImagesResponse carries the generated images as data URIs.
type ImagesResponse struct {
	Images []string `json:"images"`
}

// RecommendationRequest asks for personalized suggestions around a product.
type RecommendationRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	UserNeeds   string `json:"user_needs" validate:"required"`
}

// RecommendationResponse is the structured recommendation output.
type RecommendationResponse struct {
	RecommendedProducts         []string `json:"recommendedProducts"`
	SpiritualServiceSuggestions []string `json:"spiritualServiceSuggestions"`
	Reasoning                   string   `json:"reasoning"`
}
