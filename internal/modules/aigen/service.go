package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// imageCount is how many product images one request produces.
const imageCount = 4

// Service defines the AI generation operations exposed to the storefront.
type Service interface {
	GenerateDescription(ctx context.Context, req DescriptionRequest) (*DescriptionResponse, error)
	GenerateImages(ctx context.Context, req ImagesRequest) (*ImagesResponse, error)
	Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResponse, error)
}

type service struct {
	generator Generator
	validate  *validator.Validate
}

// NewService creates a new generation service.
func NewService(generator Generator) Service {
	return &service{generator: generator, validate: validator.New()}
}

func (s *service) GenerateDescription(ctx context.Context, req DescriptionRequest) (*DescriptionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	text, err := s.generator.Complete(ctx, descriptionPrompt(req), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneration, err)
	}
	return &DescriptionResponse{Description: strings.TrimSpace(text)}, nil
}

func (s *service) GenerateImages(ctx context.Context, req ImagesRequest) (*ImagesResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	prompt := imagePrompt(req)

	images := make([]string, imageCount)
	errs := make([]error, imageCount)
	var wg sync.WaitGroup
	for i := 0; i < imageCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			images[i], errs[i] = s.generator.GenerateImage(ctx, prompt, req.ContextImage)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			// One failed image fails the whole batch.
			return nil, fmt.Errorf("%w: %s", ErrGeneration, err)
		}
	}
	return &ImagesResponse{Images: images}, nil
}

func (s *service) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	text, err := s.generator.Complete(ctx, recommendationPrompt(req), map[string]any{"json": true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneration, err)
	}

	var resp RecommendationResponse
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &resp); err != nil {
		return nil, fmt.Errorf("%w: unparseable model output", ErrGeneration)
	}
	return &resp, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// often wrap JSON output in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
