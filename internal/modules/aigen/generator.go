package aigen

import (
	"context"
	"fmt"
)

// Generator abstracts the text/image generation backend.
type Generator interface {
	// Complete returns the model's text completion for a prompt.
	Complete(ctx context.Context, prompt string, opts map[string]any) (string, error)
	// GenerateImage returns a single generated image as a data URI.
	GenerateImage(ctx context.Context, prompt string, contextImage string) (string, error)
	// Model reports the backing model name.
	Model() string
}

// NewGenerator selects a Generator by provider name.
func NewGenerator(provider, model, apiKey string) (Generator, error) {
	switch provider {
	case "google":
		return NewGoogleGenerator(model, apiKey)
	case "mock", "":
		return NewMockGenerator(model), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", provider)
	}
}
