package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MockGenerator produces deterministic output without calling out. It backs
// dev mode and the package tests.
type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &MockGenerator{model: model}
}

func (g *MockGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	if wantJSON, _ := opts["json"].(bool); wantJSON {
		out, _ := json.Marshal(RecommendationResponse{
			RecommendedProducts:         []string{"Sacred Anointing Oil (Victory)", "Herbal Healing Oil"},
			SpiritualServiceSuggestions: []string{"Guided evening meditation", "Seasonal cleansing ritual"},
			Reasoning:                   "These selections pair a grounding oil with restorative practices that match the needs described.",
		})
		return string(out), nil
	}

	name := "this blend"
	if i := strings.Index(prompt, "PRODUCT NAME:"); i >= 0 {
		line := prompt[i+len("PRODUCT NAME:"):]
		if j := strings.IndexByte(line, '\n'); j >= 0 {
			line = line[:j]
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			name = trimmed
		}
	}
	return fmt.Sprintf("%s is hand-blended in small batches from whole botanicals, traditionally used to promote a sense of calm and overall well-being. Each jar supports your daily ritual without harsh additives.", name), nil
}

func (g *MockGenerator) GenerateImage(ctx context.Context, prompt string, contextImage string) (string, error) {
	// A 1x1 transparent PNG.
	return "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==", nil
}

func (g *MockGenerator) Model() string { return g.model + "-mock" }

// Compile-time interface check
var _ Generator = (*MockGenerator)(nil)
