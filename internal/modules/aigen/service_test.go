package aigen

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyGenerator fails a chosen image call and counts invocations.
type flakyGenerator struct {
	mu       sync.Mutex
	calls    int
	failCall int
}

func (g *flakyGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	return "", errors.New("not implemented")
}

func (g *flakyGenerator) GenerateImage(ctx context.Context, prompt string, contextImage string) (string, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == g.failCall {
		return "", errors.New("quota exceeded")
	}
	return "data:image/png;base64,AAAA", nil
}

func (g *flakyGenerator) Model() string { return "flaky" }

func TestGenerateDescription(t *testing.T) {
	svc := NewService(NewMockGenerator(""))

	resp, err := svc.GenerateDescription(context.Background(), DescriptionRequest{
		Name:             "Herbal Healing Oil",
		ShortDescription: "A soothing blend",
		Keywords:         "calendula, lavender",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Description, "Herbal Healing Oil")
}

func TestGenerateDescriptionRequiresName(t *testing.T) {
	svc := NewService(NewMockGenerator(""))

	_, err := svc.GenerateDescription(context.Background(), DescriptionRequest{Keywords: "calm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestGenerateImagesProducesFullBatch(t *testing.T) {
	svc := NewService(NewMockGenerator(""))

	resp, err := svc.GenerateImages(context.Background(), ImagesRequest{Name: "Black Soap"})
	require.NoError(t, err)
	require.Len(t, resp.Images, imageCount)
	for _, img := range resp.Images {
		assert.True(t, strings.HasPrefix(img, "data:image/"))
	}
}

func TestGenerateImagesFailsBatchOnAnyError(t *testing.T) {
	svc := NewService(&flakyGenerator{failCall: 3})

	_, err := svc.GenerateImages(context.Background(), ImagesRequest{Name: "Black Soap"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestRecommendParsesModelJSON(t *testing.T) {
	svc := NewService(NewMockGenerator(""))

	resp, err := svc.Recommend(context.Background(), RecommendationRequest{
		ProductName: "Sacred Anointing Oil (Victory)",
		UserNeeds:   "trouble sleeping, feeling scattered",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.RecommendedProducts)
	assert.NotEmpty(t, resp.SpiritualServiceSuggestions)
	assert.NotEmpty(t, resp.Reasoning)
}

func TestRecommendRequiresNeeds(t *testing.T) {
	svc := NewService(NewMockGenerator(""))

	_, err := svc.Recommend(context.Background(), RecommendationRequest{ProductName: "Black Soap"})
	require.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                         "{\"a\":1}",
		"```json\n{\"a\":1}\n```":           "{\"a\":1}",
		"```\n{\"a\":1}\n```":               "{\"a\":1}",
		"  ```json\n{\"a\":1}\n```  \n":     "{\"a\":1}",
		"plain text with ``` in the middle": "plain text with ``` in the middle",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripCodeFence(in))
	}
}
