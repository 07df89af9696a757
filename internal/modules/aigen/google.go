package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GoogleGenerator talks to the Google Generative Language API over plain
// HTTP. Text completions use the configured model; image generation always
// uses an image-capable model variant.
type GoogleGenerator struct {
	apiKey     string
	model      string
	imageModel string
	baseURL    string
	client     *http.Client
}

type googlePart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *googleInlineData `json:"inline_data,omitempty"`
}

type googleInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
}

type googleRequest struct {
	Contents         []googleContent `json:"contents"`
	GenerationConfig *struct {
		ResponseModalities []string `json:"responseModalities,omitempty"`
	} `json:"generationConfig,omitempty"`
}

type googleResponse struct {
	Candidates []struct {
		Content googleContent `json:"content"`
	} `json:"candidates"`
}

func NewGoogleGenerator(model, apiKey string) (*GoogleGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google generator requires an API key")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GoogleGenerator{
		apiKey:     apiKey,
		model:      model,
		imageModel: "gemini-2.0-flash-preview-image-generation",
		baseURL:    defaultBaseURL,
		client:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (g *GoogleGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	req := googleRequest{Contents: []googleContent{{Parts: []googlePart{{Text: prompt}}}}}

	resp, err := g.call(ctx, g.model, req)
	if err != nil {
		return "", err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("no text in response")
}

func (g *GoogleGenerator) GenerateImage(ctx context.Context, prompt string, contextImage string) (string, error) {
	parts := []googlePart{{Text: prompt}}
	if contextImage != "" {
		mime, data, ok := splitDataURI(contextImage)
		if !ok {
			return "", fmt.Errorf("context image must be a base64 data URI")
		}
		parts = append(parts, googlePart{InlineData: &googleInlineData{MimeType: mime, Data: data}})
	}

	req := googleRequest{Contents: []googleContent{{Parts: parts}}}
	req.GenerationConfig = &struct {
		ResponseModalities []string `json:"responseModalities,omitempty"`
	}{ResponseModalities: []string{"TEXT", "IMAGE"}}

	resp, err := g.call(ctx, g.imageModel, req)
	if err != nil {
		return "", err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("no image in response")
}

func (g *GoogleGenerator) Model() string { return g.model }

func (g *GoogleGenerator) call(ctx context.Context, model string, req googleRequest) (*googleResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("generative language API error %d: %s", httpResp.StatusCode, string(b))
	}

	var resp googleResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// splitDataURI pulls the mime type and base64 payload out of a
// "data:<mime>;base64,<data>" URI.
func splitDataURI(uri string) (mime, data string, ok bool) {
	rest, found := strings.CutPrefix(uri, "data:")
	if !found {
		return "", "", false
	}
	meta, data, found := strings.Cut(rest, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", "", false
	}
	return strings.TrimSuffix(meta, ";base64"), data, true
}

// Compile-time interface check
var _ Generator = (*GoogleGenerator)(nil)
