package simplify

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

// DefaultGeminiModel is used when no model is configured for Gemini.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiSimplifier uses the Gemini API.
type GeminiSimplifier struct {
	client  *genai.Client
	config  Config
	breaker *breaker.Breaker
}

// NewGeminiSimplifier creates a Gemini backed simplifier. baseURL is only
// set to point the client at a different endpoint.
func NewGeminiSimplifier(ctx context.Context, apiKey, baseURL string, config Config, b *breaker.Breaker) (*GeminiSimplifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSimplifier{
		client:  client,
		config:  config.withDefaults(DefaultGeminiModel),
		breaker: b,
	}, nil
}

// Name returns the simplifier name
func (s *GeminiSimplifier) Name() string {
	return "gemini:" + s.config.Model
}

// Simplify sends the system prompt and text to Gemini.
func (s *GeminiSimplifier) Simplify(ctx context.Context, text string) (string, error) {
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(s.config.Temperature),
		MaxOutputTokens:   int32(s.config.MaxTokens),
	}

	resp, err := breaker.Do(s.breaker, func() (*genai.GenerateContentResponse, error) {
		return s.client.Models.GenerateContent(ctx, s.config.Model, genai.Text(text), gc)
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("no simplification returned")
	}

	return out, nil
}
