package simplify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

// Simplifier rewrites text into easy Korean.
type Simplifier interface {
	Simplify(ctx context.Context, text string) (string, error)
	Name() string
}

// Config holds the model parameters shared by all simplifiers.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultConfig returns the parameters the service runs with.
func DefaultConfig() Config {
	return Config{
		Model:       openai.GPT4oMini,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

func (c Config) withDefaults(model string) Config {
	d := DefaultConfig()
	if c.Model == "" {
		c.Model = model
	}
	if c.Temperature == 0 {
		c.Temperature = d.Temperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = d.MaxTokens
	}
	return c
}

// OpenAISimplifier uses the OpenAI chat-completion API.
type OpenAISimplifier struct {
	client  *openai.Client
	config  Config
	breaker *breaker.Breaker
}

// NewOpenAISimplifier creates a new OpenAI backed simplifier
func NewOpenAISimplifier(client *openai.Client, config Config, b *breaker.Breaker) *OpenAISimplifier {
	return &OpenAISimplifier{
		client:  client,
		config:  config.withDefaults(openai.GPT4oMini),
		breaker: b,
	}
}

// Name returns the simplifier name
func (s *OpenAISimplifier) Name() string {
	return "openai:" + s.config.Model
}

// Simplify sends the system prompt and text to the model and returns its
// trimmed reply.
func (s *OpenAISimplifier) Simplify(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	}

	resp, err := breaker.Do(s.breaker, func() (openai.ChatCompletionResponse, error) {
		return s.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no simplification returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
