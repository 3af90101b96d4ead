package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

// OpenAITranslator translates with a chat-completion model.
type OpenAITranslator struct {
	client  *openai.Client
	model   string
	breaker *breaker.Breaker
}

// NewOpenAITranslator creates a new translator instance
func NewOpenAITranslator(client *openai.Client, model string, b *breaker.Breaker) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		client:  client,
		model:   model,
		breaker: b,
	}
}

// Name returns the translator name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// Translate translates Korean text to English
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Translate the user's Korean text to natural English. Respond with only the English translation, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	}

	resp, err := breaker.Do(t.breaker, func() (openai.ChatCompletionResponse, error) {
		return t.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
