package keyword

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

const taggerPrompt = `You are a Korean morphological analyzer that behaves like the Open Korean Text (Okt) tagger with stemming enabled.
Split the user's text into morphemes and tag each one with exactly one of:
Noun, Verb, Adjective, Adverb, Josa, Eomi, Punctuation, Number, Foreign, Other.
Verbs and adjectives must be given in dictionary form (stem + 다).
Keep the original order. Do not translate or explain.
Respond with JSON only: {"tokens": [{"word": "...", "tag": "..."}]}`

// OpenAITagger tags text with a chat-completion model.
type OpenAITagger struct {
	client  *openai.Client
	model   string
	breaker *breaker.Breaker
}

// NewOpenAITagger creates a tagger using the given client and model
func NewOpenAITagger(client *openai.Client, model string, b *breaker.Breaker) *OpenAITagger {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITagger{client: client, model: model, breaker: b}
}

// Name returns the tagger name
func (o *OpenAITagger) Name() string {
	return "openai"
}

// Tag asks the model for a stemmed part-of-speech tagging of text.
func (o *OpenAITagger) Tag(ctx context.Context, text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: taggerPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		MaxTokens:   1000,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := breaker.Do(o.breaker, func() (openai.ChatCompletionResponse, error) {
		return o.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no tagging returned")
	}

	return parseTokens(resp.Choices[0].Message.Content)
}

func parseTokens(content string) ([]Token, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var payload struct {
		Tokens []struct {
			Word string `json:"word"`
			Tag  string `json:"tag"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse tagger response: %w", err)
	}

	tokens := make([]Token, 0, len(payload.Tokens))
	for _, t := range payload.Tokens {
		word := strings.TrimSpace(t.Word)
		if word == "" {
			continue
		}
		tokens = append(tokens, Token{Surface: word, Tag: ParseTag(t.Tag)})
	}

	return tokens, nil
}
