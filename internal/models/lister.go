package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Catalog is the categorized list of available models.
type Catalog struct {
	Chat   []string
	Speech []string
	Other  []string
}

// Lister handles listing available OpenAI models
type Lister struct {
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(client *openai.Client) *Lister {
	return &Lister{client: client}
}

// List fetches and categorizes the available models.
func (l *Lister) List(ctx context.Context) (*Catalog, error) {
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	catalog := &Catalog{}
	for _, model := range models.Models {
		id := model.ID
		switch {
		case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
			catalog.Speech = append(catalog.Speech, id)
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat") || isReasoning(id):
			catalog.Chat = append(catalog.Chat, id)
		default:
			catalog.Other = append(catalog.Other, id)
		}
	}

	sort.Strings(catalog.Chat)
	sort.Strings(catalog.Speech)
	sort.Strings(catalog.Other)

	return catalog, nil
}

// Print writes the catalog in a human readable form.
func (c *Catalog) Print(w io.Writer) {
	fmt.Fprintln(w, "Available OpenAI Models:")

	fmt.Fprintln(w, "\nChat Models (simplification, tagging, translation):")
	printList(w, c.Chat, "No chat models found")

	fmt.Fprintln(w, "\nText-to-Speech (TTS) Models:")
	printList(w, c.Speech, "No TTS models found")

	if len(c.Other) > 0 {
		fmt.Fprintf(w, "\n... and %d other models\n", len(c.Other))
	}
}

// isReasoning matches the o-series model names (o1, o3-mini, ...).
func isReasoning(id string) bool {
	return len(id) > 1 && id[0] == 'o' && id[1] >= '0' && id[1] <= '9'
}

func printList(w io.Writer, ids []string, empty string) {
	if len(ids) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
