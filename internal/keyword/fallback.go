package keyword

import (
	"context"
	"fmt"
	"log/slog"
)

// TaggerWithFallback wraps a primary tagger with a fallback option
type TaggerWithFallback struct {
	primary  Tagger
	fallback Tagger
	log      *slog.Logger
}

// NewTaggerWithFallback creates a tagger that falls back to secondary if primary fails
func NewTaggerWithFallback(primary, fallback Tagger, logger *slog.Logger) Tagger {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaggerWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      logger,
	}
}

// Tag tries the primary tagger first, falls back to secondary on error
func (t *TaggerWithFallback) Tag(ctx context.Context, text string) ([]Token, error) {
	tokens, err := t.primary.Tag(ctx, text)
	if err == nil {
		return tokens, nil
	}

	t.log.WarnContext(ctx, "primary tagger failed, falling back",
		slog.String("primary", t.primary.Name()),
		slog.String("fallback", t.fallback.Name()),
		slog.String("error", err.Error()),
	)

	return t.fallback.Tag(ctx, text)
}

// Name returns the tagger name
func (t *TaggerWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", t.primary.Name(), t.fallback.Name())
}
