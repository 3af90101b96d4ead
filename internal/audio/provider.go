package audio

import (
	"context"
	"fmt"
	"log/slog"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio generates audio from text and saves it to the specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider  string // Provider name: "google" or "openai"
	Fallback  bool   // Fall back to the other provider when the primary fails
	OutputDir string // Directory the speech files are written to

	// Google settings
	GoogleURL  string // Translate TTS endpoint, empty for the public one
	GoogleLang string // Language code, "ko"

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIBaseURL     string  // API base URL, empty for api.openai.com
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// Cache OpenAI output by text so repeated sentences cost nothing
	EnableCache bool
	CacheDir    string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "google",
		OutputDir:         "tts_files",
		GoogleLang:        "ko",
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "alloy",
		OpenAISpeed:       1.0,
		OpenAIInstruction: "You are speaking Korean (한국어). Pronounce the text with natural standard Seoul pronunciation. Speak clearly and a little slowly for language learners.",
	}
}

// NewProvider creates the appropriate audio provider based on configuration
func NewProvider(config *Config, logger *slog.Logger) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var primary, secondary func() (Provider, error)
	google := func() (Provider, error) { return NewGoogleProvider(config), nil }
	openAI := func() (Provider, error) { return NewOpenAIProvider(config, logger) }

	switch config.Provider {
	case "google", "":
		primary, secondary = google, openAI
	case "openai":
		primary, secondary = openAI, google
	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}

	p, err := primary()
	if err != nil {
		return nil, err
	}
	if !config.Fallback {
		return p, nil
	}

	fb, err := secondary()
	if err != nil {
		logger.Warn("audio fallback provider unavailable", slog.String("error", err.Error()))
		return p, nil
	}
	return NewProviderWithFallback(p, fb, logger), nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      *slog.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      logger,
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		p.log.WarnContext(ctx, "primary audio provider failed, falling back",
			slog.String("primary", p.primary.Name()),
			slog.String("fallback", p.fallback.Name()),
			slog.String("error", err.Error()),
		)

		// Try fallback
		return p.fallback.GenerateAudio(ctx, text, outputFile)
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
