package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/simpletalk/internal/audio"
	"codeberg.org/snonux/simpletalk/internal/breaker"
	"codeberg.org/snonux/simpletalk/internal/cli"
	"codeberg.org/snonux/simpletalk/internal/dictionary"
	"codeberg.org/snonux/simpletalk/internal/keyword"
	"codeberg.org/snonux/simpletalk/internal/logging"
	"codeberg.org/snonux/simpletalk/internal/processor"
	"codeberg.org/snonux/simpletalk/internal/romanize"
	"codeberg.org/snonux/simpletalk/internal/simplify"
	"codeberg.org/snonux/simpletalk/internal/translation"
)

// app holds the assembled pipeline and everything that needs closing.
type app struct {
	processor *processor.Processor
	closers   []io.Closer
	log       *slog.Logger
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}

func newLogger(cfg *cli.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
}

// buildApp wires the pipeline stages selected by cfg. The caller must have
// checked the required keys.
func buildApp(ctx context.Context, cfg *cli.Config, logger *slog.Logger) (*app, error) {
	a := &app{log: logger}
	client := newOpenAIClient(cli.GetOpenAIKey(), cfg.OpenAIBaseURL)

	llmBreaker := breaker.New("llm", breaker.DefaultSettings(), logger)

	simplifier, err := buildSimplifier(ctx, cfg, client, llmBreaker)
	if err != nil {
		return nil, err
	}

	tagger, err := buildTagger(cfg, client, llmBreaker, logger)
	if err != nil {
		return nil, err
	}

	translator, err := buildTranslator(ctx, cfg, client, a, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	dict, err := buildDictionary(cfg, a, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.processor = processor.New(processor.Deps{
		Romanizer:  romanize.NewRomanizer(),
		Simplifier: simplifier,
		Translator: translator,
		Tagger:     tagger,
		Dictionary: dict,
		MaxSenses:  cfg.MaxSenses,
	}, logger)

	logger.Debug("pipeline ready",
		"simplifier", simplifier.Name(),
		"translator", translator.Name(),
		"tagger", tagger.Name(),
		"dictionary_cache", cfg.DictCache,
	)
	return a, nil
}

func buildSimplifier(ctx context.Context, cfg *cli.Config, client *openai.Client, b *breaker.Breaker) (simplify.Simplifier, error) {
	config := simplify.DefaultConfig()
	if cfg.LLMModel != "" {
		config.Model = cfg.LLMModel
	}
	if cfg.Temperature > 0 {
		config.Temperature = cfg.Temperature
	}
	if cfg.MaxTokens > 0 {
		config.MaxTokens = cfg.MaxTokens
	}

	switch cfg.LLMProvider {
	case "openai", "":
		return simplify.NewOpenAISimplifier(client, config, b), nil
	case "gemini":
		if cfg.LLMModel == "" {
			config.Model = simplify.DefaultGeminiModel
		}
		gemini, err := simplify.NewGeminiSimplifier(ctx, cli.GetGeminiKey(), "", config, b)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}

func buildTagger(cfg *cli.Config, client *openai.Client, b *breaker.Breaker, logger *slog.Logger) (keyword.Tagger, error) {
	switch cfg.Tagger {
	case "openai", "":
		return keyword.NewTaggerWithFallback(
			keyword.NewOpenAITagger(client, openai.GPT4oMini, b),
			keyword.NewRuleTagger(),
			logger,
		), nil
	case "rules":
		return keyword.NewRuleTagger(), nil
	default:
		return nil, fmt.Errorf("unknown tagger: %s", cfg.Tagger)
	}
}

func buildTranslator(ctx context.Context, cfg *cli.Config, client *openai.Client, a *app, logger *slog.Logger) (translation.Translator, error) {
	b := breaker.New("translation", breaker.DefaultSettings(), logger)

	var t translation.Translator
	switch cfg.Translator {
	case "web", "":
		t = translation.NewWebTranslator("", b)
	case "google-cloud":
		gc, err := translation.NewGoogleCloudTranslator(ctx, translation.CloudConfig{
			APIKey:          cfg.GoogleAPIKey,
			CredentialsFile: cfg.GoogleCredentials,
		}, b)
		if err != nil {
			return nil, fmt.Errorf("google cloud translation: %w", err)
		}
		a.closers = append(a.closers, gc)
		t = gc
	case "openai":
		t = translation.NewOpenAITranslator(client, openai.GPT4oMini, b)
	default:
		return nil, fmt.Errorf("unknown translator: %s", cfg.Translator)
	}

	return translation.NewCachedTranslator(t, translation.NewCache()), nil
}

func buildDictionary(cfg *cli.Config, a *app, logger *slog.Logger) (*dictionary.Client, error) {
	config := dictionary.Config{
		APIKey:  cli.GetDictionaryKey(),
		Breaker: breaker.New("dictionary", breaker.DefaultSettings(), logger),
	}

	if cfg.DictCache != "" {
		cache, err := dictionary.OpenSQLiteCache(cfg.DictCache, cfg.DictCacheTTL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, cache)
		config.Cache = cache
	}

	return dictionary.NewClient(config, logger), nil
}

func buildSpeaker(cfg *cli.Config, logger *slog.Logger) (*audio.Speaker, error) {
	config := audio.DefaultProviderConfig()
	config.Provider = cfg.AudioProvider
	config.Fallback = cfg.AudioFallback
	config.OutputDir = cfg.AudioDir
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIBaseURL = cfg.OpenAIBaseURL
	if cfg.OpenAIVoice != "" {
		config.OpenAIVoice = cfg.OpenAIVoice
	}
	if cfg.OpenAISpeechModel != "" {
		config.OpenAIModel = cfg.OpenAISpeechModel
	}

	provider, err := audio.NewProvider(config, logger)
	if err != nil {
		return nil, err
	}
	if err := provider.IsAvailable(); err != nil {
		return nil, fmt.Errorf("audio provider %s: %w", provider.Name(), err)
	}

	return audio.NewSpeaker(provider, cfg.AudioDir, logger)
}
