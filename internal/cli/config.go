package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration after flags, config file
// and environment have been merged by viper.
type Config struct {
	LogLevel  string
	LogFormat string

	Host           string
	Port           int
	BaseURL        string
	AudioDir       string
	CORSOrigins    []string
	RequestTimeout time.Duration

	LLMProvider string
	LLMModel    string
	Temperature float32
	MaxTokens   int

	Tagger     string
	Translator string

	AudioProvider     string
	AudioFallback     bool
	OpenAIVoice       string
	OpenAISpeechModel string

	OpenAIBaseURL string

	GoogleCredentials string
	GoogleAPIKey      string

	DictCache    string
	DictCacheTTL time.Duration
	MaxSenses    int
}

// LoadConfig reads the merged configuration. Values that were never set
// fall back to the flag defaults in f.
func LoadConfig(f *Flags) *Config {
	cfg := &Config{
		LogLevel:          stringOr("log.level", f.LogLevel),
		LogFormat:         stringOr("log.format", f.LogFormat),
		Host:              stringOr("server.host", f.Host),
		Port:              intOr("server.port", f.Port),
		BaseURL:           viper.GetString("server.base_url"),
		AudioDir:          stringOr("audio.directory", f.AudioDir),
		CORSOrigins:       f.CORSOrigins,
		RequestTimeout:    durationOr("server.request_timeout", f.RequestTimeout),
		LLMProvider:       stringOr("llm.provider", f.LLMProvider),
		LLMModel:          viper.GetString("llm.model"),
		Temperature:       float32(viper.GetFloat64("llm.temperature")),
		MaxTokens:         viper.GetInt("llm.max_tokens"),
		Tagger:            stringOr("keyword.tagger", f.Tagger),
		Translator:        stringOr("translation.provider", f.Translator),
		AudioProvider:     stringOr("audio.provider", f.AudioProvider),
		AudioFallback:     viper.GetBool("audio.fallback") || f.AudioFallback,
		OpenAIVoice:       viper.GetString("audio.openai_voice"),
		OpenAISpeechModel: viper.GetString("audio.openai_model"),
		OpenAIBaseURL:     viper.GetString("openai.base_url"),
		GoogleCredentials: viper.GetString("translation.google_credentials"),
		GoogleAPIKey:      viper.GetString("translation.google_api_key"),
		DictCache:         viper.GetString("dictionary.cache"),
		DictCacheTTL:      durationOr("dictionary.cache_ttl", f.DictCacheTTL),
		MaxSenses:         intOr("dictionary.max_senses", f.MaxSenses),
	}

	if viper.IsSet("server.cors_origins") {
		if origins := viper.GetStringSlice("server.cors_origins"); len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	cfg.BaseURL = ResolveBaseURL(cfg.BaseURL, os.Getenv("RENDER_EXTERNAL_HOSTNAME"), cfg.Port)

	return cfg
}

// ResolveBaseURL picks the public URL speech files are linked under. An
// explicit URL wins, then the hostname Render assigns to the service, then
// localhost on the listening port.
func ResolveBaseURL(configured, renderHost string, port int) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	if renderHost != "" {
		return "https://" + renderHost
	}
	if port == 0 {
		port = 8000
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

func stringOr(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) int {
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return def
}

func durationOr(key string, def time.Duration) time.Duration {
	if v := viper.GetDuration(key); v != 0 {
		return v
	}
	return def
}
