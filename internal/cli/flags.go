package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	LogLevel  string
	LogFormat string

	// Server flags
	Host        string
	Port        int
	BaseURL     string
	AudioDir    string
	CORSOrigins []string

	// Pipeline flags
	LLMProvider    string
	LLMModel       string
	Tagger         string
	Translator     string
	AudioProvider  string
	AudioFallback  bool
	DictCache      string
	DictCacheTTL   time.Duration
	MaxSenses      int
	RequestTimeout time.Duration
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:       "info",
		LogFormat:      "text",
		Host:           "0.0.0.0",
		Port:           8000,
		AudioDir:       "tts_files",
		CORSOrigins:    []string{"*"},
		LLMProvider:    "openai",
		Tagger:         "openai",
		Translator:     "web",
		AudioProvider:  "google",
		DictCacheTTL:   7 * 24 * time.Hour,
		MaxSenses:      3,
		RequestTimeout: 60 * time.Second,
	}
}
