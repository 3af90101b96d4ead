package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/simpletalk/internal"
)

// ErrMissingKey is returned when a required API key is not configured.
var ErrMissingKey = errors.New("missing API key")

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simpletalk",
		Short: "Korean text simplification service",
		Long: `simpletalk turns hard Korean sentences into plain Korean.

It simplifies text with a language model, romanizes the pronunciation,
translates to English, looks up keywords in the Standard Korean Language
Dictionary and synthesizes speech.

Examples:
  simpletalk serve                      # Start the HTTP API on :8000
  simpletalk romanize 한국어            # Print the romanized pronunciation
  simpletalk simplify "니 오늘 뭐하노?"  # Simplify one sentence
  simpletalk batch sentences.txt        # Run the full pipeline per line`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()

	// Global flags
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.simpletalk.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Pipeline flags
	pf.StringVar(&flags.LLMProvider, "llm-provider", flags.LLMProvider, "Simplification backend: openai or gemini")
	pf.StringVar(&flags.LLMModel, "llm-model", "", "Simplification model (default: gpt-4o-mini, gemini-2.5-flash for gemini)")
	pf.StringVar(&flags.Tagger, "tagger", flags.Tagger, "Part-of-speech tagger: openai (falls back to rules) or rules")
	pf.StringVar(&flags.Translator, "translator", flags.Translator, "English translation backend: web, google-cloud or openai")
	pf.StringVar(&flags.DictCache, "dict-cache", "", "SQLite file caching dictionary responses (empty disables the cache)")
	pf.DurationVar(&flags.DictCacheTTL, "dict-cache-ttl", flags.DictCacheTTL, "How long cached dictionary responses stay valid")
	pf.IntVar(&flags.MaxSenses, "max-senses", flags.MaxSenses, "Dictionary senses per keyword")

	bindFlagsToViper(pf, map[string]string{
		"log.level":             "log-level",
		"log.format":            "log-format",
		"llm.provider":          "llm-provider",
		"llm.model":             "llm-model",
		"keyword.tagger":        "tagger",
		"translation.provider":  "translator",
		"dictionary.cache":      "dict-cache",
		"dictionary.cache_ttl":  "dict-cache-ttl",
		"dictionary.max_senses": "max-senses",
	})
}

// AddServeFlags adds the flags of the serve command.
func AddServeFlags(cmd *cobra.Command, flags *Flags) {
	f := cmd.Flags()

	f.StringVar(&flags.Host, "host", flags.Host, "Address to listen on")
	f.IntVarP(&flags.Port, "port", "p", flags.Port, "Port to listen on")
	f.StringVar(&flags.BaseURL, "base-url", "", "Public base URL of the speech files (default: derived from RENDER_EXTERNAL_HOSTNAME)")
	f.StringVar(&flags.AudioDir, "audio-dir", flags.AudioDir, "Directory the speech files are written to and served from")
	f.StringSliceVar(&flags.CORSOrigins, "cors-origins", flags.CORSOrigins, "Allowed CORS origins")
	f.StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Speech backend: google or openai")
	f.BoolVar(&flags.AudioFallback, "audio-fallback", false, "Fall back to the other speech backend on errors")
	f.DurationVar(&flags.RequestTimeout, "request-timeout", flags.RequestTimeout, "Upper bound for one API request")

	bindOnRun(cmd, map[string]string{
		"server.host":            "host",
		"server.port":            "port",
		"server.base_url":        "base-url",
		"server.cors_origins":    "cors-origins",
		"server.request_timeout": "request-timeout",
		"audio.directory":        "audio-dir",
		"audio.provider":         "audio-provider",
		"audio.fallback":         "audio-fallback",
	})
}

// AddAudioDirFlag adds only the audio directory flag, for commands that
// work on the generated files.
func AddAudioDirFlag(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringVar(&flags.AudioDir, "audio-dir", flags.AudioDir, "Directory the speech files are written to")
	bindOnRun(cmd, map[string]string{"audio.directory": "audio-dir"})
}

// bindOnRun binds subcommand flags when that subcommand runs. Several
// subcommands share keys and viper keeps only the last binding per key.
func bindOnRun(cmd *cobra.Command, keys map[string]string) {
	cmd.PreRun = func(c *cobra.Command, args []string) {
		bindFlagsToViper(c.Flags(), keys)
	}
}

func bindFlagsToViper(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, fs.Lookup(name))
	}
}

// LoadDotEnv loads KEY=value pairs from the given files (default ".env")
// into the environment. Variables that are already set win and missing
// files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if err := LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}

		// Search config in home and working directory with name ".simpletalk" (without extension)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".simpletalk")
	}

	// Environment variables: SIMPLETALK_SERVER_PORT overrides server.port
	viper.SetEnvPrefix("SIMPLETALK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetDictionaryKey retrieves the Standard Korean Language Dictionary API key
func GetDictionaryKey() string {
	if key := os.Getenv("KOREAN_DICT_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("dictionary.api_key")
}

// GetGeminiKey retrieves the Gemini API key
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}

// RequireKeys checks the keys every pipeline run needs. The messages match
// the ones operators already know from the deployment docs.
func RequireKeys() error {
	if GetOpenAIKey() == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY 환경 변수가 설정되지 않았습니다. API 키를 설정해주세요.", ErrMissingKey)
	}
	if GetDictionaryKey() == "" {
		return fmt.Errorf("%w: KOREAN_DICT_API_KEY 환경 변수가 설정되지 않았습니다. API 키를 설정해주세요.", ErrMissingKey)
	}
	if viper.GetString("llm.provider") == "gemini" && GetGeminiKey() == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY 환경 변수가 설정되지 않았습니다. API 키를 설정해주세요.", ErrMissingKey)
	}
	return nil
}
