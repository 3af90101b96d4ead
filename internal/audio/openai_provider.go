package audio

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider speaks text with the OpenAI speech API. Responses can be
// kept in a content-addressed cache so a repeated sentence costs one call.
type OpenAIProvider struct {
	client   *openai.Client
	config   *Config
	cacheDir string // empty disables the cache
	log      *slog.Logger
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config, logger *slog.Logger) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	p := &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		log:    logger.With("component", "audio"),
	}

	if config.EnableCache && config.CacheDir != "" {
		if err := os.MkdirAll(config.CacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		p.cacheDir = config.CacheDir
	}

	return p, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable reports whether a key is configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// GenerateAudio writes the spoken text to outputFile. On failure no file
// is left behind, since outputFile lives in the served directory.
func (p *OpenAIProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateKoreanText(text); err != nil {
		return err
	}
	text = strings.TrimSpace(text)

	cached := p.cachePath(text)
	if cached != "" {
		if _, err := os.Stat(cached); err == nil {
			return copyFile(cached, outputFile)
		}
	}

	speech, err := p.synthesize(ctx, text)
	if err != nil {
		return err
	}
	defer speech.Close()

	if err := writeAudio(outputFile, speech); err != nil {
		return err
	}

	if cached != "" {
		if err := copyFile(outputFile, cached); err != nil {
			p.log.WarnContext(ctx, "speech cache write failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

func (p *OpenAIProvider) synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if p.supportsInstructions() && p.config.OpenAIInstruction != "" {
		req.Instructions = p.config.OpenAIInstruction
	}

	p.log.DebugContext(ctx, "OpenAI TTS request",
		slog.String("model", p.config.OpenAIModel),
		slog.String("voice", p.config.OpenAIVoice),
		slog.Float64("speed", p.config.OpenAISpeed),
		slog.Int("runes", len([]rune(text))),
	)

	resp, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		if p.supportsInstructions() && strings.Contains(err.Error(), "does not have access to model") {
			return nil, fmt.Errorf("OpenAI TTS API error: %w (set audio.openai_model to tts-1 when %s is not enabled for the key)", err, p.config.OpenAIModel)
		}
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	return resp, nil
}

func (p *OpenAIProvider) supportsInstructions() bool {
	return p.config.OpenAIModel == "gpt-4o-mini-tts" || p.config.OpenAIModel == "gpt-4o-mini-audio-preview"
}

// cachePath is where the speech for text under the current voice settings
// is cached, or "" without a cache.
func (p *OpenAIProvider) cachePath(text string) string {
	if p.cacheDir == "" {
		return ""
	}

	h := md5.New()
	io.WriteString(h, text)
	io.WriteString(h, p.config.OpenAIModel)
	io.WriteString(h, p.config.OpenAIVoice)
	fmt.Fprintf(h, "%.2f", p.config.OpenAISpeed)
	if p.supportsInstructions() {
		io.WriteString(h, p.config.OpenAIInstruction)
	}
	sum := hex.EncodeToString(h.Sum(nil))

	return filepath.Join(p.cacheDir, sum[:2], sum[2:]+".mp3")
}

// writeAudio streams r into path and removes the file again when nothing
// or only part of the audio could be written.
func writeAudio(path string, r io.Reader) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	written, err := io.Copy(out, r)
	closeErr := out.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("failed to write audio file: %w", err)
	case written == 0:
		err = fmt.Errorf("no audio data received")
	case closeErr != nil:
		err = fmt.Errorf("failed to write audio file: %w", closeErr)
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	return writeAudio(dst, source)
}
