package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultGoogleURL = "https://translate.google.com/translate_tts"

	// maxChunkRunes is the longest text the endpoint speaks in one request.
	maxChunkRunes = 100

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// GoogleProvider implements Provider with the Google Translate speech
// endpoint. It needs no key. Long text is spoken in chunks and the mp3
// frames are concatenated.
type GoogleProvider struct {
	baseURL string
	lang    string
	client  *http.Client
}

// NewGoogleProvider creates a new Google Translate TTS provider
func NewGoogleProvider(config *Config) *GoogleProvider {
	baseURL := config.GoogleURL
	if baseURL == "" {
		baseURL = defaultGoogleURL
	}
	lang := config.GoogleLang
	if lang == "" {
		lang = "ko"
	}

	return &GoogleProvider{
		baseURL: baseURL,
		lang:    lang,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable always succeeds; the endpoint needs no configuration.
func (p *GoogleProvider) IsAvailable() error {
	return nil
}

// GenerateAudio speaks text and writes the mp3 to outputFile.
func (p *GoogleProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateKoreanText(text); err != nil {
		return err
	}

	chunks := splitChunks(strings.TrimSpace(text), maxChunkRunes)

	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	for i, chunk := range chunks {
		if err := p.fetchChunk(ctx, out, chunk, i, len(chunks)); err != nil {
			out.Close()
			os.Remove(outputFile)
			return err
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

func (p *GoogleProvider) fetchChunk(ctx context.Context, w io.Writer, chunk string, idx, total int) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", p.lang)
	params.Set("q", chunk)
	params.Set("total", strconv.Itoa(total))
	params.Set("idx", strconv.Itoa(idx))
	params.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("Google TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Google TTS returned status %d", resp.StatusCode)
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		return fmt.Errorf("no audio data received from Google")
	}
	return nil
}

// splitChunks cuts text into pieces of at most max runes, breaking at
// spaces where possible.
func splitChunks(text string, max int) []string {
	var chunks []string
	var cur []rune

	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			chunks = append(chunks, s)
		}
		cur = cur[:0]
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > max {
			flush()
			chunks = append(chunks, string(w[:max]))
			w = w[max:]
		}

		need := len(w)
		if len(cur) > 0 {
			need++
		}
		if len(cur)+need > max {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	flush()

	return chunks
}
