package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

const defaultWebURL = "https://translate.googleapis.com/translate_a/single"

// WebTranslator uses the public Google Translate web endpoint. It needs no
// key but is rate limited.
type WebTranslator struct {
	baseURL string
	client  *http.Client
	breaker *breaker.Breaker
}

// NewWebTranslator creates a web translator. An empty baseURL uses the
// public endpoint.
func NewWebTranslator(baseURL string, b *breaker.Breaker) *WebTranslator {
	if baseURL == "" {
		baseURL = defaultWebURL
	}
	return &WebTranslator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: b,
	}
}

// Name returns the translator name
func (w *WebTranslator) Name() string {
	return "google-web"
}

// Translate translates Korean text to English.
func (w *WebTranslator) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if len([]rune(text)) > MaxTextLength {
		return "", fmt.Errorf("text exceeds %d characters", MaxTextLength)
	}

	return breaker.Do(w.breaker, func() (string, error) {
		return w.fetch(ctx, text)
	})
}

func (w *WebTranslator) fetch(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "ko")
	params.Set("tl", "en")
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation request failed with status %d", resp.StatusCode)
	}

	return parseWebResponse(body)
}

// parseWebResponse joins the translated segments of a response shaped
// like [[["Hello.","안녕.",null,null,10],["How are you?","잘 지내?",...]],null,"ko"].
func parseWebResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translation response: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return b.String(), nil
}
