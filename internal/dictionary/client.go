package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"codeberg.org/snonux/simpletalk/internal/breaker"
	"codeberg.org/snonux/simpletalk/internal/keyword"
)

const defaultBaseURL = "https://stdict.korean.go.kr/api/search.do"

// APIError is returned when the dictionary answers with a non-200 status
// or an error document.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("dictionary API error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("dictionary API returned status %d", e.StatusCode)
}

// Config holds the dictionary client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// Cache stores raw responses per word. Nil disables caching.
	Cache Cache
	// Breaker guards the API. Nil calls the API directly.
	Breaker *breaker.Breaker
}

// Client queries the standard dictionary search API.
type Client struct {
	config     Config
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a new dictionary client
func NewClient(config Config, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("component", "dictionary"),
	}
}

// Lookup returns up to max senses of word whose part of speech matches tag.
// Tags without a dictionary counterpart return an empty result without a
// request.
func (c *Client) Lookup(ctx context.Context, word string, tag keyword.Tag, max int) ([]Sense, error) {
	pos, ok := POSName(tag)
	if !ok {
		return []Sense{}, nil
	}

	resp, err := c.search(ctx, word)
	if err != nil {
		return nil, err
	}

	senses := FilterSenses(resp.Items, pos, max)

	c.log.DebugContext(ctx, "dictionary lookup",
		slog.String("word", word),
		slog.String("pos", pos),
		slog.Int("items", len(resp.Items)),
		slog.Int("senses", len(senses)),
	)

	return senses, nil
}

// search returns the decoded response for word, from the cache when
// possible. Only documents that decode and carry no error code are cached.
func (c *Client) search(ctx context.Context, word string) (*searchResponse, error) {
	if c.config.Cache != nil {
		body, ok, err := c.config.Cache.Get(ctx, word)
		if err != nil {
			c.log.WarnContext(ctx, "dictionary cache read failed", slog.String("error", err.Error()))
		} else if ok {
			if resp, err := parseResponse(body); err == nil && resp.ErrorCode == "" {
				return resp, nil
			}
			c.log.WarnContext(ctx, "dictionary cache entry unusable, refetching", slog.String("word", word))
		}
	}

	body, err := breaker.Do(c.config.Breaker, func() ([]byte, error) {
		return c.fetch(ctx, word)
	})
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup %q: %w", word, err)
	}

	resp, err := parseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup %q: %w", word, err)
	}
	if resp.ErrorCode != "" {
		return nil, &APIError{StatusCode: http.StatusOK, Code: resp.ErrorCode, Message: resp.Message}
	}

	if c.config.Cache != nil {
		if err := c.config.Cache.Put(ctx, word, body); err != nil {
			c.log.WarnContext(ctx, "dictionary cache write failed", slog.String("error", err.Error()))
		}
	}

	return resp, nil
}

func (c *Client) fetch(ctx context.Context, word string) ([]byte, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("q", word)
	params.Set("req_type", "xml")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "dictionary retry", slog.String("word", word), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.httpClient.Do(req)
}
