package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/simpletalk/internal/breaker"
	"codeberg.org/snonux/simpletalk/internal/keyword"
	"codeberg.org/snonux/simpletalk/internal/testutil"
)

const budchuXML = `<channel>
<total>4</total>
<item><word>부추</word><sup_no>1</sup_no><pos>명사</pos><sense><definition>백합과의 여러해살이풀.</definition></sense></item>
<item><word>부추</word><sup_no>1</sup_no><pos>명사</pos><sense><definition>중복</definition></sense></item>
<item><word>부추</word><sup_no>2</sup_no><pos>대명사</pos><sense><definition>대명사</definition></sense></item>
<item><word>부추</word><sup_no>3</sup_no><pos>동사</pos><sense><definition>부추기다의 준말.</definition></sense></item>
</channel>`

func newTestClient(t *testing.T, handler http.HandlerFunc, config Config) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config.BaseURL = srv.URL
	if config.APIKey == "" {
		config.APIKey = "test-key"
	}
	c := NewClient(config, testutil.NewTestLogger())
	c.retryDelay = time.Millisecond
	return c
}

func TestClientLookup(t *testing.T) {
	var query atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.Query())
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.Write([]byte(budchuXML))
	}, Config{})

	tests := []struct {
		tag  keyword.Tag
		want []Sense
	}{
		{keyword.Noun, []Sense{{POS: "명사", Definition: "백합과의 여러해살이풀."}}},
		{keyword.Verb, []Sense{{POS: "동사", Definition: "부추기다의 준말."}}},
		{keyword.Adverb, []Sense{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			got, err := c.Lookup(context.Background(), "부추", tt.tag, DefaultMaxSenses)
			if err != nil {
				t.Fatalf("Lookup() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}

	q := query.Load().(url.Values)
	if q.Get("key") != "test-key" || q.Get("q") != "부추" || q.Get("req_type") != "xml" {
		t.Errorf("unexpected query: %v", q)
	}
}

func TestClientLookupUnmappedTag(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, Config{})

	got, err := c.Lookup(context.Background(), "를", keyword.Josa, 3)
	if err != nil || len(got) != 0 {
		t.Errorf("Lookup() = %v, %v; want empty result", got, err)
	}
	if calls.Load() != 0 {
		t.Errorf("unmapped tag made %d requests", calls.Load())
	}
}

func TestClientRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(budchuXML))
	}, Config{})

	got, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3)
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Lookup() = %v, want one sense", got)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestClientAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantCode   string
	}{
		{"server error after retry", http.StatusServiceUnavailable, "", http.StatusServiceUnavailable, ""},
		{"forbidden", http.StatusForbidden, "", http.StatusForbidden, ""},
		{"error document", http.StatusOK, `<error><error_code>020</error_code><message>등록되지 않은 키</message></error>`, http.StatusOK, "020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, Config{})

			_, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Lookup() error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus || apiErr.Code != tt.wantCode {
				t.Errorf("APIError = %+v", apiErr)
			}
		})
	}
}

func TestClientMalformedXML(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>maintenance"))
	}, Config{})

	if _, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3); err == nil {
		t.Error("Lookup() expected error for malformed xml")
	}
}

func TestClientBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	b := breaker.New("dictionary", breaker.Settings{ConsecutiveFailures: 2, OpenTimeout: time.Minute}, testutil.NewTestLogger())
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}, Config{Breaker: b})

	for i := 0; i < 2; i++ {
		if _, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3); err == nil {
			t.Fatal("Lookup() expected error")
		}
	}

	_, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Lookup() error = %v, want open breaker", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestClientUsesCache(t *testing.T) {
	cache, err := OpenSQLiteCache(filepath.Join(t.TempDir(), "cache", "dict.db"), time.Hour)
	if err != nil {
		t.Fatalf("OpenSQLiteCache() error: %v", err)
	}
	defer cache.Close()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(budchuXML))
	}, Config{Cache: cache})

	for _, tag := range []keyword.Tag{keyword.Noun, keyword.Verb, keyword.Noun} {
		got, err := c.Lookup(context.Background(), "부추", tag, 3)
		if err != nil {
			t.Fatalf("Lookup() unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("Lookup(%s) = %v, want one sense", tag, got)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 with cache", calls.Load())
	}
}

func TestClientDoesNotCacheFailedResponses(t *testing.T) {
	tests := []struct {
		name  string
		first string
	}{
		{"error document", `<error><error_code>020</error_code><message>quota exceeded</message></error>`},
		{"malformed xml", "<html><body>maintenance"},
	}

	for _, tt := range tests {
		first := tt.first
		t.Run(tt.name, func(t *testing.T) {
			cache, err := OpenSQLiteCache(filepath.Join(t.TempDir(), "dict.db"), 7*24*time.Hour)
			if err != nil {
				t.Fatalf("OpenSQLiteCache() error: %v", err)
			}
			defer cache.Close()

			var calls atomic.Int32
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) == 1 {
					w.Write([]byte(first))
					return
				}
				w.Write([]byte(budchuXML))
			}, Config{Cache: cache})

			if _, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3); err == nil {
				t.Fatal("first Lookup() expected error")
			}

			got, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3)
			if err != nil {
				t.Fatalf("second Lookup() unexpected error: %v", err)
			}
			if len(got) != 1 {
				t.Errorf("second Lookup() = %v, want one sense", got)
			}
			if calls.Load() != 2 {
				t.Errorf("calls = %d, want 2", calls.Load())
			}

			// The good response is cached now.
			if _, err := c.Lookup(context.Background(), "부추", keyword.Noun, 3); err != nil {
				t.Fatalf("third Lookup() unexpected error: %v", err)
			}
			if calls.Load() != 2 {
				t.Errorf("calls = %d after cached lookup, want 2", calls.Load())
			}
		})
	}
}

func TestClientRefetchesUnusableCacheEntry(t *testing.T) {
	cache, err := OpenSQLiteCache(filepath.Join(t.TempDir(), "dict.db"), time.Hour)
	if err != nil {
		t.Fatalf("OpenSQLiteCache() error: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Put(ctx, "부추", []byte(`<error><error_code>020</error_code></error>`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(budchuXML))
	}, Config{Cache: cache})

	got, err := c.Lookup(ctx, "부추", keyword.Noun, 3)
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if len(got) != 1 || calls.Load() != 1 {
		t.Errorf("Lookup() = %v with %d calls, want one sense from one request", got, calls.Load())
	}
}
