package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"codeberg.org/snonux/simpletalk/internal/testutil"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"short", "너 오늘 뭐 해?", 100, []string{"너 오늘 뭐 해?"}},
		{"breaks at spaces", "가나 다라 마바", 5, []string{"가나 다라", "마바"}},
		{"long word is cut", "가나다라마바사", 3, []string{"가나다", "라마바", "사"}},
		{"collapses whitespace", "  가  나 \n 다 ", 100, []string{"가 나 다"}},
		{"empty", "   ", 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitChunks(tt.text, tt.max)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("splitChunks(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
			for _, c := range got {
				if n := len([]rune(c)); n > tt.max {
					t.Errorf("chunk %q has %d runes, max %d", c, n, tt.max)
				}
			}
		})
	}
}

func TestGoogleProviderGenerateAudio(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("tl") != "ko" || q.Get("client") != "tw-ob" || r.Header.Get("User-Agent") == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		mu.Lock()
		queries = append(queries, q.Get("q"))
		mu.Unlock()
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(testutil.MP3Data())
	}))
	defer srv.Close()

	p := NewGoogleProvider(&Config{GoogleURL: srv.URL})
	out := filepath.Join(t.TempDir(), "nested", "speech.mp3")

	text := strings.Repeat("부추를 먹었다 ", 20)
	if err := p.GenerateAudio(context.Background(), text, out); err != nil {
		t.Fatalf("GenerateAudio() unexpected error: %v", err)
	}

	if len(queries) < 2 {
		t.Fatalf("expected the text to be split, got %d requests", len(queries))
	}

	want := strings.Repeat(string(testutil.MP3Data()), len(queries))
	testutil.AssertFileContent(t, out, []byte(want))
}

func TestGoogleProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewGoogleProvider(&Config{GoogleURL: srv.URL})
	out := filepath.Join(t.TempDir(), "speech.mp3")

	err := p.GenerateAudio(context.Background(), "부추", out)
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Errorf("GenerateAudio() error = %v, want status error", err)
	}
	testutil.AssertFileNotExists(t, out)

	if err := p.GenerateAudio(context.Background(), " ", out); err == nil {
		t.Error("GenerateAudio() expected validation error")
	}
}

func TestGoogleProviderName(t *testing.T) {
	p := NewGoogleProvider(DefaultProviderConfig())
	if p.Name() != "google" {
		t.Errorf("Name() = %q", p.Name())
	}
	if err := p.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() = %v", err)
	}
}
