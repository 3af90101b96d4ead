package simplify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGeminiServer(t *testing.T, reply string, status int, got *map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			json.NewDecoder(r.Body).Decode(got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": status, "message": reply, "status": "INTERNAL"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": reply}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiSimplifierSimplify(t *testing.T) {
	var body map[string]any
	srv := newGeminiServer(t, " 지금 가진 걸 당연하게 생각하는 거야? ", http.StatusOK, &body)

	s, err := NewGeminiSimplifier(context.Background(), "test-key", srv.URL+"/", Config{}, nil)
	if err != nil {
		t.Fatalf("NewGeminiSimplifier() error: %v", err)
	}

	got, err := s.Simplify(context.Background(), "배가 불렀네?")
	if err != nil {
		t.Fatalf("Simplify() unexpected error: %v", err)
	}
	if got != "지금 가진 걸 당연하게 생각하는 거야?" {
		t.Errorf("Simplify() = %q", got)
	}

	if _, ok := body["systemInstruction"]; !ok {
		t.Errorf("request has no system instruction: %v", body)
	}
	if s.Name() != "gemini:"+DefaultGeminiModel {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestGeminiSimplifierErrors(t *testing.T) {
	if _, err := NewGeminiSimplifier(context.Background(), "", "", Config{}, nil); err == nil {
		t.Error("NewGeminiSimplifier() expected error without key")
	}

	srv := newGeminiServer(t, "backend failure", http.StatusInternalServerError, nil)
	s, err := NewGeminiSimplifier(context.Background(), "test-key", srv.URL+"/", Config{}, nil)
	if err != nil {
		t.Fatalf("NewGeminiSimplifier() error: %v", err)
	}
	if _, err := s.Simplify(context.Background(), "배가 불렀네?"); err == nil {
		t.Error("Simplify() expected error")
	}
}
