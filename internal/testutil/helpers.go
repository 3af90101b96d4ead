package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// NewTestLogger returns a logger that discards everything
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ChatReply produces the assistant content for a chat completion request.
// Returning a non-empty error string makes the server answer with HTTP 500.
type ChatReply func(req openai.ChatCompletionRequest) (content string, errMsg string)

// NewOpenAIServer starts a fake OpenAI API that answers chat completions
// with reply, speech requests with a few bytes of fake mp3 data and model
// listings with TestModels. The returned client points at the server.
func NewOpenAIServer(t *testing.T, reply ChatReply) (*openai.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/chat/completions"):
			var req openai.ChatCompletionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			content, errMsg := reply(req)
			if errMsg != "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": errMsg, "type": "server_error"},
				})
				return
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				ID:     "chatcmpl-test",
				Object: "chat.completion",
				Model:  req.Model,
				Choices: []openai.ChatCompletionChoice{
					{
						Index: 0,
						Message: openai.ChatCompletionMessage{
							Role:    openai.ChatMessageRoleAssistant,
							Content: content,
						},
						FinishReason: openai.FinishReasonStop,
					},
				},
			})

		case strings.HasSuffix(r.URL.Path, "/audio/speech"):
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write(MP3Data())

		case strings.HasSuffix(r.URL.Path, "/models"):
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ModelsList{Models: TestModels()})

		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = srv.URL + "/v1"
	config.HTTPClient = srv.Client()

	return openai.NewClientWithConfig(config), srv
}

// TestModels is the model list served by the fake OpenAI API.
func TestModels() []openai.Model {
	ids := []string{"gpt-4o-mini", "gpt-4o", "tts-1", "gpt-4o-mini-tts", "dall-e-3", "text-embedding-3-small", "whisper-1"}
	models := make([]openai.Model, len(ids))
	for i, id := range ids {
		models[i] = openai.Model{ID: id, Object: "model", OwnedBy: "openai"}
	}
	return models
}

// MP3Data returns a minimal fake mp3 frame header
func MP3Data() []byte {
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// CaptureOutput captures stdout during test execution
func CaptureOutput(t *testing.T, f func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		out, _ := io.ReadAll(r)
		done <- string(out)
	}()

	f()

	w.Close()
	os.Stdout = oldStdout
	return <-done
}
