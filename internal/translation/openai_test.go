package translation

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/simpletalk/internal/testutil"
)

func TestOpenAITranslatorTranslate(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	client, _ := testutil.NewOpenAIServer(t, func(req openai.ChatCompletionRequest) (string, string) {
		gotReq = req
		return " chives\n", ""
	})

	tr := NewOpenAITranslator(client, "", nil)
	got, err := tr.Translate(context.Background(), "부추")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if got != "chives" {
		t.Errorf("Translate() = %q, want chives", got)
	}
	if gotReq.Model != openai.GPT4oMini {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Messages[len(gotReq.Messages)-1].Content != "부추" {
		t.Errorf("user text not sent: %+v", gotReq.Messages)
	}
}

func TestOpenAITranslatorError(t *testing.T) {
	client, _ := testutil.NewOpenAIServer(t, func(openai.ChatCompletionRequest) (string, string) {
		return "", "quota exceeded"
	})

	got := TranslateOrMessage(context.Background(), NewOpenAITranslator(client, "", nil), "부추", testutil.NewTestLogger())
	if !strings.HasPrefix(got, "Translation error: OpenAI API error") {
		t.Errorf("TranslateOrMessage() = %q", got)
	}
}

func TestOpenAITranslator_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	tr := NewOpenAITranslator(openai.NewClient(apiKey), "", nil)
	translation, err := tr.Translate(context.Background(), "사과")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of '사과': %s", translation)
}
