package keyword

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/snonux/simpletalk/internal/testutil"
)

type stubTagger struct {
	name   string
	tokens []Token
	err    error
	calls  int
}

func (s *stubTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	s.calls++
	return s.tokens, s.err
}

func (s *stubTagger) Name() string { return s.name }

func TestTaggerWithFallback(t *testing.T) {
	tests := []struct {
		name          string
		primaryErr    error
		wantSurface   string
		wantFallbacks int
	}{
		{"primary succeeds", nil, "primary", 0},
		{"primary fails", errors.New("down"), "fallback", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubTagger{name: "p", tokens: []Token{{"primary", Noun}}, err: tt.primaryErr}
			fallback := &stubTagger{name: "f", tokens: []Token{{"fallback", Noun}}}

			tagger := NewTaggerWithFallback(primary, fallback, testutil.NewTestLogger())
			got, err := tagger.Tag(context.Background(), "x")
			if err != nil {
				t.Fatalf("Tag() unexpected error: %v", err)
			}
			if len(got) != 1 || got[0].Surface != tt.wantSurface {
				t.Errorf("Tag() = %v, want %s", got, tt.wantSurface)
			}
			if fallback.calls != tt.wantFallbacks {
				t.Errorf("fallback calls = %d, want %d", fallback.calls, tt.wantFallbacks)
			}
		})
	}
}

func TestTaggerWithFallbackBothFail(t *testing.T) {
	primary := &stubTagger{name: "p", err: errors.New("primary down")}
	fallback := &stubTagger{name: "f", err: errors.New("fallback down")}

	_, err := NewTaggerWithFallback(primary, fallback, nil).Tag(context.Background(), "x")
	if err == nil || err.Error() != "fallback down" {
		t.Errorf("Tag() error = %v, want fallback error", err)
	}
}

func TestTaggerWithFallbackName(t *testing.T) {
	tagger := NewTaggerWithFallback(&stubTagger{name: "openai"}, NewRuleTagger(), nil)
	if got, want := tagger.Name(), "openai (fallback: rules)"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
