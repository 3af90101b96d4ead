package keyword

import (
	"context"
	"reflect"
	"testing"
)

func TestRuleTagger(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "question",
			text: "너 오늘 뭐 해?",
			want: []Token{
				{"너", Noun}, {"오늘", Noun}, {"뭐", Noun}, {"하다", Verb}, {"?", Punctuation},
			},
		},
		{
			name: "particle and past tense",
			text: "부추를 먹었다.",
			want: []Token{
				{"부추", Noun}, {"를", Josa}, {"먹다", Verb}, {".", Punctuation},
			},
		},
		{
			name: "polite endings",
			text: "서류를 더 내야 합니다",
			want: []Token{
				{"서류", Noun}, {"를", Josa}, {"더", Adverb}, {"내야", Noun}, {"하다", Verb},
			},
		},
		{
			name: "bieup polite ending",
			text: "학교에 갑니다",
			want: []Token{
				{"학교", Noun}, {"에", Josa}, {"가다", Verb},
			},
		},
		{
			name: "past with ss tail",
			text: "집에 갔다",
			want: []Token{
				{"집", Noun}, {"에", Josa}, {"가다", Verb},
			},
		},
		{
			name: "copula",
			text: "학생이다",
			want: []Token{
				{"학생", Noun}, {"이다", Josa},
			},
		},
		{
			name: "numbers and foreign words",
			text: "GPT 2024",
			want: []Token{
				{"GPT", Foreign}, {"2024", Number},
			},
		},
	}

	tagger := NewRuleTagger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tagger.Tag(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Tag() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tag(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRuleTaggerEmpty(t *testing.T) {
	got, err := NewRuleTagger().Tag(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Tag() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Tag() = %v, want no tokens", got)
	}
}
