package keyword

import (
	"context"
	"strings"
	"unicode"

	"codeberg.org/snonux/simpletalk/internal/hangul"
)

// particles are stripped from the end of nouns, longest first.
var particles = []string{
	"에서는", "에게서", "으로는", "이라고",
	"께서", "에서", "에게", "한테", "으로", "부터", "까지", "처럼", "보다", "이랑", "하고",
	"은", "는", "이", "가", "을", "를", "에", "의", "로", "와", "과", "도", "만", "랑",
}

// endings maps conjugated verb endings to the dictionary ending, longest
// first. The part before the ending is the stem.
var endings = []struct {
	suffix  string
	replace string
}{
	{"했습니다", "하다"},
	{"했어요", "하다"},
	{"합니다", "하다"},
	{"해야", "하다"},
	{"해요", "하다"},
	{"했다", "하다"},
	{"했어", "하다"},
	{"한다", "하다"},
	{"었어요", "다"},
	{"았어요", "다"},
	{"습니다", "다"},
	{"었다", "다"},
	{"았다", "다"},
	{"어요", "다"},
	{"아요", "다"},
	{"는다", "다"},
}

var adverbs = map[string]bool{
	"매우": true, "아주": true, "정말": true, "너무": true, "잘": true,
	"많이": true, "빨리": true, "천천히": true, "다시": true, "함께": true,
	"조금": true, "더": true, "항상": true, "자주": true, "벌써": true,
	"아직": true, "이미": true, "곧": true, "모두": true, "같이": true,
	"안": true, "못": true, "왜": true, "어떻게": true, "가장": true,
}

// RuleTagger is an offline, dictionary-free tagger. It recognises common
// particles and verb endings and treats everything else as a noun.
type RuleTagger struct{}

// NewRuleTagger creates a new rule based tagger
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Name returns the tagger name
func (r *RuleTagger) Name() string {
	return "rules"
}

// Tag splits text on whitespace and punctuation and tags each word.
func (r *RuleTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	var tokens []Token

	for _, field := range strings.Fields(text) {
		word, punct := splitPunctuation(field)
		if word != "" {
			tokens = append(tokens, tagWord(word)...)
		}
		for _, p := range punct {
			tokens = append(tokens, Token{Surface: string(p), Tag: Punctuation})
		}
	}

	return tokens, nil
}

// splitPunctuation separates trailing punctuation from a word.
func splitPunctuation(field string) (string, []rune) {
	runes := []rune(field)
	end := len(runes)
	for end > 0 && unicode.IsPunct(runes[end-1]) {
		end--
	}
	word := strings.TrimFunc(string(runes[:end]), unicode.IsPunct)
	return word, runes[end:]
}

func tagWord(word string) []Token {
	if !hangul.ContainsHangul(word) {
		if isNumber(word) {
			return []Token{{Surface: word, Tag: Number}}
		}
		return []Token{{Surface: word, Tag: Foreign}}
	}

	if adverbs[word] {
		return []Token{{Surface: word, Tag: Adverb}}
	}

	if stem, ok := strings.CutSuffix(word, "이다"); ok && stem != "" {
		return []Token{{Surface: stem, Tag: Noun}, {Surface: "이다", Tag: Josa}}
	}

	if verb, ok := verbStem(word); ok {
		return []Token{{Surface: verb, Tag: Verb}}
	}

	for _, p := range particles {
		if stem, ok := strings.CutSuffix(word, p); ok && stem != "" {
			return []Token{{Surface: stem, Tag: Noun}, {Surface: p, Tag: Josa}}
		}
	}

	return []Token{{Surface: word, Tag: Noun}}
}

// verbStem returns the dictionary form of a conjugated verb.
func verbStem(word string) (string, bool) {
	if word == "해" {
		return "하다", true
	}
	for _, e := range endings {
		if stem, ok := strings.CutSuffix(word, e.suffix); ok && (stem != "" || e.replace == "하다") {
			return stem + e.replace, true
		}
	}

	// Polite ㅂ니다 and past ㅆ다: the tail sits on the stem's last syllable.
	if stem, ok := strings.CutSuffix(word, "니다"); ok && stem != "" {
		if base, ok := dropTail(stem, hangul.TailB); ok {
			return base + "다", true
		}
	}
	if stem, ok := strings.CutSuffix(word, "다"); ok && stem != "" {
		if base, ok := dropTail(stem, hangul.TailSS); ok {
			return base + "다", true
		}
		if len([]rune(word)) >= 2 {
			return word, true
		}
	}

	return "", false
}

// dropTail removes tail from the last syllable of s if it has it.
func dropTail(s string, tail int) (string, bool) {
	syllables := hangul.Split(s)
	last := len(syllables) - 1
	if last < 0 || !syllables[last].Hangul || syllables[last].Tail != tail {
		return "", false
	}
	syllables[last].Tail = hangul.TailNone
	return hangul.Join(syllables), true
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return s != ""
}
