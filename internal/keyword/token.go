package keyword

import "context"

// Tag is a part-of-speech label. The names follow the Open Korean Text
// tagger so LLM output and offline tagging share one vocabulary.
type Tag string

const (
	Noun        Tag = "Noun"
	Verb        Tag = "Verb"
	Adjective   Tag = "Adjective"
	Adverb      Tag = "Adverb"
	Josa        Tag = "Josa"
	Eomi        Tag = "Eomi"
	Punctuation Tag = "Punctuation"
	Number      Tag = "Number"
	Foreign     Tag = "Foreign"
	Other       Tag = "Other"
)

var knownTags = map[Tag]bool{
	Noun: true, Verb: true, Adjective: true, Adverb: true, Josa: true,
	Eomi: true, Punctuation: true, Number: true, Foreign: true, Other: true,
}

// ParseTag returns the tag for s, or Other for unknown labels.
func ParseTag(s string) Tag {
	if t := Tag(s); knownTags[t] {
		return t
	}
	return Other
}

// IsContent reports whether words with this tag are looked up.
func (t Tag) IsContent() bool {
	switch t {
	case Noun, Verb, Adjective, Adverb:
		return true
	}
	return false
}

// Token is one tagged unit. Verbs and adjectives carry their dictionary
// form (stem + 다).
type Token struct {
	Surface string `json:"word"`
	Tag     Tag    `json:"tag"`
}

// Keyword is an extracted content word.
type Keyword struct {
	Word string `json:"word"`
	POS  Tag    `json:"pos"`
}

// Tagger splits text into tagged tokens.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
	Name() string
}
