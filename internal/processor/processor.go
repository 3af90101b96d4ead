package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/snonux/simpletalk/internal/dictionary"
	"codeberg.org/snonux/simpletalk/internal/keyword"
	"codeberg.org/snonux/simpletalk/internal/simplify"
	"codeberg.org/snonux/simpletalk/internal/translation"
)

// Romanizer renders the pronunciation of Korean text in Latin script.
type Romanizer interface {
	Pronounce(text string) string
}

// Dictionary looks up senses of a tagged word.
type Dictionary interface {
	Lookup(ctx context.Context, word string, tag keyword.Tag, max int) ([]dictionary.Sense, error)
}

// KeywordEntry is a keyword with its dictionary senses.
type KeywordEntry struct {
	Word        string             `json:"word"`
	POS         keyword.Tag        `json:"pos"`
	Definitions []dictionary.Sense `json:"definitions"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	OriginalText                     string         `json:"original_text"`
	OriginalRomanizedPronunciation   string         `json:"original_romanized_pronunciation"`
	TranslatedText                   string         `json:"translated_text"`
	TranslatedRomanizedPronunciation string         `json:"translated_romanized_pronunciation"`
	TranslatedEnglishTranslation     string         `json:"translated_english_translation"`
	KeywordDictionary                []KeywordEntry `json:"keyword_dictionary"`
}

// Processor wires the pipeline stages together.
type Processor struct {
	romanizer  Romanizer
	simplifier simplify.Simplifier
	translator translation.Translator
	tagger     keyword.Tagger
	dictionary Dictionary
	maxSenses  int
	log        *slog.Logger
}

// Deps are the stages a Processor runs.
type Deps struct {
	Romanizer  Romanizer
	Simplifier simplify.Simplifier
	Translator translation.Translator
	Tagger     keyword.Tagger
	Dictionary Dictionary
	// MaxSenses per keyword, dictionary.DefaultMaxSenses when zero.
	MaxSenses int
}

// New creates a new processor
func New(deps Deps, logger *slog.Logger) *Processor {
	if deps.MaxSenses <= 0 {
		deps.MaxSenses = dictionary.DefaultMaxSenses
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Processor{
		romanizer:  deps.Romanizer,
		simplifier: deps.Simplifier,
		translator: deps.Translator,
		tagger:     deps.Tagger,
		dictionary: deps.Dictionary,
		maxSenses:  deps.MaxSenses,
		log:        logger.With("component", "processor"),
	}
}

// Romanize returns the romanized pronunciation of text.
func (p *Processor) Romanize(text string) string {
	return p.romanizer.Pronounce(text)
}

// Simplify rewrites text into easy Korean.
func (p *Processor) Simplify(ctx context.Context, text string) (string, error) {
	return p.simplifier.Simplify(ctx, text)
}

// EasyKorean runs the full pipeline. A failing translation is reported
// inside the result; every other failure aborts the run.
func (p *Processor) EasyKorean(ctx context.Context, text string) (*Result, error) {
	start := time.Now()

	result := &Result{
		OriginalText:                   text,
		OriginalRomanizedPronunciation: p.romanizer.Pronounce(text),
	}

	simplified, err := p.simplifier.Simplify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("simplification failed: %w", err)
	}
	result.TranslatedText = simplified
	result.TranslatedRomanizedPronunciation = p.romanizer.Pronounce(simplified)
	result.TranslatedEnglishTranslation = translation.TranslateOrMessage(ctx, p.translator, simplified, p.log)

	entries, err := p.lookupKeywords(ctx, simplified)
	if err != nil {
		return nil, err
	}
	result.KeywordDictionary = entries

	p.log.InfoContext(ctx, "easy korean processed",
		slog.Int("input_runes", len([]rune(text))),
		slog.Int("keywords", len(entries)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// lookupKeywords tags text and returns the keywords that have at least one
// sense, in order of appearance.
func (p *Processor) lookupKeywords(ctx context.Context, text string) ([]KeywordEntry, error) {
	tokens, err := p.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("keyword tagging failed: %w", err)
	}

	entries := []KeywordEntry{}
	for _, kw := range keyword.Extract(tokens) {
		senses, err := p.dictionary.Lookup(ctx, kw.Word, kw.POS, p.maxSenses)
		if err != nil {
			return nil, err
		}
		if len(senses) == 0 {
			continue
		}
		entries = append(entries, KeywordEntry{
			Word:        kw.Word,
			POS:         kw.POS,
			Definitions: senses,
		})
	}

	return entries, nil
}
