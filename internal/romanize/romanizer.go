package romanize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/simpletalk/internal/hangul"
	"codeberg.org/snonux/simpletalk/internal/phonetic"
)

var leads = [...]string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
	"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

var vowels = [...]string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa", "wae",
	"oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
}

// tails covers every written tail so text that skipped the phonetic pass
// still romanizes to its coda sound.
var tails = [...]string{
	"", "k", "k", "k", "n", "n", "n", "t", "l", "k", "m", "l", "l", "l",
	"p", "l", "m", "p", "p", "t", "t", "ng", "t", "t", "k", "t", "p", "t",
}

// ambiguous letter pairs spell a vowel of their own, so a syllable boundary
// between them needs a separator. Pairs like "ai" or "ou" are not vowels
// and are written together.
var ambiguous = map[string]bool{
	"ae": true, "eo": true, "eu": true, "oe": true, "ui": true,
}

// Romanizer converts Hangul to Latin script.
type Romanizer struct {
	converter *phonetic.Converter
}

// NewRomanizer creates a new romanizer
func NewRomanizer() *Romanizer {
	return &Romanizer{converter: phonetic.NewConverter()}
}

// Pronounce returns the romanized pronunciation of text: the written form is
// first converted to its spoken form and then transliterated.
func (r *Romanizer) Pronounce(text string) string {
	return r.Romanize(r.converter.Convert(text))
}

// Romanize transliterates text syllable by syllable without applying any
// pronunciation rules. Text outside Hangul is returned in NFC.
func (r *Romanizer) Romanize(text string) string {
	syllables := hangul.Split(text)

	var b strings.Builder
	var prev *hangul.Syllable
	for i := range syllables {
		s := &syllables[i]
		if !s.Hangul {
			b.WriteRune(s.Other)
			prev = nil
			continue
		}

		lead := leads[s.Lead]
		if prev != nil && s.Lead == hangul.LeadR && prev.Tail == hangul.TailL {
			lead = "l"
		}
		if prev != nil && needsHyphen(prev, s) {
			b.WriteByte('-')
		}

		b.WriteString(lead)
		b.WriteString(vowels[s.Vowel])
		b.WriteString(tails[s.Tail])
		prev = s
	}

	return norm.NFC.String(b.String())
}

// needsHyphen reports whether joining prev and next without a separator
// would be read differently.
func needsHyphen(prev, next *hangul.Syllable) bool {
	if next.Lead != hangul.LeadNone {
		return false
	}
	if prev.Tail == hangul.TailNG {
		return true
	}
	if prev.Tail != hangul.TailNone {
		return false
	}

	v := vowels[prev.Vowel]
	n := vowels[next.Vowel]
	return ambiguous[v[len(v)-1:]+n[:1]]
}
