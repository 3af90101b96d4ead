package hangul

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Conjoining jamo ranges produced by NFD decomposition of Hangul syllables.
const (
	leadBase  = 0x1100
	vowelBase = 0x1161
	tailBase  = 0x11A7

	leadCount  = 19
	vowelCount = 21
	tailCount  = 28
)

// Lead consonant indices (initial position).
const (
	LeadG = iota
	LeadGG
	LeadN
	LeadD
	LeadDD
	LeadR
	LeadM
	LeadB
	LeadBB
	LeadS
	LeadSS
	LeadNone // ㅇ, silent in initial position
	LeadJ
	LeadJJ
	LeadCh
	LeadK
	LeadT
	LeadP
	LeadH
)

// Tail consonant indices (final position). TailNone means an open syllable.
const (
	TailNone = iota
	TailG
	TailGG
	TailGS
	TailN
	TailNJ
	TailNH
	TailD
	TailL
	TailLG
	TailLM
	TailLB
	TailLS
	TailLT
	TailLP
	TailLH
	TailM
	TailB
	TailBS
	TailS
	TailSS
	TailNG
	TailJ
	TailCh
	TailK
	TailT
	TailP
	TailH
)

// Vowel indices used by the pronunciation rules.
const (
	VowelA   = 0
	VowelEo  = 4
	VowelYeo = 6
	VowelI   = 20
)

// Syllable is either a decomposed Hangul syllable or a single pass-through
// rune (Hangul is false).
type Syllable struct {
	Hangul bool
	Lead   int
	Vowel  int
	Tail   int
	Other  rune
}

// Split decomposes text into syllables. Runes that are not complete Hangul
// syllables (Latin, digits, punctuation, compatibility jamo) are kept as-is.
func Split(text string) []Syllable {
	runes := []rune(norm.NFD.String(text))
	out := make([]Syllable, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isLead(r) && i+1 < len(runes) && isVowel(runes[i+1]) {
			s := Syllable{
				Hangul: true,
				Lead:   int(r - leadBase),
				Vowel:  int(runes[i+1] - vowelBase),
			}
			i++
			if i+1 < len(runes) && isTail(runes[i+1]) {
				s.Tail = int(runes[i+1] - tailBase)
				i++
			}
			out = append(out, s)
			continue
		}
		out = append(out, Syllable{Other: r})
	}

	return out
}

// Join recomposes syllables into a string.
func Join(syllables []Syllable) string {
	var b strings.Builder
	for _, s := range syllables {
		if !s.Hangul {
			b.WriteRune(s.Other)
			continue
		}
		b.WriteRune(rune(leadBase + s.Lead))
		b.WriteRune(rune(vowelBase + s.Vowel))
		if s.Tail != TailNone {
			b.WriteRune(rune(tailBase + s.Tail))
		}
	}
	return norm.NFC.String(b.String())
}

// ContainsHangul reports whether text has at least one Hangul syllable.
func ContainsHangul(text string) bool {
	for _, s := range Split(text) {
		if s.Hangul {
			return true
		}
	}
	return false
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func isLead(r rune) bool  { return r >= leadBase && r < leadBase+leadCount }
func isVowel(r rune) bool { return r >= vowelBase && r < vowelBase+vowelCount }
func isTail(r rune) bool  { return r > tailBase && r < tailBase+tailCount }
