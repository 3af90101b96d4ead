package phonetic

import (
	"codeberg.org/snonux/simpletalk/internal/hangul"
)

// Converter rewrites text into its pronounced form.
type Converter struct{}

// NewConverter creates a new grapheme-to-phoneme converter
func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns the pronounced form of text. Rules are applied inside each
// run of consecutive Hangul syllables; everything else passes through.
func (c *Converter) Convert(text string) string {
	syllables := hangul.Split(text)

	start := 0
	for start < len(syllables) {
		if !syllables[start].Hangul {
			start++
			continue
		}
		end := start
		for end < len(syllables) && syllables[end].Hangul {
			end++
		}
		convertRun(syllables[start:end])
		start = end
	}

	return hangul.Join(syllables)
}

func convertRun(run []hangul.Syllable) {
	for i := 0; i+1 < len(run); i++ {
		joinSyllables(&run[i], &run[i+1])
	}
	for i := range run {
		if i+1 < len(run) {
			clusterTense(&run[i], &run[i+1])
		}
		run[i].Tail = neutralTail[run[i].Tail]
	}
	for i := 0; i+1 < len(run); i++ {
		assimilate(&run[i], &run[i+1])
	}
}

// clusterTense tenses the lead after a verb stem ending in ㄼ or ㄾ,
// which neutralize to ㄹ and so escape the obstruent rule. 밟 keeps ㅂ
// before a consonant. Nouns like 여덟 come out over-tensed.
func clusterTense(a, b *hangul.Syllable) {
	if a.Tail != hangul.TailLB && a.Tail != hangul.TailLT {
		return
	}
	if t, ok := tense[b.Lead]; ok {
		b.Lead = t
	}
	if a.Lead == hangul.LeadB && a.Vowel == hangul.VowelA && a.Tail == hangul.TailLB && b.Lead != hangul.LeadNone {
		a.Tail = hangul.TailB
	}
}

// joinSyllables handles the rules that depend on the written tail: ㅎ
// aspiration and deletion, palatalization and liaison.
func joinSyllables(a, b *hangul.Syllable) {
	if b.Lead == hangul.LeadNone {
		if b.Vowel == hangul.VowelI && palatalize(a, b) {
			return
		}
		liaison(a, b)
		return
	}

	if rest, ok := hTail[a.Tail]; ok {
		switch b.Lead {
		case hangul.LeadG:
			b.Lead, a.Tail = hangul.LeadK, rest
		case hangul.LeadD:
			b.Lead, a.Tail = hangul.LeadT, rest
		case hangul.LeadJ:
			b.Lead, a.Tail = hangul.LeadCh, rest
		case hangul.LeadS:
			b.Lead, a.Tail = hangul.LeadSS, rest
		case hangul.LeadN:
			if rest == hangul.TailNone {
				a.Tail = hangul.TailN
			} else {
				a.Tail = rest
			}
		}
		return
	}

	if b.Lead == hangul.LeadH {
		aspirate(a, b)
	}
}

// hTail maps tails containing ㅎ to what remains once the ㅎ is absorbed.
var hTail = map[int]int{
	hangul.TailH:  hangul.TailNone,
	hangul.TailNH: hangul.TailN,
	hangul.TailLH: hangul.TailL,
}

func palatalize(a, b *hangul.Syllable) bool {
	switch a.Tail {
	case hangul.TailD:
		a.Tail, b.Lead = hangul.TailNone, hangul.LeadJ
	case hangul.TailT:
		a.Tail, b.Lead = hangul.TailNone, hangul.LeadCh
	case hangul.TailLT:
		a.Tail, b.Lead = hangul.TailL, hangul.LeadCh
	default:
		return false
	}
	return true
}

// liaison moves the tail of a onto the silent lead of b.
func liaison(a, b *hangul.Syllable) {
	switch a.Tail {
	case hangul.TailNone, hangul.TailNG:
		return
	case hangul.TailH:
		a.Tail = hangul.TailNone
		return
	}

	if split, ok := doubleTail[a.Tail]; ok {
		a.Tail, b.Lead = split[0], split[1]
		return
	}
	if lead, ok := tailToLead[a.Tail]; ok {
		a.Tail, b.Lead = hangul.TailNone, lead
	}
}

// aspirate merges an obstruent tail with a following ㅎ.
func aspirate(a, b *hangul.Syllable) {
	switch a.Tail {
	case hangul.TailG, hangul.TailGG, hangul.TailK:
		a.Tail, b.Lead = hangul.TailNone, hangul.LeadK
	case hangul.TailLG:
		a.Tail, b.Lead = hangul.TailL, hangul.LeadK
	case hangul.TailD, hangul.TailS, hangul.TailJ, hangul.TailCh, hangul.TailT:
		b.Lead = hangul.LeadT
		if a.Tail == hangul.TailD && b.Vowel == hangul.VowelI {
			b.Lead = hangul.LeadCh
		}
		if a.Tail == hangul.TailJ {
			b.Lead = hangul.LeadCh
		}
		a.Tail = hangul.TailNone
	case hangul.TailNJ:
		a.Tail, b.Lead = hangul.TailN, hangul.LeadCh
	case hangul.TailB, hangul.TailP:
		a.Tail, b.Lead = hangul.TailNone, hangul.LeadP
	case hangul.TailLB:
		a.Tail, b.Lead = hangul.TailL, hangul.LeadP
	}
}

// assimilate applies tensification, nasalization and liquidization to
// neutralized tails.
func assimilate(a, b *hangul.Syllable) {
	tail := a.Tail

	if b.Lead == hangul.LeadR {
		switch tail {
		case hangul.TailG, hangul.TailD, hangul.TailB, hangul.TailM, hangul.TailNG:
			b.Lead = hangul.LeadN
		case hangul.TailN:
			a.Tail = hangul.TailL
			return
		}
	}

	switch b.Lead {
	case hangul.LeadN, hangul.LeadM:
		switch tail {
		case hangul.TailG:
			a.Tail = hangul.TailNG
		case hangul.TailD:
			a.Tail = hangul.TailN
		case hangul.TailB:
			a.Tail = hangul.TailM
		case hangul.TailL:
			if b.Lead == hangul.LeadN {
				b.Lead = hangul.LeadR
			}
		}
	case hangul.LeadG, hangul.LeadD, hangul.LeadB, hangul.LeadS, hangul.LeadJ:
		switch tail {
		case hangul.TailG, hangul.TailD, hangul.TailB:
			b.Lead = tense[b.Lead]
		}
	}
}
