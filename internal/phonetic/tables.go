package phonetic

import "codeberg.org/snonux/simpletalk/internal/hangul"

// neutralTail maps every written tail to one of the seven sounds a
// syllable can end in.
var neutralTail = [...]int{
	hangul.TailNone: hangul.TailNone,
	hangul.TailG:    hangul.TailG,
	hangul.TailGG:   hangul.TailG,
	hangul.TailGS:   hangul.TailG,
	hangul.TailN:    hangul.TailN,
	hangul.TailNJ:   hangul.TailN,
	hangul.TailNH:   hangul.TailN,
	hangul.TailD:    hangul.TailD,
	hangul.TailL:    hangul.TailL,
	hangul.TailLG:   hangul.TailG,
	hangul.TailLM:   hangul.TailM,
	hangul.TailLB:   hangul.TailL,
	hangul.TailLS:   hangul.TailL,
	hangul.TailLT:   hangul.TailL,
	hangul.TailLP:   hangul.TailB,
	hangul.TailLH:   hangul.TailL,
	hangul.TailM:    hangul.TailM,
	hangul.TailB:    hangul.TailB,
	hangul.TailBS:   hangul.TailB,
	hangul.TailS:    hangul.TailD,
	hangul.TailSS:   hangul.TailD,
	hangul.TailNG:   hangul.TailNG,
	hangul.TailJ:    hangul.TailD,
	hangul.TailCh:   hangul.TailD,
	hangul.TailK:    hangul.TailG,
	hangul.TailT:    hangul.TailD,
	hangul.TailP:    hangul.TailB,
	hangul.TailH:    hangul.TailD,
}

// tailToLead gives the lead consonant a single tail becomes on liaison.
var tailToLead = map[int]int{
	hangul.TailG:  hangul.LeadG,
	hangul.TailGG: hangul.LeadGG,
	hangul.TailN:  hangul.LeadN,
	hangul.TailD:  hangul.LeadD,
	hangul.TailL:  hangul.LeadR,
	hangul.TailM:  hangul.LeadM,
	hangul.TailB:  hangul.LeadB,
	hangul.TailS:  hangul.LeadS,
	hangul.TailSS: hangul.LeadSS,
	hangul.TailJ:  hangul.LeadJ,
	hangul.TailCh: hangul.LeadCh,
	hangul.TailK:  hangul.LeadK,
	hangul.TailT:  hangul.LeadT,
	hangul.TailP:  hangul.LeadP,
}

// doubleTail splits a cluster into the tail that stays and the lead that
// moves. A moving ㅅ is pronounced tense.
var doubleTail = map[int][2]int{
	hangul.TailGS: {hangul.TailG, hangul.LeadSS},
	hangul.TailNJ: {hangul.TailN, hangul.LeadJ},
	hangul.TailNH: {hangul.TailNone, hangul.LeadN},
	hangul.TailLG: {hangul.TailL, hangul.LeadG},
	hangul.TailLM: {hangul.TailL, hangul.LeadM},
	hangul.TailLB: {hangul.TailL, hangul.LeadB},
	hangul.TailLS: {hangul.TailL, hangul.LeadSS},
	hangul.TailLT: {hangul.TailL, hangul.LeadT},
	hangul.TailLP: {hangul.TailL, hangul.LeadP},
	hangul.TailLH: {hangul.TailNone, hangul.LeadR},
	hangul.TailBS: {hangul.TailB, hangul.LeadSS},
}

var tense = map[int]int{
	hangul.LeadG: hangul.LeadGG,
	hangul.LeadD: hangul.LeadDD,
	hangul.LeadB: hangul.LeadBB,
	hangul.LeadS: hangul.LeadSS,
	hangul.LeadJ: hangul.LeadJJ,
}
