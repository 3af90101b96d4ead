package keyword

// Extract returns the content words of a tagged sentence in order of first
// appearance.
//
// A noun directly followed by the ending "다" is joined into a single verb
// ("noun다"). This is a heuristic for copula and 하다-style constructions the
// tagger splits apart; it can join tokens that do not belong together.
func Extract(tokens []Token) []Keyword {
	joined := make([]Keyword, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Tag == Noun && i+1 < len(tokens) && tokens[i+1].Surface == "다" && tokens[i+1].Tag == Eomi {
			joined = append(joined, Keyword{Word: tok.Surface + "다", POS: Verb})
			i++
			continue
		}

		if tok.Tag.IsContent() {
			joined = append(joined, Keyword{Word: tok.Surface, POS: tok.Tag})
		}
	}

	seen := make(map[string]bool, len(joined))
	unique := make([]Keyword, 0, len(joined))
	for _, kw := range joined {
		if seen[kw.Word] {
			continue
		}
		seen[kw.Word] = true
		unique = append(unique, kw)
	}

	return unique
}
