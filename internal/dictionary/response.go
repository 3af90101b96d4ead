package dictionary

import (
	"encoding/xml"
	"fmt"
	"strings"

	"codeberg.org/snonux/simpletalk/internal/keyword"
)

const (
	// DefaultMaxSenses is how many senses a lookup returns at most.
	DefaultMaxSenses = 3

	noDefinition = "뜻풀이 없음"
	pronounPOS   = "대명사"
)

var posNames = map[keyword.Tag]string{
	keyword.Noun:      "명사",
	keyword.Verb:      "동사",
	keyword.Adjective: "형용사",
	keyword.Adverb:    "부사",
}

// POSName returns the dictionary's part-of-speech name for a tag.
func POSName(tag keyword.Tag) (string, bool) {
	name, ok := posNames[tag]
	return name, ok
}

// Sense is one dictionary definition.
type Sense struct {
	POS        string `json:"pos"`
	Definition string `json:"definition"`
}

// Item is one search result entry. Missing elements are nil so they can be
// told apart from empty ones.
type Item struct {
	Word   string     `xml:"word"`
	SupNo  *string    `xml:"sup_no"`
	POS    string     `xml:"pos"`
	Senses []apiSense `xml:"sense"`
}

type apiSense struct {
	Definition *string `xml:"definition"`
}

// searchResponse is the XML document returned by search.do. Errors come
// back as an <error> root with a code and message.
type searchResponse struct {
	XMLName   xml.Name
	Total     int    `xml:"total"`
	Items     []Item `xml:"item"`
	ErrorCode string `xml:"error_code"`
	Message   string `xml:"message"`
}

func parseResponse(body []byte) (*searchResponse, error) {
	var resp searchResponse
	if len(strings.TrimSpace(string(body))) == 0 {
		return &resp, nil
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return &resp, nil
}

// FilterSenses picks at most max senses for pos from items.
//
// Pronouns and entries with another part of speech are skipped. Only the
// first entry of each homograph number (sup_no, "0" when absent) is used,
// even when that entry turns out to have no sense. An empty definition
// element is kept as is; a missing one becomes "뜻풀이 없음".
func FilterSenses(items []Item, pos string, max int) []Sense {
	if max <= 0 {
		max = DefaultMaxSenses
	}

	senses := []Sense{}
	seen := make(map[string]bool)

	for _, it := range items {
		if it.POS == pronounPOS || it.POS != pos {
			continue
		}

		supNo := "0"
		if it.SupNo != nil {
			supNo = *it.SupNo
		}
		if seen[supNo] {
			continue
		}
		seen[supNo] = true

		if len(it.Senses) == 0 {
			continue
		}

		definition := noDefinition
		if d := it.Senses[0].Definition; d != nil {
			definition = *d
		}

		senses = append(senses, Sense{POS: it.POS, Definition: definition})
		if len(senses) >= max {
			break
		}
	}

	return senses
}
