package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateKoreanText checks that text has something to speak. Text without
// Hangul is allowed; the Korean voice reads Latin letters and digits too.
func ValidateKoreanText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}

	return fmt.Errorf("text must contain letters or digits")
}
