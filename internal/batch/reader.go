// Package batch reads the input file of the batch command.
package batch

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadBatchFile reads one text per line from filename ("-" reads stdin).
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]string, error) {
	var content []byte
	var err error

	if filename == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseLines(string(content)), nil
}

// ParseLines returns the texts of a batch file body.
func ParseLines(content string) []string {
	var texts []string
	for _, line := range splitLines(strings.TrimPrefix(content, "\ufeff")) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	return texts
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
