// Package hangul splits Korean text into lead/vowel/tail syllable parts and
// joins them back. It is the shared representation used by the
// pronunciation and romanization packages.
package hangul
