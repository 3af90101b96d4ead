// Package phonetic converts written Korean into its spoken form
// (grapheme-to-phoneme) by applying the standard pronunciation rules
// between adjacent syllables. The output is still Hangul and is the input
// for romanization.
package phonetic
