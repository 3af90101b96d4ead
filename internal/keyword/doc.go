// Package keyword tags Korean text with part-of-speech labels and extracts
// the content words that are worth looking up in a dictionary.
package keyword
