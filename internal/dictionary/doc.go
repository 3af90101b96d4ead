// Package dictionary looks up Korean words in the Standard Korean Language
// Dictionary (stdict.korean.go.kr) and keeps the senses that match the
// part of speech the word was tagged with.
//
// Responses can be cached in SQLite so repeated keywords do not hit the
// rate limited API again.
package dictionary
