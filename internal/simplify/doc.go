// Package simplify rewrites Korean sentences into plain Korean with a
// chat-completion model. Proverbs are explained, dialect becomes standard
// Korean, hard words become words a young child knows and abbreviations
// are spelled out. Questions stay questions.
package simplify
