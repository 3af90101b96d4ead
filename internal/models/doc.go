// Package models lists the OpenAI models available to the configured key,
// grouped into the chat models usable for simplification and tagging and
// the speech models usable for TTS.
package models
