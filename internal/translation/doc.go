// Package translation translates Korean text to English. The default
// backend is Google's keyless web endpoint; the Cloud Translation API and
// OpenAI can be used instead. Failures are reported to callers that cannot
// fail as an embedded "Translation error" string.
package translation
