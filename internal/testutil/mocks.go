package testutil

import (
	"context"
	"sync"
)

// MockSimplifier returns canned simplifications. Texts without an entry
// are returned unchanged.
type MockSimplifier struct {
	mu      sync.Mutex
	Results map[string]string
	Err     error
	Calls   []string
}

// Simplify records the call and returns the canned result
func (m *MockSimplifier) Simplify(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return "", m.Err
	}
	if out, ok := m.Results[text]; ok {
		return out, nil
	}
	return text, nil
}

// Name returns the mock name
func (m *MockSimplifier) Name() string {
	return "mock"
}

// MockTranslator returns canned translations.
type MockTranslator struct {
	mu      sync.Mutex
	Results map[string]string
	Err     error
	Calls   []string
}

// Translate records the call and returns the canned translation
func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Results[text], nil
}

// Name returns the mock name
func (m *MockTranslator) Name() string {
	return "mock"
}

// MockRomanizer prefixes its input so tests can tell which text was
// romanized.
type MockRomanizer struct{}

// Pronounce returns "roman(<text>)"
func (MockRomanizer) Pronounce(text string) string {
	return "roman(" + text + ")"
}
