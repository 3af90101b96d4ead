package translation

import (
	"context"
	"log/slog"
	"sync"
)

// MaxTextLength is the longest input the translators accept.
const MaxTextLength = 5000

// Translator translates Korean text to English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
	Name() string
}

// TranslateOrMessage translates text and never fails: on error the
// returned string is "Translation error: <err>" and the error is logged.
func TranslateOrMessage(ctx context.Context, t Translator, text string, logger *slog.Logger) string {
	translated, err := t.Translate(ctx, text)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(ctx, "Translation error",
			slog.String("translator", t.Name()),
			slog.String("error", err.Error()),
		)
		return "Translation error: " + err.Error()
	}
	return translated
}

// Cache stores translations in memory. It is safe for concurrent use.
type Cache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewCache creates a new translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (c *Cache) Add(text, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[text] = translation
}

// Get retrieves a translation from the cache
func (c *Cache) Get(text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[text]
	return translation, ok
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}

// GetAll returns all cached translations
func (c *Cache) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.translations))
	for k, v := range c.translations {
		result[k] = v
	}
	return result
}

// CachedTranslator remembers successful translations of its inner
// translator. Failures are not cached.
type CachedTranslator struct {
	inner Translator
	cache *Cache
}

// NewCachedTranslator wraps t with cache
func NewCachedTranslator(t Translator, cache *Cache) *CachedTranslator {
	if cache == nil {
		cache = NewCache()
	}
	return &CachedTranslator{inner: t, cache: cache}
}

// Translate returns the cached translation or asks the inner translator.
func (c *CachedTranslator) Translate(ctx context.Context, text string) (string, error) {
	if translated, ok := c.cache.Get(text); ok {
		return translated, nil
	}

	translated, err := c.inner.Translate(ctx, text)
	if err != nil {
		return "", err
	}

	c.cache.Add(text, translated)
	return translated, nil
}

// Name returns the inner translator name
func (c *CachedTranslator) Name() string {
	return c.inner.Name()
}
