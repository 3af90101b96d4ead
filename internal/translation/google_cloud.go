package translation

import (
	"context"
	"fmt"
	"html"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"codeberg.org/snonux/simpletalk/internal/breaker"
)

// GoogleCloudTranslator uses the Cloud Translation API (v2).
type GoogleCloudTranslator struct {
	client  *translate.Client
	breaker *breaker.Breaker
}

// CloudConfig selects the credentials for the Cloud Translation API. With
// neither set, application default credentials are used.
type CloudConfig struct {
	APIKey          string
	CredentialsFile string
	// Endpoint overrides the API endpoint.
	Endpoint string
}

// NewGoogleCloudTranslator creates a client for the Cloud Translation API.
func NewGoogleCloudTranslator(ctx context.Context, config CloudConfig, b *breaker.Breaker) (*GoogleCloudTranslator, error) {
	var opts []option.ClientOption
	switch {
	case config.APIKey != "":
		opts = append(opts, option.WithAPIKey(config.APIKey))
	case config.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &GoogleCloudTranslator{client: client, breaker: b}, nil
}

// Name returns the translator name
func (g *GoogleCloudTranslator) Name() string {
	return "google-cloud"
}

// Translate translates Korean text to English.
func (g *GoogleCloudTranslator) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	translations, err := breaker.Do(g.breaker, func() ([]translate.Translation, error) {
		return g.client.Translate(ctx, []string{text}, language.English, &translate.Options{
			Source: language.Korean,
			Format: translate.Text,
		})
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return html.UnescapeString(translations[0].Text), nil
}

// Close releases the client.
func (g *GoogleCloudTranslator) Close() error {
	return g.client.Close()
}
