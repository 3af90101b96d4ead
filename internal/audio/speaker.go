package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Speaker turns text into uniquely named mp3 files in one directory. The
// files are never removed by the speaker; see the archive command.
type Speaker struct {
	provider Provider
	dir      string
	log      *slog.Logger
}

// NewSpeaker creates the output directory and returns a speaker writing
// into it.
func NewSpeaker(provider Provider, dir string, logger *slog.Logger) (*Speaker, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Speaker{
		provider: provider,
		dir:      dir,
		log:      logger.With("component", "speaker"),
	}, nil
}

// Dir returns the directory the files are written to.
func (s *Speaker) Dir() string {
	return s.dir
}

// Speak synthesizes text and returns the name of the new file, relative to
// Dir.
func (s *Speaker) Speak(ctx context.Context, text string) (string, error) {
	filename := uuid.NewString() + ".mp3"
	path := filepath.Join(s.dir, filename)

	if err := s.provider.GenerateAudio(ctx, text, path); err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}

	s.log.InfoContext(ctx, "speech generated",
		slog.String("file", filename),
		slog.String("provider", s.provider.Name()),
	)
	return filename, nil
}
