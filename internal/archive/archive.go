// Package archive moves generated speech files out of the served directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveAudio moves the audio directory to <parent>/archive/tts-<timestamp>
// and leaves an empty audio directory behind. It returns the archive path.
func ArchiveAudio(audioDir string) (string, error) {
	info, err := os.Stat(audioDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("audio directory does not exist: %s", audioDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat audio directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", audioDir)
	}

	archiveDir := filepath.Join(filepath.Dir(filepath.Clean(audioDir)), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, "tts-"+now.Format("20060102-150405"))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, "tts-"+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(audioDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive audio directory: %w", err)
	}

	if err := os.MkdirAll(audioDir, info.Mode().Perm()); err != nil {
		return archivePath, fmt.Errorf("failed to recreate audio directory: %w", err)
	}

	return archivePath, nil
}
