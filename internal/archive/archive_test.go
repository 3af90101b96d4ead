package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/simpletalk/internal/testutil"
)

func TestArchiveAudio(t *testing.T) {
	tmpDir := t.TempDir()

	audioDir := filepath.Join(tmpDir, "tts_files")
	testutil.CreateTestFile(t, filepath.Join(audioDir, "a.mp3"), testutil.MP3Data())
	testutil.CreateTestFile(t, filepath.Join(audioDir, "b.mp3"), testutil.MP3Data())

	archivePath, err := ArchiveAudio(audioDir)
	if err != nil {
		t.Fatalf("ArchiveAudio failed: %v", err)
	}

	// The audio directory is back, but empty
	entries, err := os.ReadDir(audioDir)
	if err != nil {
		t.Fatalf("audio directory was not recreated: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty audio directory, got %d entries", len(entries))
	}

	if filepath.Dir(archivePath) != filepath.Join(tmpDir, "archive") {
		t.Errorf("archive path %s is not under %s/archive", archivePath, tmpDir)
	}
	if !strings.HasPrefix(filepath.Base(archivePath), "tts-") {
		t.Errorf("Archived directory name doesn't start with 'tts-': %s", archivePath)
	}

	testutil.AssertFileContent(t, filepath.Join(archivePath, "a.mp3"), testutil.MP3Data())
	testutil.AssertFileExists(t, filepath.Join(archivePath, "b.mp3"))
}

func TestArchiveAudio_NonExistentDirectory(t *testing.T) {
	_, err := ArchiveAudio(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("Expected error for non-existent directory")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveAudio_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.mp3")
	testutil.CreateTestFile(t, file, testutil.MP3Data())

	if _, err := ArchiveAudio(file); err == nil {
		t.Error("Expected error for a regular file")
	}
}

func TestArchiveAudio_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	audioDir := filepath.Join(tmpDir, "tts_files")

	for i := 0; i < 2; i++ {
		testutil.CreateTestFile(t, filepath.Join(audioDir, "speech.mp3"), testutil.MP3Data())

		// Small delay to ensure different timestamps
		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveAudio(audioDir); err != nil {
			t.Fatalf("ArchiveAudio failed on iteration %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	// Verify both archives have different names
	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
