package breaker

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDoPassesThrough(t *testing.T) {
	b := New("test", DefaultSettings(), newTestLogger())

	got, err := Do(b, func() (string, error) { return "ok", nil })
	if err != nil {
		t.Fatalf("Do() unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("Do() = %q, want %q", got, "ok")
	}
}

func TestDoTripsAfterConsecutiveFailures(t *testing.T) {
	b := New("test", Settings{ConsecutiveFailures: 2, OpenTimeout: time.Minute}, newTestLogger())
	boom := errors.New("boom")

	calls := 0
	fail := func() (int, error) {
		calls++
		return 0, boom
	}

	for i := 0; i < 2; i++ {
		if _, err := Do(b, fail); !errors.Is(err, boom) {
			t.Fatalf("Do() call %d error = %v, want boom", i, err)
		}
	}

	_, err := Do(b, fail)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do() error = %v, want ErrOpenState", err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
	if b.State() != "open" {
		t.Errorf("State() = %q, want open", b.State())
	}
}

func TestDoNilBreaker(t *testing.T) {
	got, err := Do[int](nil, func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Errorf("Do(nil) = %d, %v", got, err)
	}
}
