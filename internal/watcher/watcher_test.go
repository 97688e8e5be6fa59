package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickprogramme/substats/internal/logger"
)

func TestNewErrors(t *testing.T) {
	dir := t.TempDir()
	noop := func(context.Context, string) error { return nil }

	tests := []struct {
		name    string
		path    string
		handler EventHandler
	}{
		{"missing file", filepath.Join(dir, "absent.srt"), noop},
		{"directory", dir, noop},
		{"nil handler", writeTemp(t, dir, "a.srt"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.path, tt.handler, logger.Nop(), 0); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStartTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := writeTemp(t, dir, "movie.srt")

	calls := make(chan string, 8)
	w, err := New(target, func(_ context.Context, p string) error {
		calls <- p
		return nil
	}, logger.Nop(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(testContext(t))
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// un autre fichier du dossier est ignoré
	writeTemp(t, dir, "other.srt")
	if err := os.WriteFile(target, []byte("1\n00:00:01,000 --> 00:00:02,000\nHi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-calls:
		abs, _ := filepath.Abs(target)
		if p != abs {
			t.Errorf("handler path = %q, want %q", p, abs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestDebounceCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	target := writeTemp(t, dir, "movie.srt")

	var count atomic.Int32
	w, err := New(target, func(context.Context, string) error {
		count.Add(1)
		return nil
	}, logger.Nop(), 300*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(testContext(t))
	defer cancel()
	go w.Start(ctx)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for count.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(400 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("handler calls = %d, want 1", got)
	}
}

func writeTemp(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
