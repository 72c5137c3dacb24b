package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	seen  chan string
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.seen <- path
	return nil
}

func startWatcher(t *testing.T, dir string, handler EventHandler, opts Options) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, handler, logger.Nop(), opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return cancel, done
}

func TestWatcherHandlesSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder()
	cancel, done := startWatcher(t, dir, rec.handle, Options{MaxConcurrent: 2, SettleDelay: 10 * time.Millisecond})
	defer cancel()

	for _, name := range []string{"notes.pdf", ".hidden.mp4", "clip.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-rec.seen:
		if filepath.Base(got) != "clip.mp4" {
			t.Errorf("handled %s, want clip.mp4", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.paths) != 1 {
		t.Errorf("handled %v, want only clip.mp4", rec.paths)
	}
}

func TestWatcherDrainsOnCancel(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{})
	var finished atomic.Bool

	handler := func(context.Context, string) error {
		close(started)
		time.Sleep(100 * time.Millisecond)
		finished.Store(true)
		return nil
	}
	cancel, done := startWatcher(t, dir, handler, Options{MaxConcurrent: 1})

	if err := os.WriteFile(filepath.Join(dir, "talk.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
	}
	cancel()
	<-done

	if !finished.Load() {
		t.Error("Start() returned before the in-flight handler finished")
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), Options{}); err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}
