package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestRubricWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubric.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var fired atomic.Int32
	w, err := NewRubricWatcher(path, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("NewRubricWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Give the event loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("categories: []\nquestions: []\n"), 0o600); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected the watcher to fire after a write")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancellation")
	}
}

func TestRubricWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubric.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var fired atomic.Int32
	w, err := NewRubricWatcher(path, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("NewRubricWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	sibling := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(sibling, []byte("noise\n"), 0o600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	time.Sleep(800 * time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("expected no callback for sibling file writes, got %d", fired.Load())
	}
}
