package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pipeguru/docsite/internal/platform/logger"
)

func TestWatcherReportsChanges(t *testing.T) {
	root := t.TempDir()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(os.MkdirAll(filepath.Join(root, "docs", "guides"), 0o755))

	w, err := New(root, 50*time.Millisecond, logger.Discard())
	must(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changes <- struct{}{} })
	}()

	// several writes in one burst collapse into one notification
	for i := 0; i < 3; i++ {
		must(os.WriteFile(filepath.Join(root, "docs", "guides", "rollouts.md"), []byte("# Rollouts\n"), 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changes:
		t.Error("a single burst was reported twice")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestWatcherMissingRoot(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), 0, logger.Discard()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
