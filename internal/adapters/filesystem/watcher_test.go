package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

// runWatcher starts w and returns a channel receiving one value per onChange
func runWatcher(t *testing.T, w *Watcher) <-chan struct{} {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 16)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			changes <- struct{}{}
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("watcher returned error: %v", err)
		}
	})

	// fsnotify watches are registered asynchronously from the test's view
	time.Sleep(100 * time.Millisecond)
	return changes
}

func TestWatcher_DebouncesFolderChanges(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, filepath.Join("10-19 Finance", "11 Tax"))

	w := NewWatcher(root, filepath.Join(root, ".jdex.json"), NewScanner(nil), 50*time.Millisecond, nil)
	changes := runWatcher(t, w)

	mkdirs(t, root, filepath.Join("10-19 Finance", "11 Tax", "11.01 Returns"))
	mkdirs(t, root, filepath.Join("10-19 Finance", "12 Insurance"))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case <-changes:
		t.Error("expected changes within the debounce window to be coalesced")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_IgnoresIndexAndHiddenFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "10-19 Finance")
	indexPath := filepath.Join(root, ".jdex.json")

	var count atomic.Int32
	w := NewWatcher(root, indexPath, NewScanner(nil), 50*time.Millisecond, nil)
	changes := runWatcher(t, w)
	go func() {
		for range changes {
			count.Add(1)
		}
	}()

	if err := os.WriteFile(indexPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".jdex-123.tmp"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if n := count.Load(); n != 0 {
		t.Errorf("expected no notifications, got %d", n)
	}
}
