package filesystem

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// DefaultDebounce is the quiet period after the last change before a rebuild
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers a callback when the JD directory structure changes
type Watcher struct {
	root      string
	indexPath string
	scanner   ports.TreeScanner
	debounce  time.Duration
	logger    *slog.Logger
}

// NewWatcher creates a watcher for root. Events on indexPath and on hidden
// names are ignored so writing the index does not retrigger itself.
func NewWatcher(root, indexPath string, scanner ports.TreeScanner, debounce time.Duration, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:      root,
		indexPath: filepath.Clean(indexPath),
		scanner:   scanner,
		debounce:  debounce,
		logger:    logger,
	}
}

// Run blocks until ctx is done, calling onChange once per burst of changes.
// An error from onChange is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error("rebuild after change failed", "error", err)
			}
			// New folders need watches of their own
			if err := w.addTree(fw); err != nil {
				w.logger.Warn("failed to refresh watches", "error", err)
			}
		}
	}
}

// addTree watches the root plus every area and category folder. ID folders
// are covered by their category's watch.
func (w *Watcher) addTree(fw *fsnotify.Watcher) error {
	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	return w.scanner.Walk(w.root, func(f domain.Folder) error {
		if f.Level >= domain.MaxDepth-1 {
			return nil
		}
		if err := fw.Add(f.Path); err != nil {
			w.logger.Warn("failed to watch folder", "path", f.Path, "error", err)
		}
		return nil
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if filepath.Clean(event.Name) == w.indexPath {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}
