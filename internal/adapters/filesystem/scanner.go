package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Scanner implements ports.TreeScanner using the filesystem
type Scanner struct {
	logger *slog.Logger
}

var _ ports.TreeScanner = (*Scanner)(nil)

// NewScanner creates a new filesystem scanner; a nil logger uses slog.Default
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Walk visits every valid JD folder under root in pre-order
func (s *Scanner) Walk(root string, visit func(domain.Folder) error) error {
	return s.walkLevel(root, "", 0, visit)
}

func (s *Scanner) walkLevel(dir, parent string, level int, visit func(domain.Folder) error) error {
	entryType, ok := domain.TypeForLevel(level)
	if !ok {
		return nil
	}

	names, err := s.listSubdirs(dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		key, displayName := domain.ParseFolderName(name)
		if !domain.IsValidKey(key, level) {
			s.logger.Debug("pruning folder with invalid key",
				"path", filepath.Join(dir, name), "level", level)
			continue
		}

		folder := domain.Folder{
			Key:    key,
			Name:   displayName,
			Type:   entryType,
			Parent: parent,
			Path:   filepath.Join(dir, name),
			Level:  level,
		}
		if err := visit(folder); err != nil {
			return err
		}
		if err := s.walkLevel(folder.Path, key, level+1, visit); err != nil {
			return err
		}
	}
	return nil
}

// listSubdirs returns the non-hidden subdirectory names of dir in natural
// order. Symlinks are followed; dangling ones are skipped.
func (s *Scanner) listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			isDir, err = s.DirExists(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
		}
		if isDir {
			names = append(names, name)
		}
	}

	slices.SortFunc(names, domain.NaturalCompare)
	return names, nil
}

// BuildIndex walks root and returns a fresh index with descriptions carried
// over from prior
func (s *Scanner) BuildIndex(root string, prior domain.Index) (domain.Index, error) {
	index := make(domain.Index)
	err := s.Walk(root, func(f domain.Folder) error {
		index[f.Key] = f.Entry()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	s.logger.Debug("built index", "root", root, "entries", len(index))
	return domain.MergeDescriptions(index, prior), nil
}

// DirExists reports whether path is an existing directory
func (s *Scanner) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}
