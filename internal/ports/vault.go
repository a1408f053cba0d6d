package ports

import "jdex/internal/domain"

// TreeScanner reads the live Johnny Decimal directory tree
type TreeScanner interface {
	// Walk visits every valid JD folder up to domain.MaxDepth levels below
	// root in pre-order. Dot-directories and non-directories are skipped and
	// folders whose key does not match their level are pruned with their
	// whole subtree. An error from visit stops the walk.
	Walk(root string, visit func(domain.Folder) error) error

	// BuildIndex walks root and returns a fresh index, carrying descriptions
	// over from prior when given. Any read error fails the whole build.
	BuildIndex(root string, prior domain.Index) (domain.Index, error)

	// DirExists reports whether path is an existing directory
	DirExists(path string) (bool, error)
}
