package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/blockmark"
)

// Expand matches each pattern against the files under root and returns the
// sorted, de-duplicated paths joined with root. Patterns use doublestar
// syntax ("docs/**/*.md") and are relative to root. A pattern that matches
// nothing is not an error.
func Expand(root string, patterns []string) ([]string, error) {
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory: %w", root, blockmark.ErrValidation)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, blockmark.ErrValidation)
		}
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			seen[filepath.Join(root, filepath.FromSlash(path))] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
	}

	matches := make([]string, 0, len(seen))
	for p := range seen {
		matches = append(matches, p)
	}
	slices.Sort(matches)
	return matches, nil
}
