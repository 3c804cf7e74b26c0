// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
)

// ListDataFiles returns the full paths of all regular files directly inside
// root, excluding any whose base name appears in the exclude set.
// Subdirectories are not descended into. Results are sorted by name so that
// enumeration order is deterministic.
func ListDataFiles(root string, exclude map[string]struct{}) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, skip := exclude[entry.Name()]; skip {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(root, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
