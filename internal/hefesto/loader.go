package hefesto

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geodyn/hefestoxml/internal/ctxlog"
	"github.com/geodyn/hefestoxml/internal/fsutil"
)

// excludedNames are file names found in a HeFESTo parameter distribution
// that do not contain mineral data.
var excludedNames = map[string]struct{}{
	"changelog":  {},
	"README.md":  {},
	"out":        {},
	".gitignore": {},
}

// LoadRecords parses every mineral parameter file directly inside dir and
// returns them keyed by mineral id. A file that cannot be read is logged and
// skipped without affecting the rest of the batch. The returned error is
// non-nil only when the directory itself cannot be enumerated, which is a
// hard precondition of a run.
func LoadRecords(ctx context.Context, dir string) (map[string]*ParameterRecord, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.ListDataFiles(dir, excludedNames)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate parameter directory %s: %w", dir, err)
	}

	records := make(map[string]*ParameterRecord, len(paths))
	for _, path := range paths {
		lines, err := readLines(path)
		if err != nil {
			logger.Warn("Could not parse parameter file, skipping.", "file", path, "error", err)
			continue
		}
		rec := ParseRecord(stem(path), lines)
		records[rec.ID] = rec
	}

	logger.Info("Parameter records loaded.", "count", len(records), "dir", dir)
	return records, nil
}

// LoadInteractions parses every phase interaction file directly inside dir
// and returns them keyed by phase id. Tables with an empty endmember list are
// discarded as having no content. A missing directory is not an error: the
// phase subdirectory is optional, and without it no solution phases are
// emitted.
func LoadInteractions(ctx context.Context, dir string) (map[string]*InteractionTable, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("Phase directory not found, no solution phases will be emitted.", "dir", dir)
		return map[string]*InteractionTable{}, nil
	}

	paths, err := fsutil.ListDataFiles(dir, excludedNames)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate phase directory %s: %w", dir, err)
	}

	tables := make(map[string]*InteractionTable, len(paths))
	for _, path := range paths {
		lines, err := readLines(path)
		if err != nil {
			logger.Warn("Could not parse phase file, skipping.", "file", path, "error", err)
			continue
		}
		table := ParseInteractions(stem(path), lines)
		if len(table.Endmembers) == 0 {
			logger.Warn("Phase file has no endmembers, skipping.", "file", path)
			continue
		}
		tables[table.ID] = table
	}

	logger.Info("Interaction tables loaded.", "count", len(tables), "dir", dir)
	return tables, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

// stem derives the record id from a file path: the base name without its
// extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
