package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrMissingResultsDir indicates the results root does not exist.
	ErrMissingResultsDir = errors.New("benchmark results directory not found")
	// ErrNoResults indicates the root exists but no subdirectory held a
	// parseable estimates file.
	ErrNoResults = errors.New("no benchmark results found")
)

// Load walks root and decodes <bench>/base/estimates.json for every
// immediate subdirectory, keyed by the subdirectory name. Subdirectories
// without an estimates file are skipped silently. A present but malformed
// file aborts the load: its existence implies a completed benchmark run,
// so garbage there is a harness problem, not missing data.
func Load(root string) (ResultSet, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingResultsDir, root)
		}
		return nil, fmt.Errorf("failed to stat results directory %s: %w", root, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read results directory %s: %w", root, err)
	}

	results := make(ResultSet)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(root, entry.Name(), "base", "estimates.json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var est Estimates
		if err := json.Unmarshal(data, &est); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		results[entry.Name()] = Result{Name: entry.Name(), Estimates: est}
	}

	return results, nil
}
