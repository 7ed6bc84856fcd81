package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover returns the first file in dir, in name order, whose name ends with
// suffix. The match is case-insensitive and does not descend into subdirectories.
func Discover(dir, suffix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read datastore directory %s: %w", ErrConfiguration, dir, err)
	}
	suffix = strings.ToLower(suffix)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), suffix) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: no file ending in %q found in %s", ErrConfiguration, suffix, dir)
}
