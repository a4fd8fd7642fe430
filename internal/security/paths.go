// Package security provides path validation for files rolegen writes.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateOutputName checks that a plugin-supplied file name stays inside baseDir
// once joined to it. Names must be relative and free of ".." segments.
func ValidateOutputName(name, baseDir string) error {
	if name == "" {
		return fmt.Errorf("empty output file name")
	}

	if filepath.IsAbs(name) {
		return fmt.Errorf("output file name must be relative: %s", name)
	}

	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return fmt.Errorf("output file name contains directory traversal: %s", name)
		}
	}

	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Clean(filepath.Join(baseDir, name))

	if cleanFinal == cleanBase {
		return fmt.Errorf("output file name resolves to the output directory itself: %s", name)
	}
	if cleanBase != "." && !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) {
		return fmt.Errorf("output file name would escape %s: %s", baseDir, name)
	}

	return nil
}
