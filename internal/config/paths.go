package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveRuntimePath resolves a runtime directory. Relative paths are anchored at
// base (the config file's directory), or the working directory when base is empty.
func ResolveRuntimePath(base, raw, fallbackSubdir string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		target = strings.TrimSpace(fallbackSubdir)
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		} else {
			base = "."
		}
	}
	return filepath.Clean(filepath.Join(base, target))
}
