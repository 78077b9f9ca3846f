// Package fileutil holds file permissions and safety checks for generated
// output.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated source files
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for created output directories.
const DirReadableByAll os.FileMode = 0o755

// CheckPurgeable rejects directories that must never be deleted as output:
// the empty path, the current directory, a filesystem root and the user's
// home directory.
func CheckPurgeable(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if wd, err := os.Getwd(); err == nil && abs == wd {
		return fmt.Errorf("refusing to purge the current directory %s", abs)
	}
	if filepath.Dir(abs) == abs {
		return fmt.Errorf("refusing to purge filesystem root %s", abs)
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("refusing to purge home directory %s", abs)
	}
	return nil
}
