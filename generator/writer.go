package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openapigen/openapigen/internal/fileutil"
)

// WriteFiles writes all generated files to the specified output directory.
// The directory is created if it doesn't exist.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	// Validate every name before touching the file system
	for _, file := range r.Files {
		if filepath.Base(file.Name) != file.Name || file.Name == "." || file.Name == ".." {
			return fmt.Errorf("invalid file name %q: must not contain path separators", file.Name)
		}
	}

	if err := os.MkdirAll(outputDir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, file := range r.Files {
		filePath := filepath.Join(outputDir, file.Name)
		if err := os.WriteFile(filePath, file.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("failed to write file %s: %w", file.Name, err)
		}
	}

	return nil
}

// PurgeAndWriteFiles deletes outputDir with everything in it, recreates it
// and writes the generated files. Existing content is not merged.
func (r *GenerateResult) PurgeAndWriteFiles(outputDir string) error {
	if err := fileutil.CheckPurgeable(outputDir); err != nil {
		return err
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory: %w", err)
	}
	return r.WriteFiles(outputDir)
}
