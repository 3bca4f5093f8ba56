package shared

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Copy copies a file.
func Copy(src, dest string) error {
	var err error

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("Failed to open file %q: %w", src, err)
	}

	defer srcFile.Close()

	destFile, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("Failed to create file %q: %w", dest, err)
	}

	defer destFile.Close()

	_, err = io.Copy(destFile, srcFile)
	if err != nil {
		return fmt.Errorf("Failed to copy file: %w", err)
	}

	return destFile.Sync()
}

// FindFirstMatch resolves the path elements below root ignoring case, as
// driver media usually come from case-insensitive file systems. The first
// directory entry matching each element is used.
func FindFirstMatch(root string, elem ...string) (string, error) {
	path := root

	for _, name := range elem {
		entries, err := os.ReadDir(path)
		if err != nil {
			return "", fmt.Errorf("Failed to read directory %q: %w", path, err)
		}

		match := ""

		for _, entry := range entries {
			if strings.EqualFold(entry.Name(), name) {
				match = entry.Name()
				break
			}
		}

		if match == "" {
			return "", fmt.Errorf("Failed to find %q in %q: %w", name, path, fs.ErrNotExist)
		}

		path = filepath.Join(path, match)
	}

	return path, nil
}
