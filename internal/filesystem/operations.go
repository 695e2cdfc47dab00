package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeeftor/perfscript/internal/constants"
	"github.com/jeeftor/perfscript/internal/logging"
)

// EnsureDirectory creates a directory and all necessary parent directories
func EnsureDirectory(path string) error {
	if path == "." || path == "" {
		return nil // Current directory always exists
	}

	return os.MkdirAll(path, 0755)
}

// EnsureDirectoryForFile creates the parent directory for a given file path
func EnsureDirectoryForFile(filePath string) error {
	dir := filepath.Dir(filePath)
	return EnsureDirectory(dir)
}

// CheckFileExists verifies that a file exists and is not a directory
func CheckFileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file '%s' does not exist: %w", path, fs.ErrNotExist)
		}
		return fmt.Errorf("cannot access file '%s': %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("'%s' is a directory", path)
	}
	return nil
}

// WriteFileWithDirectory writes content to a file, creating directories as needed
func WriteFileWithDirectory(filePath string, content []byte, perm os.FileMode) error {
	if err := EnsureDirectoryForFile(filePath); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", filePath, err)
	}

	if err := os.WriteFile(filePath, content, perm); err != nil {
		return fmt.Errorf("failed to write '%s': %w", filePath, err)
	}

	logging.Debug("Wrote file", "path", filePath, "bytes", len(content))
	return nil
}

// GetFileExtension returns the lowercase file extension without the dot
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// IsScriptFile checks if a file path represents a performance script
func IsScriptFile(path string) bool {
	ext := GetFileExtension(path)
	for _, known := range constants.ScriptExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// GetAbsolutePath converts a path to absolute form, handling ~ expansion
func GetAbsolutePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path provided")
	}

	// Handle ~ expansion
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		if len(path) == 1 {
			path = homeDir
		} else {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return filepath.Abs(path)
}

// ExpandScriptPaths turns a list of files and directories into script files.
// Files are kept as given; directories are walked for script extensions.
func ExpandScriptPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access '%s': %w", path, err)
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsScriptFile(p) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan '%s': %w", path, err)
		}
		sort.Strings(found)
		if len(found) == 0 {
			logging.Warn("Directory has no script files", "dir", path, "extensions", constants.ScriptExtensions)
		} else {
			logging.Debug("Scanned directory for scripts", "dir", path, "found", len(found))
		}
		out = append(out, found...)
	}
	return out, nil
}
