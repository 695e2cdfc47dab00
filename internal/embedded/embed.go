package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed scripts/*
var ScriptsFS embed.FS

const scriptsDir = "scripts"

// ListEmbeddedScripts lists all embedded scripts by base name, sorted
func ListEmbeddedScripts() ([]string, error) {
	entries, err := fs.ReadDir(ScriptsFS, scriptsDir)
	if err != nil {
		return nil, err
	}

	scripts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			scripts = append(scripts, entry.Name())
		}
	}
	sort.Strings(scripts)
	return scripts, nil
}

// GetScriptContent returns the content of a specific embedded script
func GetScriptContent(scriptName string) ([]byte, error) {
	name := path.Base(strings.TrimPrefix(scriptName, scriptsDir+"/"))
	content, err := ScriptsFS.ReadFile(path.Join(scriptsDir, name))
	if err != nil {
		return nil, fmt.Errorf("embedded script %s: %w", scriptName, err)
	}
	return content, nil
}

// ExtractScripts extracts all embedded scripts to the specified directory and
// returns the written paths. Existing files are left alone unless overwrite
// is set.
func ExtractScripts(targetDir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	names, err := ListEmbeddedScripts()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		targetPath := filepath.Join(targetDir, name)
		if !overwrite {
			if _, err := os.Stat(targetPath); err == nil {
				return written, fmt.Errorf("file %s already exists", targetPath)
			}
		}

		content, err := GetScriptContent(name)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(targetPath, content, 0644); err != nil {
			return written, fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}
		written = append(written, targetPath)
	}
	return written, nil
}
