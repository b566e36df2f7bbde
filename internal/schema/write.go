package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// cleanOutputName normalizes a destination file name for use under the
// output directory and rejects names that escape it.
func cleanOutputName(name string) (string, error) {
	slashName := filepath.ToSlash(strings.TrimSpace(name))
	if slashName == "" {
		return "", fmt.Errorf("output file name is required")
	}
	if strings.HasPrefix(slashName, "/") {
		return "", fmt.Errorf("output file name must be relative: %q", name)
	}
	cleaned := path.Clean(slashName)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("output file name escapes the output directory: %q", name)
	}
	return filepath.FromSlash(cleaned), nil
}

// Write serializes tree to dir/name as tab-indented JSON with a trailing
// newline, creating missing directories and overwriting any existing file.
// It returns the written path.
func Write(dir, name string, tree map[string]any) (string, error) {
	cleaned, err := cleanOutputName(name)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(tree, "", "\t")
	if err != nil {
		return "", fmt.Errorf("encode schema document: %w", err)
	}
	data = append(data, '\n')

	destination := filepath.Join(dir, cleaned)
	if parent := filepath.Dir(destination); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(destination, data, 0o644); err != nil {
		return "", fmt.Errorf("write schema document: %w", err)
	}
	return destination, nil
}
