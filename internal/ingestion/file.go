package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IngestFromFile reads a saved job posting and returns cleaned text.
// HTML files go through text extraction first; everything else is treated
// as plain text.
func IngestFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job posting file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read job posting file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractJobText(string(content))
	default:
		return CleanText(string(content)), nil
	}
}
