// Package ingestion turns saved job postings (plain text or HTML) into
// cleaned text ready for skill extraction.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	blankRuns = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw posting text while preserving structure:
// line endings become LF, in-line whitespace runs collapse to one space,
// and runs of blank lines collapse to at most one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			line = spaceRun.ReplaceAllString(line, " ")
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
