// Package ingestion reads the CLI inputs: résumé text files and job posting
// collections.
package ingestion

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	multiSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	excessBlank = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses runs of spaces within each line,
// drops trailing whitespace, and keeps at most one blank line between
// paragraphs. Invalid UTF-8 and a leading byte order mark are removed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.TrimPrefix(content, "\ufeff")
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "")
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}

	result := excessBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// ReadResumeText reads a plain-text résumé and returns its cleaned content.
// An empty file is not an error; the extractors handle short text.
func ReadResumeText(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, &LoadError{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &LoadError{Source: path, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return "", nil, &LoadError{Source: path, Message: "path is a directory"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}

	cleaned := CleanText(string(content))
	return cleaned, NewMetadata(cleaned, path), nil
}
