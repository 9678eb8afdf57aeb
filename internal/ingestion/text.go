// Package ingestion provides functionality to clean pasted or uploaded text before parsing.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxChars is the number of characters of a document kept after cleaning
const MaxChars = 50000

var (
	spaceRunRe      = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLineRunRe  = regexp.MustCompile(`\n\n\n+`)
	invisibleRunes  = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")
	htmlExtensions  = map[string]bool{".html": true, ".htm": true, ".xhtml": true}
	htmlSniffPrefix = []string{"<!doctype html", "<html", "<body", "<div", "<p>", "<ul"}
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF) and drop zero-width characters
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = invisibleRunes.Replace(content)

	// 2. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Remove excessive blank lines (max 2 consecutive) and trim
	result := blankLineRunRe.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Markdown headings lose their indentation
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullets keep their indentation so nesting survives
	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := spaceRunRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// Truncate cuts text to at most limit characters and reports whether it did
func Truncate(text string, limit int) (string, bool) {
	runes := []rune(text)
	if limit < 0 || len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}

// LooksLikeHTML reports whether content starts like an HTML document or fragment
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	for _, prefix := range htmlSniffPrefix {
		if strings.HasPrefix(head, prefix) {
			return true
		}
	}
	return false
}

// Ingest cleans raw content from source, converting HTML to text first, and
// truncates it to MaxChars
func Ingest(content, source string) (string, *Metadata, error) {
	if htmlExtensions[strings.ToLower(filepath.Ext(source))] || LooksLikeHTML(content) {
		text, err := StripHTML(content)
		if err != nil {
			return "", nil, fmt.Errorf("failed to convert HTML: %w", err)
		}
		content = text
	}

	cleaned, truncated := Truncate(CleanText(content), MaxChars)
	metadata := NewMetadata(cleaned, source)
	metadata.Truncated = truncated
	return cleaned, metadata, nil
}

// IngestFromFile reads a text or HTML file, cleans it, and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Ingest(string(content), path)
}
