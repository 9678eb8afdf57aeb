package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "  # Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n  - Nested  item\n* Item 3\n• Item 4"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "  - Nested  item")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "• Item 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t multiple  spaces   "
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_StripsZeroWidthCharacters(t *testing.T) {
	input := "\ufeffGo\u200b developer"
	assert.Equal(t, "Go developer", CleanText(input))
}

func TestCleanText_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: "   \n  \n  ", expected: ""},
		{name: "special characters", input: "Test with émojis 🚀 and spéciàl chàracters", expected: "Test with émojis 🚀 and spéciàl chàracters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		limit         int
		expected      string
		wantTruncated bool
	}{
		{name: "under limit", text: "abc", limit: 5, expected: "abc"},
		{name: "at limit", text: "abcde", limit: 5, expected: "abcde"},
		{name: "over limit", text: "abcdef", limit: 5, expected: "abcde", wantTruncated: true},
		{name: "counts runes", text: "ééééé", limit: 3, expected: "ééé", wantTruncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Truncate(tt.text, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestIngest_TruncatesLongDocuments(t *testing.T) {
	text, metadata, err := Ingest(strings.Repeat("a", MaxChars+10), "pasted")
	require.NoError(t, err)

	assert.Len(t, text, MaxChars)
	assert.True(t, metadata.Truncated)
	assert.Equal(t, MaxChars, metadata.Chars)
	assert.Equal(t, "pasted", metadata.Source)
}

func TestIngest_ConvertsHTML(t *testing.T) {
	text, metadata, err := Ingest("<div><p>We use <b>Go</b></p><ul><li>Kafka</li><li>Postgres</li></ul></div>", "")
	require.NoError(t, err)

	assert.Equal(t, "We use Go\n• Kafka\n• Postgres", text)
	assert.False(t, metadata.Truncated)
}

func TestIngestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("# Job Title\n\nDescription here"), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "# Job Title\n\nDescription here", cleanedText)
	require.NotNil(t, metadata)
	assert.Len(t, metadata.Hash, 64)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.Equal(t, testFile, metadata.Source)
}

func TestIngestFromFile_HTMLExtension(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "posting.html")
	html := "<html><head><style>p{}</style></head><body><nav>Menu</nav><h1>Platform Engineer</h1><p>Run Kubernetes</p></body></html>"
	require.NoError(t, os.WriteFile(testFile, []byte(html), 0644))

	cleanedText, _, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "Platform Engineer\nRun Kubernetes", cleanedText)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_HashStability(t *testing.T) {
	tmpDir := t.TempDir()
	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	_, first, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, again, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, other, err := IngestFromFile(testFile2)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, again.Hash)
	assert.NotEqual(t, first.Hash, other.Hash)
}
