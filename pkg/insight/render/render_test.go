package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/analyze"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/render"
)

func fixedRenderer(metadataFormat string) *render.Renderer {
	r := render.New(metadataFormat, "1.2.3")
	r.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestSummaryText(t *testing.T) {
	m := &analyze.TextMetrics{
		Lines: 2, Words: 5, Chars: 29,
		LongestLine: "second line here", LongestLineLen: 16,
		AvgWordsPerLine: 2.5,
	}
	out := fixedRenderer("none").Summary(m)
	assert.Contains(t, out, "Type: text")
	assert.Contains(t, out, "Lines: 2")
	assert.Contains(t, out, `Longest line: 16 characters ("second line here")`)
	assert.Contains(t, out, "Average words per line: 2.50")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestSummaryJSONHistogramSorted(t *testing.T) {
	m := &analyze.JSONMetrics{
		TopLevelKeys: 2,
		MaxDepth:     3,
		TypeHistogram: map[string]int{
			"string": 4, "number": 1, "array": 1,
		},
	}
	out := fixedRenderer("none").Summary(m)
	assert.Contains(t, out, "Top-level keys: 2")
	arrayIdx := strings.Index(out, "array: 1")
	numberIdx := strings.Index(out, "number: 1")
	stringIdx := strings.Index(out, "string: 4")
	require.True(t, arrayIdx >= 0 && numberIdx >= 0 && stringIdx >= 0)
	assert.Less(t, arrayIdx, numberIdx)
	assert.Less(t, numberIdx, stringIdx)
}

func TestSummaryCSVEmptyColumns(t *testing.T) {
	m := &analyze.CSVMetrics{Columns: 0, Rows: 0, Headers: nil, TotalCells: 0}
	out := fixedRenderer("none").Summary(m)
	assert.Contains(t, out, "(none)")
}

func TestSummaryPython(t *testing.T) {
	m := &analyze.CodeMetrics{
		TotalLines: 10, CodeLines: 6, CommentLines: 2, BlankLines: 2,
		Functions: 1, DocumentedDefs: 1, DocstringCoverage: 1.0,
		Language: "python",
	}
	out := fixedRenderer("none").Summary(m)
	assert.Contains(t, out, "Language: python")
	assert.Contains(t, out, "Docstring coverage: 100.0%")
}

func TestEnhanceTextLayout(t *testing.T) {
	content := "hello world\nbye\n"
	metrics, err := analyze.AnalyzeText(content)
	require.NoError(t, err)

	out, err := fixedRenderer("none").Enhance(render.Document{
		Path:    "/tmp/notes.txt",
		Content: content,
		Metrics: metrics,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "# TEXT FILE ANALYSIS REPORT")
	assert.Contains(t, out, "## File: notes.txt")
	assert.Contains(t, out, "## Generated: 2025-06-01 12:00:00")
	assert.Contains(t, out, strings.Repeat("-", 50))
	assert.Contains(t, out, "Line   1:   2 words,  11 chars | hello world")
	assert.Contains(t, out, "Line   2:   1 words,   3 chars | bye")
}

// enhancedJSONSchema pins the envelope shape of enhanced JSON output.
const enhancedJSONSchema = `{
  "type": "object",
  "required": ["_metadata", "data"],
  "properties": {
    "_metadata": {
      "type": "object",
      "required": ["original_file", "processed_at", "generator", "analysis"],
      "properties": {
        "original_file": {"type": "string"},
        "processed_at": {"type": "string"},
        "generator": {"type": "string"},
        "analysis": {
          "type": "object",
          "required": ["top_level_keys", "max_depth", "type_histogram"]
        },
        "provenance": {
          "type": "object",
          "required": ["branch", "commit", "author", "when"]
        }
      }
    }
  }
}`

func TestEnhanceJSONEnvelope(t *testing.T) {
	content := `{"name": "demo", "count": 3}`
	metrics, err := analyze.AnalyzeJSON(content)
	require.NoError(t, err)

	out, err := fixedRenderer("none").Enhance(render.Document{
		Path:    "data.json",
		Content: content,
		Metrics: metrics,
		Provenance: &gitinfo.Snapshot{
			Branch: "main", Commit: "abc123", Author: "someone",
			When: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(enhancedJSONSchema),
		gojsonschema.NewStringLoader(out),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "schema violations: %v", result.Errors())

	// The embedded analysis round-trips to the original metrics.
	var envelope struct {
		Metadata struct {
			Analysis *analyze.JSONMetrics `json:"analysis"`
		} `json:"_metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, metrics, envelope.Metadata.Analysis)
}

func TestEnhanceCSVSections(t *testing.T) {
	content := "name,age\nalice,30\nbob,\n"
	metrics, err := analyze.AnalyzeCSV(content)
	require.NoError(t, err)

	out, err := fixedRenderer("none").Enhance(render.Document{
		Path:    "people.csv",
		Content: content,
		Metrics: metrics,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "# Enhanced CSV File")
	assert.Contains(t, out, "# Original: people.csv")
	assert.Contains(t, out, "# Columns: 2")
	assert.Contains(t, out, "# Rows: 2")
	assert.Contains(t, out, "name,age")
	assert.Contains(t, out, "alice,30")
	assert.Contains(t, out, "# Column Statistics")
	assert.Contains(t, out, "Column: name")
}

func TestEnhanceMarkdownFrontMatterFormats(t *testing.T) {
	content := "# Title\n\nBody.\n"
	metrics, err := analyze.AnalyzeMarkdown(content)
	require.NoError(t, err)
	doc := render.Document{Path: "doc.md", Content: content, Metrics: metrics}

	t.Run("none", func(t *testing.T) {
		out, err := fixedRenderer("none").Enhance(doc)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# Enhanced Markdown Document"))
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := fixedRenderer("yaml").Enhance(doc)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "---\n"))
		assert.Contains(t, out, "original_file: doc.md")
		assert.Contains(t, out, "generator: file-insight 1.2.3")
	})

	t.Run("toml", func(t *testing.T) {
		out, err := fixedRenderer("toml").Enhance(doc)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "+++\n"))
		assert.Contains(t, out, `original_file = "doc.md"`)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := fixedRenderer("ini").Enhance(doc)
		assert.Error(t, err)
	})
}

func TestModifiedNumberedOutput(t *testing.T) {
	content := "alpha beta\ngamma\n"
	metrics, err := analyze.AnalyzeText(content)
	require.NoError(t, err)

	out := fixedRenderer("none").Modified(render.Document{
		Path:    "notes.txt",
		Content: content,
		Metrics: metrics,
	})

	assert.Contains(t, out, "=== MODIFIED VERSION OF NOTES.TXT ===")
	assert.Contains(t, out, "Original length: 17 characters")
	assert.Contains(t, out, "Lines: 2")
	assert.Contains(t, out, "  1: alpha beta")
	assert.Contains(t, out, "  2: gamma")
	assert.Contains(t, out, "=== LINE STATISTICS ===")
	assert.Contains(t, out, "Line 1: 2 words, 10 characters")
	assert.Contains(t, out, "Modifications applied: Added file statistics header, Added line numbers, Added line statistics")
}

func TestModifiedUnknownExtensionKeepsContent(t *testing.T) {
	content := "key=value\nother=thing\n"
	metrics, err := analyze.AnalyzeText(content)
	require.NoError(t, err)

	out := fixedRenderer("none").Modified(render.Document{
		Path:    "settings.conf",
		Content: content,
		Metrics: metrics,
	})

	assert.NotContains(t, out, "CONTENT WITH LINE NUMBERS")
	assert.Contains(t, out, "key=value\nother=thing")
	assert.Contains(t, out, "Modifications applied: Added file statistics header")
}
