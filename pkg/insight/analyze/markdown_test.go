package analyze_test

import (
	"testing"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/analyze"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = `# Title

Some intro with a [link](https://example.com) and an ![image](logo.png).

## Section One ##

Text with **bold** and *italic* words.

### Deep
#### Deeper

` + "```go\nfunc main() {}\n```" + `

## Section Two

Another [reference](https://example.org).
`

func TestAnalyzeMarkdown(t *testing.T) {
	m, err := analyze.AnalyzeMarkdown(sampleMarkdown)
	require.NoError(t, err)

	mm, ok := m.(*analyze.MarkdownMetrics)
	require.True(t, ok, "markdown analysis must produce MarkdownMetrics")
	assert.Equal(t, format.Markdown, m.MetricsFormat())

	assert.Equal(t, []analyze.Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "Section One"},
		{Level: 3, Text: "Deep"},
		{Level: 4, Text: "Deeper"},
		{Level: 2, Text: "Section Two"},
	}, mm.Headings)
	assert.Equal(t, 2, mm.Links)
	assert.Equal(t, 1, mm.Images)
	assert.Equal(t, 1, mm.CodeBlocks)
	assert.Equal(t, 1, mm.Bold)
	assert.Equal(t, 1, mm.Italic)
}

func TestAnalyzeMarkdownEdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected analyze.MarkdownMetrics
	}{
		{
			name:     "Empty document",
			content:  "",
			expected: analyze.MarkdownMetrics{},
		},
		{
			name:    "Heading level caps at six",
			content: "######## Overdone\n",
			expected: analyze.MarkdownMetrics{
				TotalLines: 1,
				Headings:   []analyze.Heading{{Level: 6, Text: "Overdone"}},
			},
		},
		{
			name:    "Indented heading is recognized",
			content: "   ## Indented\n",
			expected: analyze.MarkdownMetrics{
				TotalLines: 1,
				Headings:   []analyze.Heading{{Level: 2, Text: "Indented"}},
			},
		},
		{
			name:    "Image brackets do not double count as links",
			content: "![only image](x.png)\n",
			expected: analyze.MarkdownMetrics{
				TotalLines: 1,
				Images:     1,
			},
		},
		{
			name:    "Unclosed fence is not a block",
			content: "```\ncode\n",
			expected: analyze.MarkdownMetrics{
				TotalLines: 2,
			},
		},
		{
			name:    "No headings yields empty list",
			content: "plain paragraph\n",
			expected: analyze.MarkdownMetrics{
				TotalLines: 1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := analyze.AnalyzeMarkdown(tc.content)
			require.NoError(t, err, "markdown analysis must never fail")
			mm := m.(*analyze.MarkdownMetrics)
			assert.Equal(t, tc.expected, *mm)
		})
	}
}
