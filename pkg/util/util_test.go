package util_test

import (
	"path/filepath"
	"testing"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "No trailing newline",
			content:  "a\nb",
			expected: []string{"a", "b"},
		},
		{
			name:     "Trailing newline closes the last line",
			content:  "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "Empty content",
			content:  "",
			expected: nil,
		},
		{
			name:     "Single line without newline",
			content:  "hello",
			expected: []string{"hello"},
		},
		{
			name:     "Blank lines are preserved",
			content:  "a\n\nb\n",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "Windows line endings",
			content:  "a\r\nb\r\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "Only a newline is one empty line",
			content:  "\n",
			expected: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, util.SplitLines(tc.content))
		})
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 3, util.CountWords("hello world\nfoo"))
	assert.Equal(t, 0, util.CountWords("   \n\t "))
	assert.Equal(t, 2, util.CountWords("  padded   tokens  "))
}

func TestCountRunes(t *testing.T) {
	assert.Equal(t, 15, util.CountRunes("hello world\nfoo"))
	assert.Equal(t, 0, util.CountRunes(""))
	assert.Equal(t, 4, util.CountRunes("héllo"[0:5])) // h, é, l, l
}

func TestLongestLine(t *testing.T) {
	testCases := []struct {
		name        string
		lines       []string
		expected    string
		expectedLen int
	}{
		{
			name:        "Longest wins",
			lines:       []string{"hello world", "foo"},
			expected:    "hello world",
			expectedLen: 11,
		},
		{
			name:        "First occurrence wins ties",
			lines:       []string{"abc", "xyz"},
			expected:    "abc",
			expectedLen: 3,
		},
		{
			name:        "Empty input",
			lines:       nil,
			expected:    "",
			expectedLen: 0,
		},
		{
			name:        "Rune length not byte length",
			lines:       []string{"ééé", "abcd"},
			expected:    "abcd",
			expectedLen: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, n := util.LongestLine(tc.lines)
			assert.Equal(t, tc.expected, line)
			assert.Equal(t, tc.expectedLen, n)
		})
	}
}

func TestCompanionPath(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		suffix    string
		outputDir string
		expected  string
	}{
		{
			name:     "Next to the input by default",
			input:    filepath.Join("docs", "notes.txt"),
			suffix:   "analyzed",
			expected: filepath.Join("docs", "notes_analyzed.txt"),
		},
		{
			name:      "Output directory override",
			input:     filepath.Join("docs", "notes.txt"),
			suffix:    "analyzed",
			outputDir: "out",
			expected:  filepath.Join("out", "notes_analyzed.txt"),
		},
		{
			name:     "No extension",
			input:    "Makefile",
			suffix:   "modified",
			expected: "Makefile_modified",
		},
		{
			name:     "Suffix stacks instead of overwriting",
			input:    "notes_analyzed.txt",
			suffix:   "analyzed",
			expected: "notes_analyzed_analyzed.txt",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := util.CompanionPath(tc.input, tc.suffix, tc.outputDir)
			assert.Equal(t, tc.expected, got)
			assert.NotEqual(t, tc.input, got, "companion path must never equal the input")
		})
	}
}

func TestHasCompanionSuffix(t *testing.T) {
	suffixes := []string{"analyzed", "enhanced", "documented", "modified"}
	assert.True(t, util.HasCompanionSuffix("notes_analyzed.txt", suffixes))
	assert.True(t, util.HasCompanionSuffix(filepath.Join("a", "b_enhanced.json"), suffixes))
	assert.False(t, util.HasCompanionSuffix("notes.txt", suffixes))
	assert.False(t, util.HasCompanionSuffix("analyzed.txt", suffixes))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", util.Truncate("abc", 5))
	assert.Equal(t, "ab...", util.Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", util.Truncate("abcdef", 0))
}
