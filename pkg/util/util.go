package util

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SplitLines splits content into lines using "\n" or "\r\n" as terminators.
// A trailing terminator closes the final line instead of opening an empty
// one, so "a\nb" and "a\nb\n" both yield two lines. Empty content yields no
// lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CountWords returns the number of whitespace-delimited tokens in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountRunes returns the number of Unicode code points in content, newlines
// included.
func CountRunes(content string) int {
	return utf8.RuneCountInString(content)
}

// LongestLine returns the line with the greatest rune length and that length.
// The first occurrence wins on ties. Returns ("", 0) for an empty slice.
func LongestLine(lines []string) (string, int) {
	longest := ""
	max := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > max {
			longest = line
			max = n
		}
	}
	return longest, max
}

// Stem returns the final path element without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompanionPath derives the output path for an input file: the stem gains
// "_<suffix>" and the extension is preserved. When outputDir is empty the
// companion lives next to the input. The result is never equal to the input
// path because the suffix is always non-empty.
func CompanionPath(inputPath, suffix, outputDir string) string {
	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
	}
	name := Stem(inputPath) + "_" + suffix + filepath.Ext(inputPath)
	return filepath.Join(dir, name)
}

// HasCompanionSuffix reports whether the path's stem already ends in one of
// the given companion suffixes, e.g. "notes_analyzed" for suffix "analyzed".
func HasCompanionSuffix(path string, suffixes []string) bool {
	stem := Stem(path)
	for _, s := range suffixes {
		if strings.HasSuffix(stem, "_"+s) {
			return true
		}
	}
	return false
}

// Truncate shortens content to at most max runes, appending "..." when
// anything was cut.
func Truncate(content string, max int) string {
	if max <= 0 || utf8.RuneCountInString(content) <= max {
		return content
	}
	runes := []rune(content)
	return string(runes[:max]) + "..."
}
