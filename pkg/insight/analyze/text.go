package analyze

import (
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// TextMetrics describes plain-text content. Characters are Unicode code
// points including newlines; words are whitespace-delimited tokens; the
// longest line is measured in runes with the first occurrence winning ties.
type TextMetrics struct {
	Lines           int     `json:"lines"`
	Words           int     `json:"words"`
	Chars           int     `json:"characters"`
	LongestLine     string  `json:"longest_line"`
	LongestLineLen  int     `json:"longest_line_length"`
	AvgWordsPerLine float64 `json:"average_words_per_line"`
}

func (*TextMetrics) MetricsFormat() format.Format { return format.Text }

// AnalyzeText computes TextMetrics. It never fails.
func AnalyzeText(content string) (Metrics, error) {
	lines := util.SplitLines(content)
	longest, longestLen := util.LongestLine(lines)

	m := &TextMetrics{
		Lines:          len(lines),
		Words:          util.CountWords(content),
		Chars:          util.CountRunes(content),
		LongestLine:    longest,
		LongestLineLen: longestLen,
	}
	if m.Lines > 0 {
		m.AvgWordsPerLine = float64(m.Words) / float64(m.Lines)
	}
	return m, nil
}
