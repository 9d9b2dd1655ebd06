package analyze

import (
	"strings"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// maxHeadingLevel caps ATX heading levels the way Markdown renderers do.
const maxHeadingLevel = 6

// Heading is one ATX heading in document order.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// MarkdownMetrics describes a Markdown document. Links and images are
// counted by their literal inline syntax; Bold and Italic count emphasis
// pairs; CodeBlocks counts fenced blocks (an unclosed fence is ignored).
type MarkdownMetrics struct {
	TotalLines int       `json:"total_lines"`
	Headings   []Heading `json:"headings"`
	Links      int       `json:"links"`
	Images     int       `json:"images"`
	CodeBlocks int       `json:"code_blocks"`
	Bold       int       `json:"bold"`
	Italic     int       `json:"italic"`
}

func (*MarkdownMetrics) MetricsFormat() format.Format { return format.Markdown }

// AnalyzeMarkdown computes MarkdownMetrics. It never fails.
func AnalyzeMarkdown(content string) (Metrics, error) {
	lines := util.SplitLines(content)
	m := &MarkdownMetrics{TotalLines: len(lines)}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		text := strings.TrimSpace(strings.Trim(trimmed, "#"))
		m.Headings = append(m.Headings, Heading{Level: level, Text: text})
	}

	m.Images = strings.Count(content, "![")
	if brackets := strings.Count(content, "["); brackets > m.Images {
		m.Links = brackets - m.Images
	}

	doubleStars := strings.Count(content, "**")
	m.Bold = doubleStars / 2
	if singles := strings.Count(content, "*") - 2*doubleStars; singles > 0 {
		m.Italic = singles / 2
	}
	m.CodeBlocks = strings.Count(content, "```") / 2

	return m, nil
}
