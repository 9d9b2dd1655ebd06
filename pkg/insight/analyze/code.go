package analyze

import (
	"strings"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// CodeMetrics describes source code through a line-oriented heuristic. It is
// deliberately approximate: definitions are recognized by leading keywords,
// not by parsing, so syntactically invalid source still yields metrics.
type CodeMetrics struct {
	TotalLines        int     `json:"total_lines"`
	CodeLines         int     `json:"code_lines"`
	CommentLines      int     `json:"comment_lines"`
	BlankLines        int     `json:"blank_lines"`
	Imports           int     `json:"imports"`
	Functions         int     `json:"functions"`
	Classes           int     `json:"classes"`
	DocumentedDefs    int     `json:"documented_definitions"`
	DocstringCoverage float64 `json:"docstring_coverage"`
	Language          string  `json:"language,omitempty"`
}

func (*CodeMetrics) MetricsFormat() format.Format { return format.PythonSource }

// CommentRatio is the fraction of lines that are comments (0 for empty
// input).
func (m *CodeMetrics) CommentRatio() float64 {
	if m.TotalLines == 0 {
		return 0
	}
	return float64(m.CommentLines) / float64(m.TotalLines)
}

// CodeDensity is the fraction of lines that are code (0 for empty input).
func (m *CodeMetrics) CodeDensity() float64 {
	if m.TotalLines == 0 {
		return 0
	}
	return float64(m.CodeLines) / float64(m.TotalLines)
}

var docstringMarkers = []string{`"""`, "'''"}

// AnalyzeCode computes CodeMetrics. It never fails, whatever the input.
//
// Per trimmed line: comments start with "#", imports with "import " or
// "from ", functions with "def " or "async def ", classes with "class ".
// A definition counts as documented when the next non-blank line opens a
// docstring. Coverage is documented definitions over all definitions, 0 when
// none exist.
func AnalyzeCode(content string) (Metrics, error) {
	lines := util.SplitLines(content)
	m := &CodeMetrics{TotalLines: len(lines)}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			m.BlankLines++
			continue
		case strings.HasPrefix(trimmed, "#"):
			m.CommentLines++
			continue
		default:
			m.CodeLines++
		}

		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ") {
			m.Imports++
		}

		isDef := strings.HasPrefix(trimmed, "def ") || strings.HasPrefix(trimmed, "async def ")
		isClass := strings.HasPrefix(trimmed, "class ")
		if !isDef && !isClass {
			continue
		}
		if isDef {
			m.Functions++
		} else {
			m.Classes++
		}
		if hasDocstring(lines, i+1) {
			m.DocumentedDefs++
		}
	}

	if defs := m.Functions + m.Classes; defs > 0 {
		m.DocstringCoverage = float64(m.DocumentedDefs) / float64(defs)
	}
	return m, nil
}

// hasDocstring reports whether the first non-blank line at or after start
// opens a docstring.
func hasDocstring(lines []string, start int) bool {
	for _, line := range lines[min(start, len(lines)):] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, marker := range docstringMarkers {
			if strings.HasPrefix(trimmed, marker) {
				return true
			}
		}
		return false
	}
	return false
}
