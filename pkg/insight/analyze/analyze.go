// Package analyze computes format-specific metrics from decoded file
// content. Every analyzer is a pure function from content to one metrics
// variant; none of them touch the filesystem. JSON and CSV analysis can fail
// with a MalformedDataError, the rest are total.
package analyze

import (
	"fmt"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
)

// Metrics is the computed analysis result for one file. Exactly one concrete
// variant exists per format; all counts are non-negative.
type Metrics interface {
	// MetricsFormat returns the format tag the variant belongs to.
	MetricsFormat() format.Format
}

// Analyzer turns decoded content into a metrics variant or a typed failure.
type Analyzer func(content string) (Metrics, error)

// ForFormat returns the analyzer matching the format tag. Unsupported files
// fall back to text analysis, keeping dispatch total just like detection.
func ForFormat(f format.Format) Analyzer {
	switch f {
	case format.JSON:
		return AnalyzeJSON
	case format.CSV:
		return AnalyzeCSV
	case format.PythonSource:
		return AnalyzeCode
	case format.Markdown:
		return AnalyzeMarkdown
	default:
		return AnalyzeText
	}
}

// MalformedDataError reports a structural parse failure in JSON or CSV
// input, carrying the format name and the parser's diagnostic. Line and
// Offset are 0 when the parser did not provide a position.
type MalformedDataError struct {
	Format format.Format
	Line   int
	Offset int64
	Reason string
}

func (e *MalformedDataError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("malformed %s data at line %d: %s", e.Format, e.Line, e.Reason)
	case e.Offset > 0:
		return fmt.Sprintf("malformed %s data at offset %d: %s", e.Format, e.Offset, e.Reason)
	default:
		return fmt.Sprintf("malformed %s data: %s", e.Format, e.Reason)
	}
}
