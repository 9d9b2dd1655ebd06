package analyze

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
)

// CSVMetrics describes a comma-separated table. The first record is the
// header: Columns is its width and Rows counts the data records below it.
type CSVMetrics struct {
	Columns    int          `json:"columns"`
	Rows       int          `json:"rows"`
	Headers    []string     `json:"headers"`
	NonEmpty   []ColumnFill `json:"non_empty"`
	TotalCells int          `json:"total_cells"`
}

func (*CSVMetrics) MetricsFormat() format.Format { return format.CSV }

// ColumnFill reports how many data cells of a column are non-blank and the
// fraction of the column they make up (0 when there are no data rows).
type ColumnFill struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Ratio  float64 `json:"ratio"`
}

// AnalyzeCSV parses content with standard quoting and the comma delimiter.
// Parser errors, inconsistent record widths, and missing headers fail with a
// MalformedDataError.
func AnalyzeCSV(content string) (Metrics, error) {
	reader := csv.NewReader(strings.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, malformedCSV(err)
	}
	if len(records) == 0 {
		return nil, &MalformedDataError{
			Format: format.CSV,
			Reason: "empty input: missing header record",
		}
	}

	headers := records[0]
	rows := records[1:]

	m := &CSVMetrics{
		Columns:    len(headers),
		Rows:       len(rows),
		Headers:    headers,
		NonEmpty:   make([]ColumnFill, len(headers)),
		TotalCells: len(headers) * len(rows),
	}
	for i, header := range headers {
		fill := ColumnFill{Column: header}
		for _, row := range rows {
			if strings.TrimSpace(row[i]) != "" {
				fill.Count++
			}
		}
		if len(rows) > 0 {
			fill.Ratio = float64(fill.Count) / float64(len(rows))
		}
		m.NonEmpty[i] = fill
	}
	return m, nil
}

func malformedCSV(err error) *MalformedDataError {
	mde := &MalformedDataError{Format: format.CSV, Reason: err.Error()}

	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		mde.Line = parseErr.Line
		if errors.Is(parseErr.Err, csv.ErrFieldCount) {
			mde.Reason = "inconsistent record width"
		} else {
			mde.Reason = parseErr.Err.Error()
		}
	}
	return mde
}
