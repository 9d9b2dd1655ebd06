// Package history keeps an in-memory log of processed files and renders the
// session summary report.
package history

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

// summaryFilePattern names the on-disk summary report; the timestamp keeps
// consecutive sessions from clobbering each other.
const summaryFilePattern = "processing_summary_%s.txt"

// Log is an append-only record of every file processed during a session.
// All methods are safe for concurrent use. It implements insight.History.
type Log struct {
	mu      sync.Mutex
	entries []insight.FileReport
	now     func() time.Time
}

// New returns an empty log stamping summaries with the wall clock.
func New() *Log {
	return &Log{now: time.Now}
}

// NewWithClock returns an empty log using now for summary timestamps.
func NewWithClock(now func() time.Time) *Log {
	return &Log{now: now}
}

// Append records one processed file.
func (l *Log) Append(report insight.FileReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, report)
}

// Snapshot returns a copy of the entries in append order.
func (l *Log) Snapshot() []insight.FileReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Len reports how many files have been recorded.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// WriteSummary renders the human-readable session summary to w.
func (l *Log) WriteSummary(w io.Writer) error {
	entries := l.Snapshot()

	var b strings.Builder
	b.WriteString("FILE PROCESSING SUMMARY REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", l.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Files Processed: %d\n\n", len(entries))

	for i, e := range entries {
		status := "SUCCESS"
		if e.Status != insight.StatusSuccess {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, filepath.Base(e.Input))
		fmt.Fprintf(&b, "   Type: %s\n", e.Format)
		fmt.Fprintf(&b, "   Processed: %s\n", e.ProcessedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "   Status: %s\n", status)
		if e.Error != "" {
			fmt.Fprintf(&b, "   Error: %s\n", e.Error)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveSummary writes the summary report into dir as
// processing_summary_<timestamp>.txt and returns the path. The file is
// written to a temp name first and renamed so readers never observe a
// partial report.
func (l *Log) SaveSummary(dir string) (string, error) {
	name := fmt.Sprintf(summaryFilePattern, l.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, name+".tmp*")
	if err != nil {
		return "", fmt.Errorf("creating summary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := l.WriteSummary(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing summary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing summary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("finalizing summary file: %w", err)
	}
	return path, nil
}
