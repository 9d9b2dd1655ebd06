package history_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/history"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
}

func TestLogAppendAndSnapshot(t *testing.T) {
	log := history.New()
	assert.Equal(t, 0, log.Len())

	log.Append(insight.FileReport{Input: "a.txt", Status: insight.StatusSuccess})
	log.Append(insight.FileReport{Input: "a.txt", Status: insight.StatusFailed})
	assert.Equal(t, 2, log.Len(), "duplicates are kept")

	snap := log.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, insight.StatusSuccess, snap[0].Status)
	assert.Equal(t, insight.StatusFailed, snap[1].Status)

	// Mutating the snapshot must not affect the log.
	snap[0].Input = "changed"
	assert.Equal(t, "a.txt", log.Snapshot()[0].Input)
}

func TestLogConcurrentAppend(t *testing.T) {
	log := history.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(insight.FileReport{Input: "x.txt"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, log.Len())
}

func TestWriteSummaryLayout(t *testing.T) {
	log := history.NewWithClock(fixedClock())
	log.Append(insight.FileReport{
		Input:       "/data/notes.txt",
		Format:      format.Text,
		Status:      insight.StatusSuccess,
		ProcessedAt: time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC),
	})
	log.Append(insight.FileReport{
		Input:       "/data/broken.csv",
		Format:      format.CSV,
		Status:      insight.StatusFailed,
		Error:       "malformed data: record 2 has 2 fields, header has 3",
		ProcessedAt: time.Date(2025, 6, 1, 11, 59, 30, 0, time.UTC),
	})

	var b strings.Builder
	require.NoError(t, log.WriteSummary(&b))
	out := b.String()

	assert.Contains(t, out, "FILE PROCESSING SUMMARY REPORT")
	assert.Contains(t, out, strings.Repeat("=", 50))
	assert.Contains(t, out, "Generated: 2025-06-01 12:00:00")
	assert.Contains(t, out, "Total Files Processed: 2")
	assert.Contains(t, out, "1. notes.txt")
	assert.Contains(t, out, "   Type: text")
	assert.Contains(t, out, "   Status: SUCCESS")
	assert.Contains(t, out, "2. broken.csv")
	assert.Contains(t, out, "   Status: FAILED")
	assert.Contains(t, out, "   Error: malformed data")
}

func TestSaveSummary(t *testing.T) {
	dir := t.TempDir()
	log := history.NewWithClock(fixedClock())
	log.Append(insight.FileReport{
		Input:       "a.txt",
		Format:      format.Text,
		Status:      insight.StatusSuccess,
		ProcessedAt: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	})

	path, err := log.SaveSummary(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processing_summary_20250601_120000.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "FILE PROCESSING SUMMARY REPORT")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
