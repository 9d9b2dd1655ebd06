package hooks_test

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/hooks"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// recordingProgram captures UI messages.
type recordingProgram struct {
	mu   sync.Mutex
	msgs []interface{}
}

func (p *recordingProgram) Send(msg interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
}

// countingBar records progress bar interactions.
type countingBar struct {
	mu     sync.Mutex
	added  int
	closed bool
}

func (b *countingBar) Add(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.added += n
	return nil
}

func (b *countingBar) Describe(string) error { return nil }

func (b *countingBar) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func TestUIModeForwardsMessages(t *testing.T) {
	program := &recordingProgram{}
	h := hooks.New(testLogger(), true, false, program, nil)

	require.NoError(t, h.OnFileStart("a.txt"))
	require.NoError(t, h.OnFileStatusUpdate("a.txt", insight.StatusSuccess, "ok", time.Millisecond))
	require.NoError(t, h.OnRunComplete(insight.RunReport{}))

	require.Len(t, program.msgs, 3)
	assert.Equal(t, hooks.FileStartMsg{Path: "a.txt"}, program.msgs[0])
	update, ok := program.msgs[1].(hooks.FileStatusUpdateMsg)
	require.True(t, ok)
	assert.Equal(t, insight.StatusSuccess, update.Status)
	_, ok = program.msgs[2].(hooks.RunCompleteMsg)
	assert.True(t, ok)
}

func TestProgressBarModeCountsTerminalStates(t *testing.T) {
	bar := &countingBar{}
	h := hooks.New(testLogger(), false, false, nil, bar)

	require.NoError(t, h.OnFileStatusUpdate("a.txt", insight.StatusSuccess, "", time.Millisecond))
	require.NoError(t, h.OnFileStatusUpdate("b.txt", insight.StatusFailed, "boom", time.Millisecond))
	require.NoError(t, h.OnFileStatusUpdate("c.txt", insight.StatusProcessing, "", 0))
	assert.Equal(t, 2, bar.added, "only terminal states advance the bar")

	require.NoError(t, h.OnRunComplete(insight.RunReport{}))
	assert.True(t, bar.closed)
}

func TestVerboseModeSkipsBar(t *testing.T) {
	bar := &countingBar{}
	h := hooks.New(testLogger(), false, true, nil, bar)

	require.NoError(t, h.OnFileStart("a.txt"))
	require.NoError(t, h.OnFileStatusUpdate("a.txt", insight.StatusSuccess, "", time.Millisecond))
	assert.Equal(t, 0, bar.added)
}

func TestNilDependenciesGetNoOps(t *testing.T) {
	h := hooks.New(testLogger(), false, false, nil, nil)
	assert.NotPanics(t, func() {
		_ = h.OnFileStart("a.txt")
		_ = h.OnFileStatusUpdate("a.txt", insight.StatusSuccess, "", 0)
		_ = h.OnRunComplete(insight.RunReport{})
	})
}
