// Package hooks bridges engine lifecycle events to the CLI's output layer:
// the interactive session UI, the progress bar, or the logger.
package hooks

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

// FileStartMsg signals that the engine picked up a file.
type FileStartMsg struct{ Path string }

// FileStatusUpdateMsg signals a file reaching a terminal status.
type FileStatusUpdateMsg struct {
	Path     string
	Status   insight.Status
	Message  string
	Duration time.Duration
}

// RunCompleteMsg carries the final report when a run finishes.
type RunCompleteMsg struct{ Report insight.RunReport }

// UIProgram is the slice of a Bubble Tea program the hooks need.
type UIProgram interface {
	Send(msg interface{})
}

// ProgressBar is the slice of a progress bar the hooks need.
type ProgressBar interface {
	Add(num int) error
	Describe(description string) error
	Close() error
}

// NoOpUIProgram discards every message.
type NoOpUIProgram struct{}

func (*NoOpUIProgram) Send(msg interface{}) {}

// NoOpProgressBar ignores every update.
type NoOpProgressBar struct{}

func (*NoOpProgressBar) Add(num int) error { return nil }

func (*NoOpProgressBar) Describe(description string) error { return nil }

func (*NoOpProgressBar) Close() error { return nil }

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// CLIHooks implements insight.Hooks for the command line. Exactly one of
// the three output channels is active per run: the session UI, the progress
// bar, or plain logging.
type CLIHooks struct {
	logger    *slog.Logger
	uiEnabled bool
	verbose   bool
	ui        UIProgram
	bar       ProgressBar
	mu        sync.Mutex
}

// New builds hooks for a run. Pass nil for ui or bar; no-op versions are
// substituted so callers never branch on their presence.
func New(logger *slog.Logger, uiEnabled, verbose bool, ui UIProgram, bar ProgressBar) *CLIHooks {
	if ui == nil {
		ui = &NoOpUIProgram{}
	}
	if bar == nil {
		bar = &NoOpProgressBar{}
	}
	return &CLIHooks{
		logger:    logger,
		uiEnabled: uiEnabled,
		verbose:   verbose,
		ui:        ui,
		bar:       bar,
	}
}

// OnFileStart reports that processing of path began.
func (h *CLIHooks) OnFileStart(path string) error {
	if h.uiEnabled {
		h.ui.Send(FileStartMsg{Path: path})
		return nil
	}
	if h.verbose {
		h.logger.Debug("processing file", slog.String("path", path))
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = h.bar.Describe(fmt.Sprintf("processing %s", path))
	return nil
}

// OnFileStatusUpdate reports a file reaching success or failure. Safe for
// concurrent use.
func (h *CLIHooks) OnFileStatusUpdate(path string, status insight.Status, message string, duration time.Duration) error {
	if h.uiEnabled {
		h.ui.Send(FileStatusUpdateMsg{Path: path, Status: status, Message: message, Duration: duration})
		return nil
	}

	if h.verbose {
		attrs := []any{
			slog.String("path", path),
			slog.String("status", string(status)),
			slog.Duration("duration", duration),
		}
		switch status {
		case insight.StatusFailed:
			h.logger.Error("file processing failed", append(attrs, slog.String("error", message))...)
		default:
			h.logger.Info("file processed", attrs...)
		}
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if status == insight.StatusSuccess || status == insight.StatusFailed {
		_ = h.bar.Add(1)
	}
	if status == insight.StatusFailed {
		fmt.Fprintf(os.Stderr, "\n%s %s: %s\n", failStyle.Render("FAILED"), path, message)
	}
	return nil
}

// OnRunComplete finalizes whichever output channel was active.
func (h *CLIHooks) OnRunComplete(report insight.RunReport) error {
	if h.uiEnabled {
		h.ui.Send(RunCompleteMsg{Report: report})
		return nil
	}
	h.mu.Lock()
	_ = h.bar.Close()
	h.mu.Unlock()
	if !h.verbose {
		fmt.Fprintln(os.Stderr)
	}
	if report.Summary.Failed == 0 && h.verbose {
		h.logger.Info("run complete",
			slog.String("result", okStyle.Render("all files succeeded")),
			slog.Int("total", report.Summary.Total))
	}
	return nil
}
