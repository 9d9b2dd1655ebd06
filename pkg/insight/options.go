package insight

import (
	"log/slog"
	"time"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/encoding"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/render"
)

// Hooks receives progress callbacks while the engine runs. The engine is
// single-threaded, so implementations never see concurrent calls. Hook
// errors are logged and ignored; they never affect processing.
type Hooks interface {
	// OnFileStart fires when the engine accepts an input, before Reading.
	OnFileStart(path string) error
	// OnFileStatusUpdate fires once per file with its terminal status.
	OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error
	// OnRunComplete fires after the last file with the assembled report.
	OnRunComplete(report RunReport) error
}

// NoOpHooks is the default do-nothing Hooks implementation.
type NoOpHooks struct{}

// OnFileStart implements Hooks. It performs no action.
func (*NoOpHooks) OnFileStart(path string) error { return nil }

// OnFileStatusUpdate implements Hooks. It performs no action.
func (*NoOpHooks) OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error {
	return nil
}

// OnRunComplete implements Hooks. It performs no action.
func (*NoOpHooks) OnRunComplete(report RunReport) error { return nil }

// History is the caller-owned, append-only processing log. The engine only
// ever appends; it never reads back, deduplicates, or prunes.
type History interface {
	Append(report FileReport)
	Snapshot() []FileReport
	Len() int
}

// NoOpHistory discards every report. Used when the caller does not keep a
// session log.
type NoOpHistory struct{}

// Append implements History. It performs no action.
func (*NoOpHistory) Append(FileReport) {}

// Snapshot implements History. It always returns nil.
func (*NoOpHistory) Snapshot() []FileReport { return nil }

// Len implements History. It always returns 0.
func (*NoOpHistory) Len() int { return 0 }

// Options configures an Engine. Logger is required; every other dependency
// defaults to a working implementation in NewEngine.
type Options struct {
	// Mode selects analyze or modify processing. Empty means DefaultMode.
	Mode Mode

	// OutputDir receives companion files. Empty means next to each input.
	OutputDir string

	// ReportFormat controls RunReport serialization for WriteReport.
	ReportFormat ReportFormat

	// MetadataFormat controls front matter on enhanced Markdown output.
	MetadataFormat MetadataFormat

	// GitMetadata enables provenance lookup for enhanced outputs.
	GitMetadata bool

	// DefaultEncoding names the character set assumed when detection is
	// uncertain. Empty trusts the detector.
	DefaultEncoding string

	// AppVersion is stamped into enhanced outputs ("file-insight vX").
	AppVersion string

	// Verbose enables debug logging.
	Verbose bool

	// Logger is the logging backend. Required.
	Logger slog.Handler

	// EventHooks receives progress callbacks. Nil means NoOpHooks.
	EventHooks Hooks

	// History is the caller-owned processing log. Nil means NoOpHistory.
	History History

	// Resolver supplies git provenance. Nil defaults to a go-git resolver
	// when GitMetadata is set, a no-op resolver otherwise.
	Resolver gitinfo.Resolver

	// Decoder detects binary content and decodes text. Nil means the
	// charset-detecting default.
	Decoder encoding.Decoder

	// Renderer produces summaries and enhanced payloads. Nil means a
	// renderer derived from MetadataFormat and AppVersion.
	Renderer *render.Renderer

	// Now supplies timestamps, injectable for tests. Nil means time.Now.
	Now func() time.Time
}
