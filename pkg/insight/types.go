package insight

import "github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"

// Status is the terminal outcome of processing one file.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Mode selects the processing pipeline variant.
type Mode string

const (
	// ModeAnalyze runs format detection, analysis, and writes an enhanced
	// companion file.
	ModeAnalyze Mode = "analyze"
	// ModeModify writes an annotated copy of the input (statistics header,
	// numbered lines, per-line statistics) regardless of format.
	ModeModify Mode = "modify"
)

// State names a step of the per-file state machine. Transitions are strictly
// Start → Reading → {ReadFailed | Detecting} → Analyzing →
// {AnalysisFailed | Rendering} → Writing → {WriteFailed | Done}.
type State string

const (
	StateStart          State = "start"
	StateReading        State = "reading"
	StateReadFailed     State = "read_failed"
	StateDetecting      State = "detecting"
	StateAnalyzing      State = "analyzing"
	StateAnalysisFailed State = "analysis_failed"
	StateRendering      State = "rendering"
	StateWriting        State = "writing"
	StateWriteFailed    State = "write_failed"
	StateDone           State = "done"
)

// Failed reports whether the state is one of the terminal failure states.
func (s State) Failed() bool {
	switch s {
	case StateReadFailed, StateAnalysisFailed, StateWriteFailed:
		return true
	}
	return false
}

// ReportFormat selects the serialization of the final run report.
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatTOML ReportFormat = "toml"
)

// MetadataFormat selects the front matter emitted on enhanced Markdown.
type MetadataFormat string

const (
	MetadataNone MetadataFormat = "none"
	MetadataYAML MetadataFormat = "yaml"
	MetadataTOML MetadataFormat = "toml"
)

// FileHandle pairs an accepted input path with its detected format. Created
// when the orchestrator accepts the input and read-only afterwards.
type FileHandle struct {
	Path   string        `json:"path"`
	Format format.Format `json:"format"`
}
