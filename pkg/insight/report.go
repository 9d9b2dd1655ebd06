package insight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/analyze"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
)

// FileReport is the result of processing one input file. Failed files carry
// an Error and no OutputPath; succeeded files carry the companion path and
// the rendered summary.
type FileReport struct {
	Input       string          `json:"input"`
	Format      format.Format   `json:"format"`
	Status      Status          `json:"status"`
	State       State           `json:"state"`
	Summary     string          `json:"summary,omitempty"`
	OutputPath  string          `json:"outputPath,omitempty"`
	Warning     string          `json:"warning,omitempty"`
	Error       string          `json:"error,omitempty"`
	Metrics     analyze.Metrics `json:"metrics,omitempty"`
	ProcessedAt time.Time       `json:"processedAt"`
	Duration    time.Duration   `json:"duration"`
}

// Succeeded reports whether the file reached the Done state.
func (r FileReport) Succeeded() bool { return r.Status == StatusSuccess }

// RunReport summarizes one engine run over a sequence of inputs.
type RunReport struct {
	Summary RunSummary   `json:"summary"`
	Files   []FileReport `json:"files"`
}

// RunSummary carries the aggregated counts for a run.
type RunSummary struct {
	Total         int       `json:"total"`
	Succeeded     int       `json:"succeeded"`
	Failed        int       `json:"failed"`
	Duration      float64   `json:"durationSeconds"`
	GeneratedAt   time.Time `json:"generatedAt"`
	SchemaVersion string    `json:"schemaVersion"`
}

// Failed reports whether any file terminated in a failure state.
func (r RunReport) Failed() bool { return r.Summary.Failed > 0 }

// WriteReport serializes the run report to w in the requested format. The
// text form is the human-readable default; json, yaml, and toml are the
// machine forms.
func (r RunReport) WriteReport(w io.Writer, reportFormat ReportFormat) error {
	switch reportFormat {
	case ReportFormatText, "":
		return r.writeText(w)
	case ReportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case ReportFormatYAML:
		return yaml.NewEncoder(w).Encode(r.view())
	case ReportFormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(r.view()); err != nil {
			return fmt.Errorf("encoding toml report: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: unknown report format %q", ErrConfigValidation, reportFormat)
	}
}

func (r RunReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Processed %d file(s): %d succeeded, %d failed (%.2fs)\n",
		r.Summary.Total, r.Summary.Succeeded, r.Summary.Failed, r.Summary.Duration); err != nil {
		return err
	}
	for _, f := range r.Files {
		switch {
		case f.Succeeded():
			if _, err := fmt.Fprintf(w, "  %-7s %s -> %s\n", f.Status, f.Input, f.OutputPath); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "  %-7s %s: %s\n", f.Status, f.Input, f.Error); err != nil {
				return err
			}
		}
		if f.Warning != "" {
			if _, err := fmt.Fprintf(w, "          warning: %s\n", f.Warning); err != nil {
				return err
			}
		}
	}
	return nil
}

// reportView is the yaml/toml shape of a RunReport. The yaml and toml
// encoders cannot represent the Metrics interface directly, so the view
// flattens each variant into a plain map via its JSON form.
type reportView struct {
	Summary runSummaryView   `yaml:"summary" toml:"summary"`
	Files   []fileReportView `yaml:"files" toml:"files"`
}

type runSummaryView struct {
	Total         int     `yaml:"total" toml:"total"`
	Succeeded     int     `yaml:"succeeded" toml:"succeeded"`
	Failed        int     `yaml:"failed" toml:"failed"`
	Duration      float64 `yaml:"duration_seconds" toml:"duration_seconds"`
	GeneratedAt   string  `yaml:"generated_at" toml:"generated_at"`
	SchemaVersion string  `yaml:"schema_version" toml:"schema_version"`
}

type fileReportView struct {
	Input       string         `yaml:"input" toml:"input"`
	Format      string         `yaml:"format" toml:"format"`
	Status      string         `yaml:"status" toml:"status"`
	State       string         `yaml:"state" toml:"state"`
	OutputPath  string         `yaml:"output_path,omitempty" toml:"output_path,omitempty"`
	Warning     string         `yaml:"warning,omitempty" toml:"warning,omitempty"`
	Error       string         `yaml:"error,omitempty" toml:"error,omitempty"`
	Metrics     map[string]any `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
	ProcessedAt string         `yaml:"processed_at" toml:"processed_at"`
	DurationMs  int64          `yaml:"duration_ms" toml:"duration_ms"`
}

func (r RunReport) view() reportView {
	view := reportView{
		Summary: runSummaryView{
			Total:         r.Summary.Total,
			Succeeded:     r.Summary.Succeeded,
			Failed:        r.Summary.Failed,
			Duration:      r.Summary.Duration,
			GeneratedAt:   r.Summary.GeneratedAt.Format(time.RFC3339),
			SchemaVersion: r.Summary.SchemaVersion,
		},
		Files: make([]fileReportView, 0, len(r.Files)),
	}
	for _, f := range r.Files {
		view.Files = append(view.Files, fileReportView{
			Input:       f.Input,
			Format:      string(f.Format),
			Status:      string(f.Status),
			State:       string(f.State),
			OutputPath:  f.OutputPath,
			Warning:     f.Warning,
			Error:       f.Error,
			Metrics:     metricsMap(f.Metrics),
			ProcessedAt: f.ProcessedAt.Format(time.RFC3339),
			DurationMs:  f.Duration.Milliseconds(),
		})
	}
	return view
}

// metricsMap flattens a metrics variant through its JSON form.
func metricsMap(m analyze.Metrics) map[string]any {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	out["type"] = string(m.MetricsFormat())
	return out
}
