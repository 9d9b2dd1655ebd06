package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/analyze"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/encoding"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/render"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// Pipeline runs the per-file state machine: Reading, Detecting, Analyzing,
// Rendering, Writing. One Pipeline serves all files of an engine run; it
// holds no per-file state.
type Pipeline struct {
	opts     *Options
	logger   *slog.Logger
	decoder  encoding.Decoder
	renderer *render.Renderer
	resolver gitinfo.Resolver
	now      func() time.Time
}

// NewPipeline wires a pipeline from fully resolved options. NewEngine is the
// usual constructor path; this exists for tests driving single files.
func NewPipeline(opts *Options) *Pipeline {
	return &Pipeline{
		opts:     opts,
		logger:   slog.New(opts.Logger).With(slog.String("component", "pipeline")),
		decoder:  opts.Decoder,
		renderer: opts.Renderer,
		resolver: opts.Resolver,
		now:      opts.Now,
	}
}

// ProcessFile runs the state machine for one input and returns its
// FileReport. Every failure is converted into a terminal state with a
// user-facing message; nothing propagates as a fault. The context is only
// consulted for provenance lookup; a started file always runs to completion
// or terminal failure.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (report FileReport) {
	start := p.now()
	report = FileReport{
		Input:       path,
		Status:      StatusProcessing,
		State:       StateStart,
		ProcessedAt: start,
	}
	defer func() {
		report.Duration = p.now().Sub(start)
	}()

	logArgs := []any{slog.String("path", path)}

	// Reading.
	report.State = StateReading
	raw, text, err := p.read(path)
	if err != nil {
		p.logger.Debug("read failed", append(logArgs, slog.Any("error", err))...)
		return p.fail(report, StateReadFailed, err)
	}

	// Detecting. Total: unknown extensions get a warning and the text
	// analyzer, so every readable file yields metrics.
	report.State = StateDetecting
	handle := FileHandle{Path: path, Format: format.Detect(path)}
	report.Format = handle.Format
	effective := handle.Format
	if effective == format.Unsupported {
		hint := format.LanguageHint(path, raw)
		report.Warning = fmt.Sprintf("unsupported extension, analyzing as plain text (detected language: %s)", hint)
		p.logger.Warn("unsupported extension, falling back to text analysis",
			append(logArgs, slog.String("language", hint))...)
		effective = format.Text
	}
	if p.opts.Mode == ModeModify {
		// Modify mode annotates content without interpreting it, so
		// the tolerant text analyzer backs its statistics.
		effective = format.Text
	}
	p.logger.Debug("format detected", append(logArgs, slog.String("format", string(handle.Format)))...)

	// Analyzing.
	report.State = StateAnalyzing
	metrics, err := analyze.ForFormat(effective)(text)
	if err != nil {
		var malformed *analyze.MalformedDataError
		if errors.As(err, &malformed) {
			err = fmt.Errorf("%w: %w", ErrMalformedData, err)
		}
		p.logger.Debug("analysis failed", append(logArgs, slog.Any("error", err))...)
		return p.fail(report, StateAnalysisFailed, err)
	}
	if code, ok := metrics.(*analyze.CodeMetrics); ok {
		code.Language = format.LanguageHint(path, raw)
	}
	report.Metrics = metrics

	// Rendering. Always succeeds for a valid MetricsRecord; an error here
	// means an internal defect, reported rather than panicked.
	report.State = StateRendering
	report.Summary = p.renderer.Summary(metrics)

	doc := render.Document{
		Path:       path,
		Content:    text,
		Metrics:    metrics,
		Provenance: p.provenance(ctx, path, logArgs),
	}

	var payload string
	suffix := effective.Suffix()
	if p.opts.Mode == ModeModify {
		payload = p.renderer.Modified(doc)
		suffix = ModifiedSuffix
	} else {
		payload, err = p.renderer.Enhance(doc)
		if err != nil {
			p.logger.Error("rendering failed", append(logArgs, slog.Any("error", err))...)
			return p.fail(report, StateWriteFailed, fmt.Errorf("%w: rendering: %v", ErrDiskWrite, err))
		}
	}

	// Writing. The companion path can never equal the input because the
	// suffix is non-empty, but the guard stays: overwriting the input is
	// the one unrecoverable mistake this tool could make.
	report.State = StateWriting
	outputPath := util.CompanionPath(path, suffix, p.opts.OutputDir)
	if outputPath == path {
		return p.fail(report, StateWriteFailed,
			fmt.Errorf("%w: companion path %q equals the input path", ErrDiskWrite, outputPath))
	}
	if err := os.WriteFile(outputPath, []byte(payload), 0o644); err != nil {
		p.logger.Debug("write failed", append(logArgs, slog.Any("error", err))...)
		return p.fail(report, StateWriteFailed, classifyWriteError(outputPath, err))
	}

	report.State = StateDone
	report.Status = StatusSuccess
	report.OutputPath = outputPath
	p.logger.Info("file processed",
		append(logArgs, slog.String("format", string(handle.Format)), slog.String("output", outputPath))...)
	return report
}

// read stats, reads, and decodes the input, classifying every failure into
// the error taxonomy.
func (p *Pipeline) read(path string) (raw []byte, text string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", classifyReadError(path, err)
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("%w: %q", ErrIsDirectory, path)
	}

	raw, err = os.ReadFile(path)
	if err != nil {
		return nil, "", classifyReadError(path, err)
	}

	if p.decoder.IsBinary(raw) {
		return nil, "", fmt.Errorf("%w: %q looks like binary content", ErrDecode, path)
	}
	text, encodingName, err := p.decoder.DecodeText(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	p.logger.Debug("decoded input", slog.String("path", path), slog.String("encoding", encodingName))
	return raw, text, nil
}

// provenance resolves optional git metadata. Failures are advisory and only
// logged; missing provenance never fails a file.
func (p *Pipeline) provenance(ctx context.Context, path string, logArgs []any) *gitinfo.Snapshot {
	if !p.opts.GitMetadata {
		return nil
	}
	snap, err := p.resolver.Describe(ctx, path)
	if err != nil {
		if !errors.Is(err, gitinfo.ErrNotRepository) {
			p.logger.Debug("provenance lookup failed", append(logArgs, slog.Any("error", err))...)
		}
		return nil
	}
	return snap
}

func (p *Pipeline) fail(report FileReport, state State, err error) FileReport {
	report.State = state
	report.Status = StatusFailed
	report.Error = err.Error()
	return report
}
