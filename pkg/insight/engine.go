package insight

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/encoding"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/render"
)

// Engine orchestrates a processing run: it walks the input list, drives the
// per-file pipeline, keeps the run history, and reports lifecycle events
// through the configured hooks.
type Engine struct {
	opts     Options
	logger   *slog.Logger
	pipeline *Pipeline
	hooks    Hooks
	history  History
	now      func() time.Time
}

// NewEngine validates opts, applies defaults for every optional dependency,
// and returns a ready engine. It returns ErrConfigValidation when a required
// field is missing or an enum value is out of range.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("%w: Options.Logger must not be nil", ErrConfigValidation)
	}
	if opts.Mode == "" {
		opts.Mode = DefaultMode
	}
	if !slices.Contains([]Mode{ModeAnalyze, ModeModify}, opts.Mode) {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrConfigValidation, opts.Mode)
	}
	if opts.ReportFormat == "" {
		opts.ReportFormat = DefaultReportFormat
	}
	if !slices.Contains([]ReportFormat{ReportFormatText, ReportFormatJSON, ReportFormatYAML, ReportFormatTOML}, opts.ReportFormat) {
		return nil, fmt.Errorf("%w: unknown report format %q", ErrConfigValidation, opts.ReportFormat)
	}
	if opts.MetadataFormat == "" {
		opts.MetadataFormat = DefaultMetadataFormat
	}
	if !slices.Contains([]MetadataFormat{MetadataNone, MetadataYAML, MetadataTOML}, opts.MetadataFormat) {
		return nil, fmt.Errorf("%w: unknown metadata format %q", ErrConfigValidation, opts.MetadataFormat)
	}

	if opts.EventHooks == nil {
		opts.EventHooks = &NoOpHooks{}
	}
	if opts.History == nil {
		opts.History = &NoOpHistory{}
	}
	if opts.Resolver == nil {
		if opts.GitMetadata {
			opts.Resolver = gitinfo.NewGoGitResolver(opts.Logger)
		} else {
			opts.Resolver = &gitinfo.NoopResolver{}
		}
	}
	if opts.Decoder == nil {
		opts.Decoder = encoding.NewDecoder(opts.DefaultEncoding)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(string(opts.MetadataFormat), opts.AppVersion)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		opts:     opts,
		logger:   slog.New(opts.Logger).With(slog.String("component", "engine")),
		pipeline: NewPipeline(&opts),
		hooks:    opts.EventHooks,
		history:  opts.History,
		now:      opts.Now,
	}, nil
}

// Run processes paths in order and returns the aggregate RunReport. Files
// are independent: a failure is recorded and the run moves on. Cancellation
// is honored between files; a file already started runs to completion so the
// report never contains half-written state.
func (e *Engine) Run(ctx context.Context, paths []string) (RunReport, error) {
	start := e.now()
	report := RunReport{
		Summary: RunSummary{
			Total:         len(paths),
			GeneratedAt:   start,
			SchemaVersion: ReportSchemaVersion,
		},
		Files: make([]FileReport, 0, len(paths)),
	}

	e.logger.Info("run started",
		slog.Int("files", len(paths)),
		slog.String("mode", string(e.opts.Mode)))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("run cancelled", slog.Int("remaining", len(paths)-len(report.Files)))
			report.Summary.Duration = e.now().Sub(start).Seconds()
			return report, err
		}
		report.Files = append(report.Files, e.processOne(ctx, path))
	}

	report.Summary.Duration = e.now().Sub(start).Seconds()
	for _, fr := range report.Files {
		if fr.Succeeded() {
			report.Summary.Succeeded++
		} else {
			report.Summary.Failed++
		}
	}

	e.logger.Info("run finished",
		slog.Int("succeeded", report.Summary.Succeeded),
		slog.Int("failed", report.Summary.Failed),
		slog.Duration("duration", e.now().Sub(start)))

	if err := e.hooks.OnRunComplete(report); err != nil {
		e.logger.Warn("run completion hook failed", slog.Any("error", err))
	}
	return report, nil
}

// ProcessFile runs the pipeline for a single path, recording history and
// firing hooks exactly as Run does for each of its inputs.
func (e *Engine) ProcessFile(ctx context.Context, path string) FileReport {
	return e.processOne(ctx, path)
}

func (e *Engine) processOne(ctx context.Context, path string) FileReport {
	if err := e.hooks.OnFileStart(path); err != nil {
		e.logger.Warn("file start hook failed", slog.String("path", path), slog.Any("error", err))
	}

	fr := e.pipeline.ProcessFile(ctx, path)
	e.history.Append(fr)

	message := fr.Summary
	if fr.Status == StatusFailed {
		message = fr.Error
	}
	if err := e.hooks.OnFileStatusUpdate(path, fr.Status, message, fr.Duration); err != nil {
		e.logger.Warn("file status hook failed", slog.String("path", path), slog.Any("error", err))
	}
	return fr
}
