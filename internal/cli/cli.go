// Package cli drives the two front ends over the insight engine: batch
// processing of path arguments and the interactive session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/config"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/hooks"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/picker"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/ui"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/history"
)

// RunBatch processes the given paths and writes the run report to stdout.
// Directory arguments are expanded when recursive mode is on; otherwise they
// flow through the pipeline and fail with a directory error. A non-nil error
// return means at least one file failed, so the process exits non-zero.
func RunBatch(ctx context.Context, s config.Settings, logger *slog.Logger, paths []string, stdout io.Writer) error {
	inputs, err := expandInputs(paths, s.Recursive)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files to process")
	}

	hist := history.New()

	var bar hooks.ProgressBar
	if !s.Verbose && !s.Plain && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = newBar(len(inputs))
	}
	h := hooks.New(logger, false, s.Verbose, nil, bar)

	opts := s.Opts
	opts.EventHooks = h
	opts.History = hist

	engine, err := insight.NewEngine(opts)
	if err != nil {
		return err
	}
	report, runErr := engine.Run(ctx, inputs)

	if err := report.WriteReport(stdout, s.Opts.ReportFormat); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	if err := saveSummary(hist, s.SummaryFile, logger); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}
	if report.Failed() {
		return fmt.Errorf("%d of %d files failed", report.Summary.Failed, report.Summary.Total)
	}
	return nil
}

// RunSession starts the interactive loop: a Bubble Tea program on a TTY, a
// plain stdin prompt otherwise.
func RunSession(ctx context.Context, s config.Settings, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	hist := history.New()
	opts := s.Opts
	opts.History = hist

	engine, err := insight.NewEngine(opts)
	if err != nil {
		return err
	}
	runner := &sessionRunner{engine: engine, hist: hist, root: "."}

	if !s.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		model := ui.NewModel(runner, s.Opts.AppVersion)
		if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("interactive session: %w", err)
		}
	} else if err := plainSession(ctx, runner, stdin, stdout); err != nil {
		return err
	}

	return saveSummary(hist, s.SummaryFile, logger)
}

// sessionRunner adapts the engine and history to the slice the session UI
// needs.
type sessionRunner struct {
	engine *insight.Engine
	hist   *history.Log
	root   string
}

func (r *sessionRunner) Process(ctx context.Context, path string) insight.FileReport {
	return r.engine.ProcessFile(ctx, path)
}

func (r *sessionRunner) Summary() string {
	var b strings.Builder
	_ = r.hist.WriteSummary(&b)
	return strings.TrimRight(b.String(), "\n")
}

func (r *sessionRunner) Discover() ([]string, error) {
	return insight.DiscoverInputs(r.root)
}

// plainSession is the line-oriented fallback loop. EOF behaves like the quit
// sentinel.
func plainSession(ctx context.Context, runner *sessionRunner, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, "File Insight")
	fmt.Fprintf(stdout, "Supported types: %s\n", strings.Join(format.SupportedExtensions(), ", "))
	fmt.Fprintf(stdout, "Enter a file path, or: %s, %s, %s\n",
		insight.QuitSentinel, insight.SummarySentinel, insight.PickSentinel)

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "\nfile> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		// Sentinels match case-insensitively.
		switch strings.ToLower(line) {
		case "":
			continue
		case insight.QuitSentinel:
			return nil
		case insight.SummarySentinel:
			fmt.Fprintln(stdout)
			if err := runner.hist.WriteSummary(stdout); err != nil {
				return err
			}
			continue
		case insight.PickSentinel:
			picked, err := picker.Pick(runner.root)
			if err != nil {
				fmt.Fprintf(stdout, "pick: %v\n", err)
				continue
			}
			for _, path := range picked {
				printReport(stdout, runner.Process(ctx, path))
			}
			continue
		default:
			printReport(stdout, runner.Process(ctx, line))
		}
	}
}

func printReport(w io.Writer, r insight.FileReport) {
	if r.Succeeded() {
		fmt.Fprintf(w, "ok %s (%s)\n", r.Input, r.Format)
		fmt.Fprintln(w, r.Summary)
		fmt.Fprintf(w, "wrote %s\n", r.OutputPath)
	} else {
		fmt.Fprintf(w, "failed %s: %s\n", r.Input, r.Error)
	}
	if r.Warning != "" {
		fmt.Fprintf(w, "warning: %s\n", r.Warning)
	}
}

// expandInputs resolves the positional arguments into concrete files.
func expandInputs(paths []string, recursive bool) ([]string, error) {
	if !recursive {
		return paths, nil
	}
	var inputs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			found, err := insight.DiscoverInputs(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, found...)
			continue
		}
		// Missing paths stay in the list so the report records the failure.
		inputs = append(inputs, path)
	}
	return inputs, nil
}

func saveSummary(hist *history.Log, dir string, logger *slog.Logger) error {
	if dir == "" || hist.Len() == 0 {
		return nil
	}
	path, err := hist.SaveSummary(dir)
	if err != nil {
		return fmt.Errorf("saving summary report: %w", err)
	}
	logger.Info("summary report saved", slog.String("path", path))
	return nil
}

// newBar builds the batch progress bar on stderr so stdout stays clean for
// the run report.
func newBar(total int) hooks.ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "[", BarEnd: "]",
		}),
	)
	return &barAdapter{bar: bar}
}

// barAdapter narrows *progressbar.ProgressBar to the hooks interface;
// Describe on the underlying type returns nothing.
type barAdapter struct {
	bar *progressbar.ProgressBar
}

func (b *barAdapter) Add(n int) error { return b.bar.Add(n) }

func (b *barAdapter) Describe(description string) error {
	b.bar.Describe(description)
	return nil
}

func (b *barAdapter) Close() error { return b.bar.Close() }
