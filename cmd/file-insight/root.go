package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/internal/cli/config"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

var (
	// Set at build time via -ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "file-insight [paths...]",
	Short: "Analyzes data files and writes enhanced companions next to them.",
	Long: `file-insight detects the format of each input file (text, JSON, CSV,
Python, Markdown), computes format-specific statistics, and writes an
enhanced companion file alongside the original.

With path arguments it runs as a batch and prints a run report. Without
arguments it starts an interactive session that processes one file at a
time.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, insight.ModeAnalyze)
	},
}

// run is shared by the root and modify commands; only the mode differs.
func run(cmd *cobra.Command, args []string, mode insight.Mode) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	settings, logger, err := config.Load(cfgFile, version, cmd.Flags())
	if err != nil {
		return err
	}
	settings.Opts.Mode = mode

	if len(args) > 0 {
		return cli.RunBatch(ctx, settings, logger, args, cmd.OutOrStdout())
	}
	return cli.RunSession(ctx, settings, logger, cmd.InOrStdin(), cmd.OutOrStdout())
}

// Execute runs the root command. Cobra prints the error and main exits
// non-zero when a RunE returns one.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default searches ., $HOME/.config/file-insight/)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", insight.DefaultVerbose,
		"Enable verbose (debug) logging output")
	rootCmd.PersistentFlags().Bool("plain", false,
		"Disable interactive output (progress bar, session UI)")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "",
		"Directory for companion files (default: next to each input)")
	rootCmd.PersistentFlags().String("report-format", string(insight.DefaultReportFormat),
		`Run report format ("text", "json", "yaml", "toml")`)
	rootCmd.PersistentFlags().String("metadata-format", string(insight.DefaultMetadataFormat),
		`Front matter format in Markdown output ("none", "yaml", "toml")`)
	rootCmd.PersistentFlags().Bool("git-metadata", insight.DefaultGitMetadata,
		"Include git provenance (branch, commit, author) in enhanced output")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false,
		"Expand directory arguments into their eligible files")
	rootCmd.PersistentFlags().String("summary-file", "",
		"Directory to save the session summary report into after the run")
	rootCmd.PersistentFlags().String("default-encoding", "",
		"Fallback character encoding when detection fails (e.g. windows-1252)")
}
