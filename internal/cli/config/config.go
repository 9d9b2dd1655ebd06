// Package config loads and validates CLI configuration from defaults, an
// optional config file, environment variables, and command-line flags, in
// ascending precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

const (
	// EnvPrefix namespaces environment variables, e.g. FILE_INSIGHT_VERBOSE.
	EnvPrefix = "FILE_INSIGHT"
	// DefaultConfigName is the config file basename searched for when no
	// --config flag is given.
	DefaultConfigName = "file-insight"
)

// Settings is the fully resolved CLI configuration: the engine options plus
// the knobs that only concern the command layer.
type Settings struct {
	Opts insight.Options

	// Plain disables all interactive output (progress bar, TUI session).
	Plain bool
	// Recursive expands directory arguments into their eligible files.
	Recursive bool
	// SummaryFile, when set, is the directory the session summary report
	// is saved into after a run.
	SummaryFile string
	Verbose     bool

	// ConfigFileUsed is the config file viper ended up reading, if any.
	ConfigFileUsed string
}

// Load resolves the final configuration for a command invocation and builds
// the logger both the CLI and the engine will use. Flag values take the
// highest precedence, then environment, then the config file, then defaults.
func Load(cfgFile, appVersion string, flags *pflag.FlagSet) (Settings, *slog.Logger, error) {
	var s Settings
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return s, nil, fmt.Errorf("resolving home directory: %w", err)
		}
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		v.AddConfigPath(filepath.Join(home, "."+DefaultConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return s, nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	s.ConfigFileUsed = v.ConfigFileUsed()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"mode", "verbose", "plain", "output-dir", "report-format",
		"metadata-format", "git-metadata", "recursive", "summary-file",
		"default-encoding",
	} {
		if flag := flags.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return s, nil, fmt.Errorf("binding flag --%s: %w", key, err)
			}
		}
	}

	s.Verbose = v.GetBool("verbose")
	s.Plain = v.GetBool("plain")
	s.Recursive = v.GetBool("recursive")
	s.SummaryFile = v.GetString("summary-file")

	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	s.Opts = insight.Options{
		Mode:            insight.Mode(v.GetString("mode")),
		OutputDir:       v.GetString("output-dir"),
		ReportFormat:    insight.ReportFormat(v.GetString("report-format")),
		MetadataFormat:  insight.MetadataFormat(v.GetString("metadata-format")),
		GitMetadata:     v.GetBool("git-metadata"),
		DefaultEncoding: v.GetString("default-encoding"),
		AppVersion:      appVersion,
		Verbose:         s.Verbose,
		Logger:          handler,
	}

	if err := validate(&s); err != nil {
		return s, logger, err
	}

	logger.Debug("configuration resolved",
		slog.String("configFile", s.ConfigFileUsed),
		slog.String("mode", string(s.Opts.Mode)),
		slog.String("reportFormat", string(s.Opts.ReportFormat)),
		slog.Bool("verbose", s.Verbose))
	return s, logger, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", string(insight.DefaultMode))
	v.SetDefault("verbose", insight.DefaultVerbose)
	v.SetDefault("plain", false)
	v.SetDefault("output-dir", "")
	v.SetDefault("report-format", string(insight.DefaultReportFormat))
	v.SetDefault("metadata-format", string(insight.DefaultMetadataFormat))
	v.SetDefault("git-metadata", insight.DefaultGitMetadata)
	v.SetDefault("recursive", false)
	v.SetDefault("summary-file", "")
	v.SetDefault("default-encoding", "")
}

// validate checks the settings the engine cannot check itself: anything
// touching the filesystem. Enum validation is left to insight.NewEngine so
// the rules live in one place.
func validate(s *Settings) error {
	if s.Opts.OutputDir != "" {
		abs, err := filepath.Abs(s.Opts.OutputDir)
		if err != nil {
			return fmt.Errorf("%w: cannot resolve output directory %q: %v",
				insight.ErrConfigValidation, s.Opts.OutputDir, err)
		}
		s.Opts.OutputDir = abs
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return fmt.Errorf("%w: cannot create output directory %q: %v",
				insight.ErrConfigValidation, abs, err)
		}
	}
	if s.SummaryFile != "" {
		abs, err := filepath.Abs(s.SummaryFile)
		if err != nil {
			return fmt.Errorf("%w: cannot resolve summary directory %q: %v",
				insight.ErrConfigValidation, s.SummaryFile, err)
		}
		s.SummaryFile = abs
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return fmt.Errorf("%w: cannot create summary directory %q: %v",
				insight.ErrConfigValidation, abs, err)
		}
	}
	return nil
}
