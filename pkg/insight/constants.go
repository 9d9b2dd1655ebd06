package insight

// Defaults used when setting up viper bindings and when Options fields are
// left zero. NewEngine resolves these in one place.
const (
	// DefaultMode is the pipeline variant used when Options.Mode is empty.
	DefaultMode = ModeAnalyze
	// DefaultReportFormat is the run report serialization.
	DefaultReportFormat = ReportFormatText
	// DefaultMetadataFormat disables Markdown front matter.
	DefaultMetadataFormat = MetadataNone
	// DefaultGitMetadata is the default state for provenance resolution.
	DefaultGitMetadata = false
	// DefaultVerbose is the default state for debug logging.
	DefaultVerbose = false
)

// ModifiedSuffix is the companion suffix used by ModeModify for every
// format. Analyze-mode suffixes come from format.Suffix.
const ModifiedSuffix = "modified"

// Sentinels recognized by the interactive session. They are matched
// case-insensitively against the whole input line.
const (
	// QuitSentinel ends the session.
	QuitSentinel = "quit"
	// SummarySentinel renders the processing-history summary and continues.
	SummarySentinel = "summary"
	// PickSentinel opens the fuzzy file picker.
	PickSentinel = "pick"
)

// CompanionSuffixes lists every suffix the toolkit may append to an input's
// stem, for input discovery to skip previously generated outputs.
var CompanionSuffixes = []string{"analyzed", "enhanced", "documented", ModifiedSuffix}

// ReportSchemaVersion identifies the JSON run-report structure.
const ReportSchemaVersion = "1.0"
