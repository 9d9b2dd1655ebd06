// Package insight analyzes data files and writes enhanced companions next
// to them. It detects the format of each input, runs the matching analyzer,
// and renders a format-specific output document, collecting the results of
// a whole run into a structured report.
//
// The Engine type is the primary entry point; the package-level Run and
// AnalyzeFile functions cover the common single-shot cases.
package insight

import "context"

// Run processes paths with a one-off engine built from opts. Callers that
// process several batches should construct an Engine once instead.
func Run(ctx context.Context, opts Options, paths []string) (RunReport, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return RunReport{}, err
	}
	return engine.Run(ctx, paths)
}

// AnalyzeFile processes a single path with a one-off engine built from opts.
func AnalyzeFile(ctx context.Context, opts Options, path string) (FileReport, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return FileReport{}, err
	}
	return engine.ProcessFile(ctx, path), nil
}
