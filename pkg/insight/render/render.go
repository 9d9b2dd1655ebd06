// Package render turns MetricsRecords into human-readable summaries and
// enhanced output payloads. Rendering is deterministic given a clock; the
// layouts live in embedded text/template files.
package render

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/analyze"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

//go:embed templates
var templateFS embed.FS

// numberedExtensions lists the extensions modify mode annotates with line
// numbers and per-line statistics; other extensions keep their content.
var numberedExtensions = map[string]bool{
	".txt": true, ".md": true, ".py": true,
	".js": true, ".html": true, ".css": true,
}

var funcMap = template.FuncMap{
	"rule":  func(n int) string { return strings.Repeat("-", n) },
	"pct":   func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
	"ratio": func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"join":  strings.Join,
	"indent": func(level int) string {
		if level < 1 {
			level = 1
		}
		return strings.Repeat("  ", level-1)
	},
	"histogram": sortedHistogram,
}

var templates = template.Must(
	template.New("render").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"),
)

// typeCount is one sorted histogram entry for the summary template.
type typeCount struct {
	Type  string
	Count int
}

func sortedHistogram(hist map[string]int) []typeCount {
	out := make([]typeCount, 0, len(hist))
	for name, count := range hist {
		out = append(out, typeCount{Type: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Document is the input to Enhance and Modified: the original content with
// its computed metrics and optional provenance.
type Document struct {
	Path       string
	Content    string
	Metrics    analyze.Metrics
	Provenance *gitinfo.Snapshot
}

// Renderer produces summaries and enhanced payloads. The zero value works;
// New fills in the generator version and front matter format.
type Renderer struct {
	// MetadataFormat is "yaml", "toml", or "none" and controls the front
	// matter block on enhanced Markdown output.
	MetadataFormat string
	// Version is stamped into generator fields of enhanced outputs.
	Version string
	// Now supplies timestamps; nil means time.Now.
	Now func() time.Time
}

// New returns a Renderer with the given front matter format and version.
func New(metadataFormat, version string) *Renderer {
	return &Renderer{MetadataFormat: metadataFormat, Version: version}
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Renderer) generator() string {
	version := r.Version
	if version == "" {
		version = "dev"
	}
	return "file-insight " + version
}

// Summary renders the multi-line, labeled summary of a MetricsRecord. Every
// computed field of the variant appears with a label. It handles every
// variant and never fails.
func (r *Renderer) Summary(m analyze.Metrics) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "summary_"+string(m.MetricsFormat()), m); err != nil {
		// The embedded templates cover every variant; reaching this
		// means a new variant was added without a summary block.
		return fmt.Sprintf("Type: %s (no summary template: %v)", m.MetricsFormat(), err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Enhance produces the enhanced payload for the document's format: the
// original content augmented with the analysis in a format-appropriate way.
func (r *Renderer) Enhance(doc Document) (string, error) {
	switch m := doc.Metrics.(type) {
	case *analyze.TextMetrics:
		return r.enhanceText(doc, m)
	case *analyze.JSONMetrics:
		return r.enhanceJSON(doc, m)
	case *analyze.CSVMetrics:
		return r.enhanceCSV(doc, m)
	case *analyze.CodeMetrics:
		return r.enhanceCode(doc, m)
	case *analyze.MarkdownMetrics:
		return r.enhanceMarkdown(doc, m)
	default:
		return "", fmt.Errorf("no enhancement for metrics type %T", doc.Metrics)
	}
}

// lineStat backs the line-by-line sections of the text report and modified
// output.
type lineStat struct {
	Number int
	Words  int
	Chars  int
	Text   string
}

func lineStats(content string) []lineStat {
	lines := util.SplitLines(content)
	stats := make([]lineStat, len(lines))
	for i, line := range lines {
		stats[i] = lineStat{
			Number: i + 1,
			Words:  util.CountWords(line),
			Chars:  utf8.RuneCountInString(line),
			Text:   line,
		}
	}
	return stats
}

func (r *Renderer) enhanceText(doc Document, m *analyze.TextMetrics) (string, error) {
	view := struct {
		FileName  string
		Generated string
		Content   string
		Metrics   *analyze.TextMetrics
		Lines     []lineStat
	}{
		FileName:  filepath.Base(doc.Path),
		Generated: r.now().Format("2006-01-02 15:04:05"),
		Content:   strings.TrimRight(doc.Content, "\n"),
		Metrics:   m,
		Lines:     lineStats(doc.Content),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "text_report.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering text report: %w", err)
	}
	return buf.String(), nil
}

// enhanceJSON wraps the original document tree in a _metadata envelope. The
// analysis object round-trips: re-parsing it yields the same JSONMetrics.
func (r *Renderer) enhanceJSON(doc Document, m *analyze.JSONMetrics) (string, error) {
	dec := json.NewDecoder(strings.NewReader(doc.Content))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		// Enhance only runs after successful analysis, so the content
		// is known to parse.
		return "", fmt.Errorf("re-parsing analyzed json: %w", err)
	}

	metadata := map[string]any{
		"original_file": filepath.Base(doc.Path),
		"processed_at":  r.now().Format(time.RFC3339),
		"generator":     r.generator(),
		"analysis":      m,
	}
	if doc.Provenance != nil {
		metadata["provenance"] = doc.Provenance
	}

	out, err := json.MarshalIndent(map[string]any{
		"_metadata": metadata,
		"data":      data,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling enhanced json: %w", err)
	}
	return string(out) + "\n", nil
}

// enhanceCSV emits commented metadata records, the original table, and a
// per-column statistics block, all through the standard CSV writer so
// quoting stays correct.
func (r *Renderer) enhanceCSV(doc Document, m *analyze.CSVMetrics) (string, error) {
	records, err := csv.NewReader(strings.NewReader(doc.Content)).ReadAll()
	if err != nil {
		return "", fmt.Errorf("re-parsing analyzed csv: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"# Enhanced CSV File"},
		{"# Original: " + filepath.Base(doc.Path)},
		{"# Processed: " + r.now().Format(time.RFC3339)},
		{fmt.Sprintf("# Columns: %d", m.Columns)},
		{fmt.Sprintf("# Rows: %d", m.Rows)},
		{""},
	}
	rows = append(rows, records...)
	rows = append(rows, []string{""}, []string{"# Column Statistics"})
	for _, fill := range m.NonEmpty {
		rows = append(rows, []string{
			"Column: " + fill.Column,
			fmt.Sprintf("Non-empty cells: %d", fill.Count),
			fmt.Sprintf("Ratio: %.2f", fill.Ratio),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("writing enhanced csv: %w", err)
	}
	w.Flush()
	return buf.String(), nil
}

func (r *Renderer) enhanceCode(doc Document, m *analyze.CodeMetrics) (string, error) {
	view := struct {
		FileName  string
		Generated string
		Content   string
		Metrics   *analyze.CodeMetrics
	}{
		FileName:  filepath.Base(doc.Path),
		Generated: r.now().Format("2006-01-02 15:04:05"),
		Content:   doc.Content,
		Metrics:   m,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "python_doc.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering python documentation: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) enhanceMarkdown(doc Document, m *analyze.MarkdownMetrics) (string, error) {
	front, err := r.frontMatter(doc)
	if err != nil {
		return "", err
	}

	view := struct {
		FrontMatter string
		FileName    string
		Generated   string
		Content     string
		Metrics     *analyze.MarkdownMetrics
	}{
		FrontMatter: front,
		FileName:    filepath.Base(doc.Path),
		Generated:   r.now().Format("2006-01-02 15:04:05"),
		Content:     doc.Content,
		Metrics:     m,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "markdown_enhanced.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering enhanced markdown: %w", err)
	}
	return buf.String(), nil
}

// Modified renders the modify-mode payload: a statistics header, the content
// with line numbers and per-line statistics for text-like extensions (or the
// unchanged content otherwise), and a modification footer.
func (r *Renderer) Modified(doc Document) string {
	lines := lineStats(doc.Content)
	numbered := numberedExtensions[strings.ToLower(filepath.Ext(doc.Path))]

	modifications := []string{"Added file statistics header"}
	if numbered {
		modifications = append(modifications, "Added line numbers", "Added line statistics")
	}

	view := struct {
		UpperName     string
		Chars         int
		LineCount     int
		Words         int
		Numbered      bool
		Lines         []lineStat
		Content       string
		Modifications string
	}{
		UpperName:     strings.ToUpper(filepath.Base(doc.Path)),
		Chars:         util.CountRunes(doc.Content),
		LineCount:     len(lines),
		Words:         util.CountWords(doc.Content),
		Numbered:      numbered,
		Lines:         lines,
		Content:       strings.TrimRight(doc.Content, "\n"),
		Modifications: strings.Join(modifications, ", "),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "modified.tmpl", view); err != nil {
		// The modified template takes no failure-prone inputs.
		return doc.Content
	}
	return buf.String()
}
