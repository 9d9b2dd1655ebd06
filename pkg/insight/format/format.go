// Package format maps file paths to the fixed set of formats the analyzers
// understand. Detection is extension based, total, and side-effect free:
// every path yields exactly one tag, unknown extensions yield Unsupported.
package format

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Format identifies which analyzer applies to a file.
type Format string

const (
	Text         Format = "text"
	JSON         Format = "json"
	CSV          Format = "csv"
	PythonSource Format = "python-source"
	Markdown     Format = "markdown"
	Unsupported  Format = "unsupported"
)

// extensionTable is the authoritative extension mapping. Detection never
// consults content; the table is deliberately closed.
var extensionTable = map[string]Format{
	".txt":  Text,
	".json": JSON,
	".csv":  CSV,
	".py":   PythonSource,
	".md":   Markdown,
}

// companionSuffixes maps each format to the suffix of its companion file.
var companionSuffixes = map[Format]string{
	Text:         "analyzed",
	JSON:         "enhanced",
	CSV:          "enhanced",
	PythonSource: "documented",
	Markdown:     "enhanced",
	Unsupported:  "analyzed",
}

// Detect returns the format tag for a path based on its lowercased
// extension. Unknown extensions yield Unsupported.
func Detect(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionTable[ext]; ok {
		return f
	}
	return Unsupported
}

// Valid reports whether f is one of the known tags, Unsupported included.
func (f Format) Valid() bool {
	switch f {
	case Text, JSON, CSV, PythonSource, Markdown, Unsupported:
		return true
	}
	return false
}

// Suffix returns the companion-file suffix for the format. Unsupported files
// are analyzed as plain text, so they share the text suffix.
func (f Format) Suffix() string {
	if s, ok := companionSuffixes[f]; ok {
		return s
	}
	return companionSuffixes[Text]
}

// SupportedExtensions returns the known extensions in stable order, for
// banners and help text.
func SupportedExtensions() []string {
	return []string{".txt", ".json", ".csv", ".py", ".md"}
}

// LanguageHint returns an advisory lowercase language label for the file,
// derived from content and filename. It never influences Detect; it only
// enriches warnings and code metrics. Empty content yields "".
func LanguageHint(path string, content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" && lang != "Text" {
		return strings.ToLower(lang)
	}
	if lang, ok := enry.GetLanguageByExtension(path); ok && lang != "" && lang != "Text" {
		return strings.ToLower(lang)
	}
	if lang, ok := enry.GetLanguageByFilename(path); ok && lang != "" && lang != "Text" {
		return strings.ToLower(lang)
	}
	return "plaintext"
}
