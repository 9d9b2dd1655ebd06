package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
)

// frontMatterData is the metadata block prepended to enhanced Markdown.
type frontMatterData struct {
	OriginalFile string            `yaml:"original_file" toml:"original_file"`
	ProcessedAt  string            `yaml:"processed_at" toml:"processed_at"`
	Generator    string            `yaml:"generator" toml:"generator"`
	Provenance   *gitinfo.Snapshot `yaml:"provenance,omitempty" toml:"provenance,omitempty"`
}

// frontMatter renders the delimited metadata block for Markdown output, or
// "" when MetadataFormat is "none" or empty. Unknown formats are an error so
// misconfiguration surfaces instead of silently dropping metadata.
func (r *Renderer) frontMatter(doc Document) (string, error) {
	data := frontMatterData{
		OriginalFile: filepath.Base(doc.Path),
		ProcessedAt:  r.now().Format(time.RFC3339),
		Generator:    r.generator(),
		Provenance:   doc.Provenance,
	}

	switch strings.ToLower(r.MetadataFormat) {
	case "", "none":
		return "", nil
	case "yaml":
		body, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshaling yaml front matter: %w", err)
		}
		return "---\n" + string(body) + "---\n\n", nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(data); err != nil {
			return "", fmt.Errorf("marshaling toml front matter: %w", err)
		}
		return "+++\n" + buf.String() + "+++\n\n", nil
	default:
		return "", fmt.Errorf("unsupported front matter format %q", r.MetadataFormat)
	}
}
