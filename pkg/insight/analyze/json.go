package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// scalarPreviewLen bounds the preview recorded for scalar values in the
// structure outline.
const scalarPreviewLen = 50

// JSONMetrics describes a parsed JSON document. TopLevelKeys is 0 when the
// root is not an object. MaxDepth counts container nesting with the root at
// depth 1 (a bare scalar document is depth 1). TypeHistogram tallies every
// value below the root by type; the root value itself is not counted.
type JSONMetrics struct {
	TopLevelKeys  int            `json:"top_level_keys"`
	MaxDepth      int            `json:"max_depth"`
	TypeHistogram map[string]int `json:"type_histogram"`
	Structure     *JSONStructure `json:"structure,omitempty"`
}

func (*JSONMetrics) MetricsFormat() format.Format { return format.JSON }

// JSONStructure is a recursive outline of the document: objects record their
// key names and children, arrays their length and distinct element types,
// scalars a short preview. Key order is sorted for determinism.
type JSONStructure struct {
	Type      string                    `json:"type"`
	Keys      []string                  `json:"keys,omitempty"`
	Length    int                       `json:"length,omitempty"`
	ItemTypes []string                  `json:"item_types,omitempty"`
	Preview   string                    `json:"preview,omitempty"`
	Children  map[string]*JSONStructure `json:"children,omitempty"`
}

// AnalyzeJSON parses content as a single JSON document and computes
// JSONMetrics. Invalid input, including trailing data after the top-level
// value, fails with a MalformedDataError carrying the parser position.
func AnalyzeJSON(content string) (Metrics, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, malformedJSON(content, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &MalformedDataError{
			Format: format.JSON,
			Offset: dec.InputOffset(),
			Reason: "trailing data after top-level value",
		}
	}

	m := &JSONMetrics{
		MaxDepth:      containerDepth(root),
		TypeHistogram: map[string]int{},
		Structure:     outline(root),
	}
	if m.MaxDepth == 0 {
		m.MaxDepth = 1
	}
	if obj, ok := root.(map[string]any); ok {
		m.TopLevelKeys = len(obj)
	}
	tallyChildren(root, m.TypeHistogram)
	return m, nil
}

func malformedJSON(content string, err error) *MalformedDataError {
	mde := &MalformedDataError{Format: format.JSON, Reason: err.Error()}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		mde.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		mde.Offset = typeErr.Offset
	}
	if mde.Offset > 0 && mde.Offset <= int64(len(content)) {
		mde.Line = 1 + strings.Count(content[:mde.Offset], "\n")
	}
	return mde
}

// containerDepth returns the deepest container nesting level; scalars
// contribute nothing, so a bare scalar yields 0 and the caller clamps to 1.
func containerDepth(v any) int {
	switch val := v.(type) {
	case map[string]any:
		deepest := 0
		for _, child := range val {
			if d := containerDepth(child); d > deepest {
				deepest = d
			}
		}
		return 1 + deepest
	case []any:
		deepest := 0
		for _, child := range val {
			if d := containerDepth(child); d > deepest {
				deepest = d
			}
		}
		return 1 + deepest
	default:
		return 0
	}
}

// tallyChildren counts every value reachable below v, not v itself.
func tallyChildren(v any, hist map[string]int) {
	switch val := v.(type) {
	case map[string]any:
		for _, child := range val {
			hist[jsonTypeName(child)]++
			tallyChildren(child, hist)
		}
	case []any:
		for _, child := range val {
			hist[jsonTypeName(child)]++
			tallyChildren(child, hist)
		}
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		// json.Decoder only produces the cases above.
		return "unknown"
	}
}

func outline(v any) *JSONStructure {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		children := make(map[string]*JSONStructure, len(val))
		for _, k := range keys {
			children[k] = outline(val[k])
		}
		return &JSONStructure{Type: "object", Keys: keys, Children: children}
	case []any:
		seen := map[string]bool{}
		for _, item := range val {
			seen[jsonTypeName(item)] = true
		}
		itemTypes := make([]string, 0, len(seen))
		for name := range seen {
			itemTypes = append(itemTypes, name)
		}
		sort.Strings(itemTypes)
		return &JSONStructure{Type: "array", Length: len(val), ItemTypes: itemTypes}
	default:
		preview := "null"
		if v != nil {
			preview = util.Truncate(fmt.Sprint(v), scalarPreviewLen)
		}
		return &JSONStructure{Type: jsonTypeName(v), Preview: preview}
	}
}
