// Package picker offers fuzzy selection over the eligible input files under
// a directory.
package picker

import (
	"errors"
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/format"
)

// Pick discovers the input files under root and lets the user fuzzy-select
// any number of them. Aborting the finder (Esc, Ctrl+C) returns an empty
// selection and no error.
func Pick(root string) ([]string, error) {
	candidates, err := insight.DiscoverInputs(root)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no input files found under %q", root)
	}

	indexes, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Tab to multi-select, Enter to confirm."
			}
			path := candidates[i]
			info, statErr := os.Stat(path)
			if statErr != nil {
				return fmt.Sprintf("Path: %s\n(unreadable: %v)", path, statErr)
			}
			return fmt.Sprintf("Path: %s\nFormat: %s\nSize: %d bytes",
				path, format.Detect(path), info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder: %w", err)
	}

	selected := make([]string, len(indexes))
	for i, idx := range indexes {
		selected[i] = candidates[idx]
	}
	return selected, nil
}
