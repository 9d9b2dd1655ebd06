package insight

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/util"
)

// DiscoverInputs walks root and returns every regular file that is a
// candidate input, in lexical order. Hidden directories are skipped, as are
// files this tool itself produces: companion outputs and summary reports.
// Reprocessing our own output would compound suffixes on every run.
func DiscoverInputs(root string) ([]string, error) {
	var inputs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if util.HasCompanionSuffix(name, CompanionSuffixes) {
			return nil
		}
		if strings.HasPrefix(name, "processing_summary_") {
			return nil
		}
		inputs = append(inputs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}
	return inputs, nil
}
