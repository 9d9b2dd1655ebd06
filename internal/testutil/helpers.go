package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates a file with the given content, ensuring parent
// directories exist. Setup failures abort the test.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	full := filepath.Clean(path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755),
		"failed to create directory for %s", full)
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644),
		"failed to write %s", full)
}

// MakeDir ensures a directory exists, creating parents if needed.
func MakeDir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Clean(path), 0o755),
		"failed to create directory %s", path)
}
