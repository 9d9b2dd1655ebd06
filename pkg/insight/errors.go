package insight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Error taxonomy. Every failure surfaced by the orchestrator wraps exactly
// one of these sentinels; callers classify with errors.Is. Structural parse
// failures additionally carry an *analyze.MalformedDataError reachable via
// errors.As.
var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrAccessDenied indicates insufficient permission to read the input
	// or write the companion file.
	ErrAccessDenied = errors.New("access denied")

	// ErrIsDirectory indicates the input path is a directory.
	ErrIsDirectory = errors.New("path is a directory, not a file")

	// ErrDecode indicates the input bytes are binary or cannot be decoded
	// to text.
	ErrDecode = errors.New("cannot decode file as text")

	// ErrMalformedData indicates a JSON or CSV structural parse failure.
	ErrMalformedData = errors.New("malformed data")

	// ErrDiskWrite indicates a non-permission failure writing the
	// companion file. A partial output file may remain; there is no
	// rollback.
	ErrDiskWrite = errors.New("failed to write output file")

	// ErrConfigValidation indicates an invalid Options value detected by
	// NewEngine.
	ErrConfigValidation = errors.New("invalid configuration options provided")
)

// classifyReadError converts an OS-level read failure into the taxonomy.
func classifyReadError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q does not exist", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: reading %q: %v", ErrAccessDenied, path, err)
	case errors.Is(err, syscall.EISDIR):
		return fmt.Errorf("%w: %q", ErrIsDirectory, path)
	default:
		return fmt.Errorf("%w: reading %q: %v", ErrNotFound, path, err)
	}
}

// classifyWriteError converts an OS-level write failure into the taxonomy.
// Permission problems map to ErrAccessDenied, everything else to
// ErrDiskWrite.
func classifyWriteError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: writing %q: %v", ErrAccessDenied, path, err)
	}
	return fmt.Errorf("%w: writing %q: %v", ErrDiskWrite, path, err)
}
