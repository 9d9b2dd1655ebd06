// Package sample writes ready-made input files so a first-time user has
// something to process without preparing their own data.
package sample

import (
	"fmt"
	"os"
	"path/filepath"
)

const textName = "sample.txt"

const textContent = `Welcome to the File Processing Challenge!

This is a sample text file that you can use to test the file processor.

Here are some interesting facts:
- Python is great for file handling
- Error handling makes programs robust
- Files can contain various types of data

You can create your own files to test with different content types:
- Text files (.txt)
- Python files (.py)
- Markdown files (.md)
- And many more!

Happy coding!
`

const jsonContent = `{
  "project": "file-insight",
  "version": 1,
  "tags": ["sample", "json", "demo"],
  "owner": {
    "name": "Sample Owner",
    "active": true
  },
  "items": [
    {"id": 1, "label": "first"},
    {"id": 2, "label": "second"}
  ]
}
`

const csvContent = `name,language,stars,archived
file-insight,Go,42,false
file-handle,Python,7,true
sample-data,CSV,3,false
`

const pythonContent = `#!/usr/bin/env python3
"""Small demo module used as analyzer input."""

import math


def circle_area(radius):
    """Return the area of a circle with the given radius."""
    # Negative radii are a caller bug.
    if radius < 0:
        raise ValueError("radius must be non-negative")
    return math.pi * radius ** 2


class Counter:
    """Counts how often increment is called."""

    def __init__(self):
        self.value = 0

    def increment(self):
        self.value += 1
        return self.value


if __name__ == "__main__":
    print(circle_area(2.0))
`

const markdownContent = `# Sample Document

A small Markdown file for trying out the analyzer.

## Features

- Heading detection
- Link counting
- [Code block](https://example.com/docs) statistics

## Example

` + "```go" + `
fmt.Println("hello")
` + "```" + `

### Notes

See the [project page](https://example.com) for more.
`

// Ensure writes sample.txt into dir unless it already exists, returning the
// file path. Existing files are never overwritten.
func Ensure(dir string) (string, error) {
	return write(dir, textName, textContent)
}

// EnsureAll writes one sample input per supported format into dir and
// returns the paths of the files that now exist, created or not.
func EnsureAll(dir string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{textName, textContent},
		{"sample.json", jsonContent},
		{"sample.csv", csvContent},
		{"sample.py", pythonContent},
		{"sample.md", markdownContent},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := write(dir, f.name, f.content)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func write(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking sample file %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing sample file %q: %w", path, err)
	}
	return path, nil
}
