package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{
		"config", "verbose", "plain", "output-dir", "report-format",
		"metadata-format", "git-metadata", "recursive", "summary-file",
		"default-encoding",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %q", name)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["modify"])
	assert.True(t, names["sample"])
}

func TestRootBatchRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("alpha beta\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--plain", input})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "1 succeeded, 0 failed")
	assert.FileExists(t, filepath.Join(dir, "notes_analyzed.txt"))
}

func TestModifyCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("alpha beta\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"modify", "--plain", input})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "notes_modified.txt"))
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"sample", dir})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "sample.txt"))
	assert.Contains(t, out.String(), "sample.txt")
}

func TestSampleAllCommand(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"sample", "--all", dir})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		sampleAll = false
	})

	require.NoError(t, rootCmd.Execute())
	for _, name := range []string{"sample.txt", "sample.json", "sample.csv", "sample.py", "sample.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
