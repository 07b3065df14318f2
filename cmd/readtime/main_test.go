package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writePost(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadtimeDefaults(t *testing.T) {
	post := writePost(t, "---\ntitle: Hello\n---\n"+strings.Repeat("word ", 250))

	stdout, stderr, err := execute(t, post)
	require.NoError(t, err)

	assert.Equal(t, "Words: 250\nMinutes to read: 2 with average speed of 125 wpm\nRounding from: 2.0\n", stdout)
	assert.Contains(t, stderr, "Hello")
}

func TestReadtimeSpeedFlag(t *testing.T) {
	post := writePost(t, strings.Repeat("word ", 600))

	stdout, _, err := execute(t, "--speed", "150", post)
	require.NoError(t, err)
	assert.Equal(t, "Words: 600\nMinutes to read: 4 with average speed of 150 wpm\nRounding from: 4.0\n", stdout)
}

func TestReadtimeConfigFileAndFlagPrecedence(t *testing.T) {
	post := writePost(t, "Intro.\n```\ncode here\n```\n")
	cfgPath := filepath.Join(t.TempDir(), "blogkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reading:\n  speed: 200\n  code_blocks: skip\n"), 0644))

	stdout, _, err := execute(t, "--config", cfgPath, post)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Words: 1\n")
	assert.Contains(t, stdout, "200 wpm")

	stdout, _, err = execute(t, "--config", cfgPath, "--code-blocks", "count", post)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Words: 3\n")
}

func TestReadtimeVerbosePrintsSkippedLines(t *testing.T) {
	post := writePost(t, "Body.\n<figure>\n")

	_, stderr, err := execute(t, "-v", post)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Skipping this line: <figure>")
	assert.Contains(t, stderr, "Skipped lines: 1")
}

func TestReadtimeLooseFrontMatter(t *testing.T) {
	post := writePost(t, "---\ntitle: Go: a tour\n---\nBody text here.")

	stdout, stderr, err := execute(t, post)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Words: 3\n")
	assert.Contains(t, stderr, "Front matter is not a YAML mapping")

	_, _, err = execute(t, "--rules", "v1", post)
	assert.NoError(t, err)
}

func TestReadtimeErrors(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	_, _, err = execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "--rules", "v9", writePost(t, "x"))
	assert.Error(t, err)
}
