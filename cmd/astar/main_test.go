package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_DemoGraph(t *testing.T) {
	t.Parallel()

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"-workers", "2"})

	require.NoError(t, err)
	assert.Equal(t, "Shortest Path: [A, B, D, E]\nCost: 7\n", out.String())
	assert.Contains(t, logs.String(), "path found")
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-output", "json", "-goal", "D"})
	require.NoError(t, err)

	var got searchOutput
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, searchOutput{Start: "A", Goal: "D", Found: true, Path: []string{"A", "B", "D"}, Cost: 2}, got)
}

func TestRun_GraphFileWithUnreachableGoal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeGraph(t, "islands.yaml", `
edges:
  - {from: A, to: B, cost: 1}
  - {from: X, to: Y, cost: 1}
search: {start: A, goal: Y}
`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{path})

	// --- Assert ---
	require.NoError(t, err, "an unreachable goal is a normal outcome")
	assert.Equal(t, "No path found!\n", out.String())
}

func TestRun_FlagsOverrideSearchBlock(t *testing.T) {
	t.Parallel()

	path := writeGraph(t, "line.hcl", `
edge "A" "B" { cost = 2 }
edge "B" "C" { cost = 2 }
search {
  start = "A"
  goal  = "C"
}
`)
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-g", path, "-start", "C", "-goal", "B"})

	require.NoError(t, err)
	assert.Equal(t, "Shortest Path: [C, B]\nCost: 2\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_InvalidArguments(t *testing.T) {
	t.Parallel()

	noSearch := writeGraph(t, "nosearch.hcl", `edge "A" "B" { cost = 1 }`)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined"},
		{name: "log level", args: []string{"-log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "output", args: []string{"-output", "yaml"}, wantMsg: "invalid output"},
		{name: "workers", args: []string{"-workers", "-1"}, wantMsg: "invalid workers"},
		{name: "missing endpoints", args: []string{noSearch}, wantMsg: "start and goal are required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, tt.args)

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.wantMsg)
		})
	}
}

func TestRun_BadGraphFile(t *testing.T) {
	t.Parallel()

	path := writeGraph(t, "bad.hcl", `edge "A" "B" { cost = -4 }`)

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "edge cost must not be negative")
}
