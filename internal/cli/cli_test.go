package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/mdtable"
)

const sampleYAML = `- data1: somevalue
  data2: someother value here
  col3: 100
  col4: gar gar
- data1: that
  data2: nice
  col3: 190x
- data1: this
  data2: someother value here
  col3: 100
  col4: ta da
`

const sampleMarkdown = `|  data1  |       data2        |col3| col4  |
|---------|--------------------|----|-------|
|somevalue|someother value here|100 |gar gar|
|  that   |        nice        |190x|       |
|  this   |someother value here|100 | ta da |
`

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI against an empty config file so the caller's
// environment does not leak in.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "mdtable.yaml")
	require.NoError(t, os.WriteFile(cfg, nil, 0o600))

	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Version: "test",
	}
	err := app.Execute(context.Background(), append([]string{"--config", cfg}, args...))
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// --- render ---

func TestRenderFile(t *testing.T) {
	t.Parallel()
	p := writeFile(t, t.TempDir(), "in.yaml", sampleYAML)
	res := run(t, "", "render", p)
	require.NoError(t, res.err)
	assert.Equal(t, sampleMarkdown, res.stdout)
}

func TestRenderStdin(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"implicit": {"render"},
		"dash":     {"render", "-"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, sampleYAML, args...)
			require.NoError(t, res.err)
			assert.Equal(t, sampleMarkdown, res.stdout)
		})
	}
}

func TestRenderHeadings(t *testing.T) {
	t.Parallel()
	res := run(t, sampleYAML, "render", "--headings", "data1,data2,col4")
	require.NoError(t, res.err)
	want := `|  data1  |       data2        | col4  |
|---------|--------------------|-------|
|somevalue|someother value here|gar gar|
|  that   |        nice        |       |
|  this   |someother value here| ta da |
`
	assert.Equal(t, want, res.stdout)
}

func TestRenderEmptyHeadingsFlag(t *testing.T) {
	t.Parallel()
	res := run(t, sampleYAML, "render", "--headings", "")
	require.NoError(t, res.err)
	assert.Equal(t, "||\n||\n||\n||\n||\n", res.stdout)
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()
	res := run(t, sampleYAML, "render", "-f", "csv", "--headings", "data1,col4")
	require.NoError(t, res.err)
	assert.Equal(t, "data1,col4\nsomevalue,gar gar\nthat,\nthis,ta da\n", res.stdout)
}

func TestRenderPreviewFallsBackWhenNotTerminal(t *testing.T) {
	t.Parallel()
	res := run(t, sampleYAML, "render", "--preview")
	require.NoError(t, res.err)
	assert.Equal(t, sampleMarkdown, res.stdout)
}

func TestRenderMeasureCells(t *testing.T) {
	t.Parallel()
	res := run(t, "- k: 日本\n", "render", "--measure", "cells")
	require.NoError(t, res.err)
	assert.Equal(t, "| k  |\n|----|\n|日本|\n", res.stdout)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		code  int
	}{
		"decode":         {stdin: "- a: [1]\n", args: []string{"render"}, code: ExitUser},
		"unknown format": {stdin: sampleYAML, args: []string{"render", "-f", "xml"}, code: ExitUser},
		"unknown measure": {
			stdin: sampleYAML, args: []string{"render", "--measure", "bytes"}, code: ExitUser,
		},
		"missing file":   {args: []string{"render", "/nonexistent/in.yaml"}, code: ExitUser},
		"too many files": {args: []string{"render", "a", "b"}, code: ExitUser},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, tt.stdin, tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.code, ExitCode(res.err))
			assert.Contains(t, res.stderr, "Error:")
			assert.Empty(t, res.stdout)
		})
	}
}

// --- columns ---

func TestColumns(t *testing.T) {
	t.Parallel()
	res := run(t, "- b: 1\n  a: 2\n- c: 3\n  b: 4\n", "columns")
	require.NoError(t, res.err)
	assert.Equal(t, "b\na\nc\n", res.stdout)
}

// --- aggregate ---

func TestAggregateMultiple(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", "- a: 1\n")
	broken := writeFile(t, dir, "broken.yaml", "- a: {b: c}\n")
	second := writeFile(t, dir, "second.yml", "- b: 2\n")

	res := run(t, "", "aggregate", first, broken, "renamed="+second)
	require.NoError(t, res.err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &doc))
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	require.Len(t, root.Content, 4)
	assert.Equal(t, "first", root.Content[0].Value)
	assert.Equal(t, "renamed", root.Content[2].Value)
	assert.NotContains(t, res.stdout, "broken")

	assert.Contains(t, res.stderr, "dropping table")
	assert.Contains(t, res.stderr, "name=broken")
}

func TestAggregateSingleIsBare(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	only := writeFile(t, dir, "only.yaml", sampleYAML)
	missing := filepath.Join(dir, "missing.yaml")

	res := run(t, "", "aggregate", missing, only)
	require.NoError(t, res.err)

	tbl, err := mdtable.DecodeString(sampleYAML)
	require.NoError(t, err)
	want, err := mdtable.Encode(tbl)
	require.NoError(t, err)
	assert.Equal(t, string(want), res.stdout)
}

func TestAggregateAllFailed(t *testing.T) {
	t.Parallel()
	res := run(t, "", "aggregate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, res.err)
	assert.Equal(t, "{}\n", res.stdout)
}

func TestAggregateJSONLogs(t *testing.T) {
	t.Parallel()
	res := run(t, "", "--log-json", "aggregate", filepath.Join(t.TempDir(), "gone.yaml"))
	require.NoError(t, res.err)
	line := strings.TrimSpace(res.stderr)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "gone", rec["name"])
}

func TestAggregateRequiresFiles(t *testing.T) {
	t.Parallel()
	res := run(t, "", "aggregate")
	require.Error(t, res.err)
	assert.Equal(t, ExitUser, ExitCode(res.err))
}

func TestAggregateCanceled(t *testing.T) {
	t.Parallel()
	p := writeFile(t, t.TempDir(), "a.yaml", "- a: 1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	app := &App{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr}
	cfg := writeFile(t, t.TempDir(), "mdtable.yaml", "")
	err := app.Execute(ctx, []string{"--config", cfg, "aggregate", p})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitCanceled, ExitCode(err))
	assert.Empty(t, stdout.String())
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()
	res := run(t, sampleYAML, "--debug", "render")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "configuration loaded")
	assert.Contains(t, res.stderr, "rendering table")
}

// --- helpers ---

func TestSplitSource(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src, name, path string
	}{
		"plain":      {src: "dir/people.yaml", name: "people", path: "dir/people.yaml"},
		"named":      {src: "staff=dir/people.yaml", name: "staff", path: "dir/people.yaml"},
		"empty name": {src: "=x.yaml", name: "=x", path: "=x.yaml"},
		"no ext":     {src: "table", name: "table", path: "table"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, p := splitSource(tt.src)
			assert.Equal(t, tt.name, n)
			assert.Equal(t, tt.path, p)
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitCanceled, ExitCode(context.Canceled))
	assert.Equal(t, ExitUser, ExitCode(&mdtable.DecodeError{Msg: "x"}))
	assert.Equal(t, ExitUser, ExitCode(userError{errors.New("bad flag")}))
	assert.Equal(t, ExitSystem, ExitCode(errors.New("boom")))
}
