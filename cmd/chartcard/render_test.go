package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnhtng/shadcn-chart/internal/logger"
)

const testDocument = `
version: "1.0"
name: Test Charts
charts:
  - id: visitors
    kind: bar
    title: Bar Chart
    x_key: month
    series:
      - key: desktop
        label: Desktop
    data:
      - month: January
        desktop: 186
      - month: February
        desktop: 305
  - id: browsers
    kind: pie
    variant: donut
    title: Pie Chart
    name_key: browser
    value_key: visitors
    data:
      - browser: chrome
        visitors: 275
      - browser: safari
        visitors: 200
`

func writeTestDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	cmd := newRootCmd(log)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	execErr := cmd.Execute()
	return buf.String(), execErr
}

func TestRenderCommandAllCharts(t *testing.T) {
	path := writeTestDocument(t)

	out, err := executeCommand(t, "render", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Bar Chart")
	assert.Contains(t, out, "Pie Chart")
}

func TestRenderCommandSingleChart(t *testing.T) {
	path := writeTestDocument(t)

	out, err := executeCommand(t, "render", path, "--chart", "browsers")

	require.NoError(t, err)
	assert.NotContains(t, out, "Bar Chart")
	assert.Contains(t, out, "Pie Chart")
}

func TestRenderCommandUnknownChart(t *testing.T) {
	path := writeTestDocument(t)

	_, err := executeCommand(t, "render", path, "--chart", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRenderCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
}

func TestRenderCommandInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\ncharts: []\n"), 0o644))

	_, err := executeCommand(t, "render", path)

	require.Error(t, err)
}
