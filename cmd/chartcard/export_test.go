package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommandSVG(t *testing.T) {
	doc := writeTestDocument(t)
	out := filepath.Join(t.TempDir(), "chart.svg")

	_, err := executeCommand(t, "export", doc, "--chart", "visitors", "--out", out)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"), "format inferred from extension")
}

func TestExportCommandExplicitFormat(t *testing.T) {
	doc := writeTestDocument(t)
	out := filepath.Join(t.TempDir(), "chart.img")

	_, err := executeCommand(t, "export", doc, "--chart", "browsers", "--out", out, "--format", "svg")

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestExportCommandPNG(t *testing.T) {
	doc := writeTestDocument(t)
	out := filepath.Join(t.TempDir(), "chart.png")

	_, err := executeCommand(t, "export", doc, "--chart", "visitors", "--out", out)

	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCommandRadialAsPie(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "radial.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(`
version: "1.0"
charts:
  - id: activity
    kind: radial
    name_key: activity
    value_key: value
    data:
      - { activity: move, value: 80 }
      - { activity: exercise, value: 56 }
`), 0o644))
	out := filepath.Join(t.TempDir(), "activity.svg")

	_, err := executeCommand(t, "export", doc, "--out", out)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestExportCommandNeedsChartID(t *testing.T) {
	doc := writeTestDocument(t)
	out := filepath.Join(t.TempDir(), "chart.svg")

	_, err := executeCommand(t, "export", doc, "--out", out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--chart")
}

func TestExportCommandUnknownChart(t *testing.T) {
	doc := writeTestDocument(t)
	out := filepath.Join(t.TempDir(), "chart.svg")

	_, err := executeCommand(t, "export", doc, "--chart", "nope", "--out", out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "chartcard")
	assert.Contains(t, out, version)
}
