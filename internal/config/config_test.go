package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcalc/calc"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, calc.Radians, cfg.AngleUnit())
	req := cfg.GraphRequest()
	assert.Equal(t, -100.0, req.XBegin)
	assert.Equal(t, 100.0, req.XEnd)
	assert.True(t, req.YAutoScale)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "calc.toml", `
[engine]
angle_unit = "degrees"
precision = 4

[graph]
x_begin = -10.0
x_end = 10.0
y_auto_scale = false
y_begin = -2.0
y_end = 2.0

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, calc.Degrees, cfg.AngleUnit())
	assert.Equal(t, 4, cfg.Engine.Precision)
	assert.Equal(t, -10.0, cfg.Graph.XBegin)
	assert.False(t, cfg.Graph.YAutoScale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 320, cfg.Window.Width, "unset sections keep defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "calc.yaml", `
engine:
  angle_unit: deg
window:
  scale: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, calc.Degrees, cfg.AngleUnit())
	assert.Equal(t, 3, cfg.Window.Scale)
	assert.Equal(t, 7, cfg.Engine.Precision)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unit.toml", body: "[engine]\nangle_unit = \"grad\"\n"},
		{name: "range.toml", body: "[graph]\nx_begin = 1.0\nx_end = 1.0\n"},
		{name: "bound.yml", body: "graph:\n  x_end: 5000000\n"},
		{name: "window.yaml", body: "window:\n  scale: 0\n"},
		{name: "calc.json", body: "{}"},
	}
	for _, tt := range tests {
		_, err := Load(writeFile(t, tt.name, tt.body))
		assert.ErrorIs(t, err, ErrInvalid, tt.name)
	}

	_, err := Load(writeFile(t, "broken.toml", "[engine\n"))
	assert.Error(t, err)
}
