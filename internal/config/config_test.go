package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.InDelta(t, 800.0/600.0, cfg.Aspect(), 1e-6)
}

func TestValidateRejectsDegenerateProjection(t *testing.T) {
	cfg := Default()
	cfg.Camera.Far = cfg.Camera.Near
	assert.Error(t, cfg.Validate(), "far == near must be rejected")

	cfg = Default()
	cfg.Camera.Near = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Camera.FOV = 180
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Window.Height = 0
	assert.Error(t, cfg.Validate(), "zero height means a degenerate aspect ratio")
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("window:\n  width: 1280\n  height: 720\ncamera:\n  fov: 75\n  time_scaled: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.InDelta(t, 75.0, cfg.Camera.FOV, 1e-6)
	assert.True(t, cfg.Camera.TimeScaled)

	// Untouched fields keep their defaults.
	assert.InDelta(t, 0.1, cfg.Camera.Sensitivity, 1e-6)
	assert.InDelta(t, 100.0, cfg.Camera.Far, 1e-6)
	assert.Equal(t, "3D OpenGL Game", cfg.Window.Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
