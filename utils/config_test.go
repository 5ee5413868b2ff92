package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfigReadsAllSections(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  jwt_secret: "shhh"
database:
  driver: "mysql"
  dsn: "user:pass@tcp(localhost:3306)/retinoscope"
inference:
  url: "http://localhost:8500/predict"
viewport:
  width: 1024
  height: 768
`)

	config, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "shhh", config.Server.JwtSecret)
	assert.Equal(t, "mysql", config.Database.Driver)
	assert.Equal(t, "http://localhost:8500/predict", config.Inference.URL)
	assert.Equal(t, 1024.0, config.Viewport.Width)
	assert.Equal(t, 768.0, config.Viewport.Height)
}

func TestNewConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
inference:
  url: "http://localhost:8500/predict"
`)

	config, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "sqlite", config.Database.Driver)
	assert.Equal(t, "retinoscope.sqlite", config.Database.Dsn)
	assert.Equal(t, 800.0, config.Viewport.Width)
	assert.Equal(t, 600.0, config.Viewport.Height)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
