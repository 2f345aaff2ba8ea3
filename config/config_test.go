package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/indoornav/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "indoornav.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	t.Setenv("INDOORNAV_MAP", "/maps/hq.geojson")
	p := write(t, `
map: ${INDOORNAV_MAP}
log:
  level: debug
  format: json
nearby:
  radius: 12.5
server:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
`)

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/maps/hq.geojson", cfg.Map)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 12.5, cfg.Nearby.Radius)
	assert.Equal(t, 5, cfg.Nearby.Limit, "unset keys keep defaults")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	_, err = config.Load(write(t, "mapp: typo\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(write(t, "log:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(write(t, "nearby:\n  radius: -1\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}
