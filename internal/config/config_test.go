package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasCrouzet/simdedupe/internal/birthtime"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/Users/runner")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "xcrun", cfg.Simctl.Launcher)
	assert.Empty(t, cfg.Simctl.RegistryJSON)
	assert.Equal(t, filepath.Join("/Users/runner", birthtime.DevicesSubdir), cfg.DevicesDir)
	assert.False(t, cfg.Confirm)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
simctl:
  launcher: /opt/xcode/xcrun
  registry_json: ./snapshot.json
devices_dir: /tmp/devices
confirm: true
log:
  level: debug
`)))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "/opt/xcode/xcrun", cfg.Simctl.Launcher)
	assert.Equal(t, "./snapshot.json", cfg.Simctl.RegistryJSON)
	assert.Equal(t, "/tmp/devices", cfg.DevicesDir)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SIMDEDUPE_SIMCTL_LAUNCHER", "/usr/local/bin/xcrun")
	t.Setenv("SIMDEDUPE_CONFIRM", "true")
	t.Setenv("SIMDEDUPE_LOG_LEVEL", "info")

	v := viper.New()
	Bind(v)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/xcrun", cfg.Simctl.Launcher)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEmptyLauncherFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("simctl.launcher", "")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "xcrun", cfg.Simctl.Launcher)
}
