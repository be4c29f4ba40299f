package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rook-computer/pixelplay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, opts, err := resolveConfig(nil, noEnv)
	require.NoError(t, err)

	assert.Equal(t, config.DriverHeadless, cfg.Driver)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Zero(t, cfg.TPS)
	assert.Equal(t, config.Default().Headless.Frames, cfg.Headless.Frames)
	assert.False(t, opts.debug)
}

func TestResolveConfigFileSurvivesUnsetFlags(t *testing.T) {
	path := writeConfig(t, "tps: 30\nlisten: \"\"\nheadless:\n  frames: 100\n")

	cfg, _, err := resolveConfig([]string{"-config", path}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, uint64(100), cfg.Headless.Frames)
	assert.Empty(t, cfg.Listen)
}

func TestResolveConfigPassedFlagsWin(t *testing.T) {
	path := writeConfig(t, "tps: 30\nheadless:\n  frames: 100\n")
	env := map[string]string{config.EnvListen: ":7000", config.EnvDriver: "window"}

	cfg, _, err := resolveConfig([]string{
		"-config", path, "-tps", "0", "-frames", "5", "-seed", "9",
	}, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Zero(t, cfg.TPS)
	assert.Equal(t, uint64(5), cfg.Headless.Frames)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, config.DriverHeadless, cfg.Driver)

	cfg, _, err = resolveConfig([]string{"-listen", ""}, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Empty(t, cfg.Listen)
}

func TestResolveConfigSnapshots(t *testing.T) {
	cfg, opts, err := resolveConfig([]string{"-snapshot-dir", "/tmp/shots"}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shots", opts.snapshotDir)
	assert.Equal(t, uint64(defaultSnapshotEvery), cfg.Headless.SnapshotEvery)

	cfg, _, err = resolveConfig([]string{"-snapshot-dir", "/tmp/shots", "-snapshot-every", "7"}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Headless.SnapshotEvery)
}

func TestResolveConfigBadFlag(t *testing.T) {
	_, _, err := resolveConfig([]string{"-frames", "many"}, noEnv)
	assert.Error(t, err)
}
