package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir()) // avoid picking up a real benchgate.yaml

	Load("")

	assert.Equal(t, filepath.Join("target", "criterion"), viper.GetString("results_dir"))
	assert.Equal(t, "cargo bench --bench sandbox_benchmarks", viper.GetString("bench_command"))

	startup, latency, memory := Thresholds()
	assert.InDelta(t, 2000.0, startup, 1e-9)
	assert.InDelta(t, 100.0, latency, 1e-9)
	assert.InDelta(t, 10.0, memory, 1e-9)
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "benchgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("results_dir: bench-out\nthresholds:\n  latency_ms: 250\n"), 0644))

	Load(path)

	assert.Equal(t, "bench-out", viper.GetString("results_dir"))
	_, latency, _ := Thresholds()
	assert.InDelta(t, 250.0, latency, 1e-9)

	// Unset keys keep their defaults.
	startup, _, _ := Thresholds()
	assert.InDelta(t, 2000.0, startup, 1e-9)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	t.Setenv("BENCHGATE_THRESHOLDS_STARTUP_MS", "3000")

	Load("")

	startup, _, _ := Thresholds()
	assert.InDelta(t, 3000.0, startup, 1e-9)
}
