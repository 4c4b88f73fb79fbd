package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segment.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []float64{10, 15, 20}, cfg.Merge.Thresholds)
	assert.Equal(t, 180.0, cfg.Cut.Foreground)
	assert.Equal(t, 150.0, cfg.Cut.Background)
	assert.Equal(t, int64(1000), cfg.Cut.TerminalCapacity)
	assert.Equal(t, 100.0, cfg.Cut.NeighborCeiling)
	assert.Equal(t, "edmonds-karp", cfg.Cut.Method)
	assert.Equal(t, "./segments", cfg.Output.Dir)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[merge]
thresholds = [5.0, 7.5]

[cut]
foreground = 200.0
method = "dinic"

[output]
dir = "out"
graph = "svg"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7.5}, cfg.Merge.Thresholds)
	assert.Equal(t, 200.0, cfg.Cut.Foreground)
	assert.Equal(t, 150.0, cfg.Cut.Background, "unset keys keep defaults")
	assert.Equal(t, "dinic", cfg.Cut.Method)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "svg", cfg.Output.Graph)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[merge]\nthreshold = 3.0\n"))
	assert.ErrorContains(t, err, "unknown keys: merge.threshold")

	_, err = LoadConfig(writeConfig(t, "[output]\ngraph = \"pdf\"\n"))
	assert.ErrorContains(t, err, "invalid graph format")

	_, err = LoadConfig(writeConfig(t, "not toml ["))
	assert.Error(t, err)
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, DefaultConfig(), configFromContext(context.Background()))

	cfg := DefaultConfig()
	cfg.Output.Seed = 9
	assert.Equal(t, cfg, configFromContext(withConfig(context.Background(), cfg)))
}
