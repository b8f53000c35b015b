package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/coinpack/internal/config"
	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/ellipsoid"
)

func smallRun(t *testing.T) *coinpack.Result {
	t.Helper()
	result, err := coinpack.Run(coinpack.Params{
		Coin:      ellipsoid.Coin{Radius: 1, Height: 2},
		Ellipsoid: ellipsoid.Ellipsoid{A: 6, B: 6, C: 4},
	}, coinpack.Options{SkipMesh: true})
	require.NoError(t, err)
	return result
}

func TestResolveConfigFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file.stl\nworkers: 3\n"), 0o644))

	configPath = path
	t.Cleanup(func() {
		configPath = ""
		outputPath = config.DefaultOutput
		rootCmd.Flags().Lookup("output").Changed = false
	})

	cfg, err := resolveConfig(rootCmd, []string{"4"})
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.Coin.Radius)
	assert.Equal(t, "from-file.stl", cfg.Output)
	assert.Equal(t, 3, cfg.Workers)

	require.NoError(t, rootCmd.Flags().Set("output", "flag.stl"))
	cfg, err = resolveConfig(rootCmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "flag.stl", cfg.Output)
}

func TestResolveConfigDefaultWorkers(t *testing.T) {
	cfg, err := resolveConfig(rootCmd, nil)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestPackWritesMesh(t *testing.T) {
	quiet = true
	t.Cleanup(func() { quiet = false })

	cfg, err := resolveConfig(rootCmd, []string{"1", "2", "6", "6", "4"})
	require.NoError(t, err)
	cfg.Output = filepath.Join(t.TempDir(), "mesh.stl")

	require.NoError(t, pack(cfg))

	info, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84))
}

func TestWritePreviews(t *testing.T) {
	result := smallRun(t)
	dir := filepath.Join(t.TempDir(), "previews")

	require.NoError(t, writePreviews(dir, result))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(result.Layers))
	assert.Equal(t, "layer-0000.png", entries[0].Name())
}

func TestNewLayerReport(t *testing.T) {
	result := smallRun(t)
	report := newLayerReport(result)

	assert.Equal(t, result.CircleCount(), report.Coins)
	require.Len(t, report.Layers, len(result.Layers))

	var coins int
	for i, l := range report.Layers {
		assert.Equal(t, i, l.Index)
		assert.Equal(t, result.Layers[i].Coverage(), l.Coverage)
		coins += len(l.Coins)
	}
	assert.Equal(t, report.Coins, coins)
}
