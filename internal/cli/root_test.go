package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-segment/flow"
	"github.com/katalvlaran/lvlath-segment/imageio"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

// halves writes a 4×2 image whose left half is black and right half white.
func halves(t *testing.T) string {
	t.Helper()
	b, w := pixelgraph.Pixel{}, pixelgraph.Pixel{R: 255, G: 255, B: 255}
	img := &imageio.Image{Width: 4, Height: 2, Pixels: []pixelgraph.Pixel{
		b, b, w, w,
		b, b, w, w,
	}}
	path := filepath.Join(t.TempDir(), "in.ppm")
	require.NoError(t, imageio.WriteFile(path, img))
	return path
}

// execute runs the root command with args and returns the log output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func readOutput(t *testing.T, path string) *imageio.Image {
	t.Helper()
	img, err := imageio.ReadFile(path)
	require.NoError(t, err)
	return img
}

func TestMergeCommand(t *testing.T) {
	in := halves(t)
	dir := filepath.Join(t.TempDir(), "segments")

	logs, err := execute(t, "merge", in, "-d", dir, "-t", "1", "-t", "500", "--seed", "3", "--graph", "dot", "--png")
	require.NoError(t, err)
	assert.Contains(t, logs, "Segmentation")

	low := readOutput(t, filepath.Join(dir, "segmentation_1.ppm"))
	assert.Equal(t, low.Pixels[0], low.Pixels[5], "left half shares a segment")
	assert.Equal(t, low.Pixels[2], low.Pixels[7], "right half shares a segment")

	high := readOutput(t, filepath.Join(dir, "segmentation_500.ppm"))
	for _, p := range high.Pixels {
		assert.Equal(t, high.Pixels[0], p, "threshold above every distance merges all")
	}

	assert.FileExists(t, filepath.Join(dir, "segmentation_1.png"))
	dot, err := os.ReadFile(filepath.Join(dir, "segmentation_1.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "r0 -- r1")
}

func TestMergeCommand_ConfigFile(t *testing.T) {
	in := halves(t)
	dir := filepath.Join(t.TempDir(), "from-config")
	cfg := writeConfig(t, "[merge]\nthresholds = [2.5]\n\n[output]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	_, err := execute(t, "--config", cfg, "merge", in)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "segmentation_2.5.ppm"))
	assert.NoFileExists(t, filepath.Join(dir, "segmentation_10.ppm"))
}

func TestMergeCommand_MissingInput(t *testing.T) {
	_, err := execute(t, "merge", filepath.Join(t.TempDir(), "nope.ppm"), "-d", t.TempDir())
	assert.ErrorIs(t, err, imageio.ErrResourceUnavailable)
}

func TestCutCommand(t *testing.T) {
	in := halves(t)
	dir := t.TempDir()

	logs, err := execute(t, "cut", in, "-d", dir, "--method", "dinic", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "Cut")
	assert.Contains(t, logs, "maxflow=0")

	out := readOutput(t, filepath.Join(dir, defaultCutOutput+".ppm"))
	assert.Equal(t, out.Pixels[0], out.Pixels[4], "background")
	assert.Equal(t, out.Pixels[2], out.Pixels[7], "foreground")
}

func TestCutCommand_Errors(t *testing.T) {
	in := halves(t)

	_, err := execute(t, "cut", in, "-d", t.TempDir(), "--method", "simplex")
	assert.ErrorIs(t, err, flow.ErrUnknownMethod)

	_, err = execute(t, "cut", in, "-d", t.TempDir(), "--graph", "pdf")
	assert.ErrorContains(t, err, "invalid graph format")
}

func TestCutOptions_VerboseFollowsLevel(t *testing.T) {
	cfg := DefaultConfig().Cut

	opts, err := cutOptions(cfg, newLogger(&bytes.Buffer{}, log.InfoLevel))
	require.NoError(t, err)
	assert.False(t, opts.Flow.Verbose)

	opts, err = cutOptions(cfg, newLogger(&bytes.Buffer{}, log.DebugLevel))
	require.NoError(t, err)
	assert.True(t, opts.Flow.Verbose)
	assert.Equal(t, flow.MethodEdmondsKarp, opts.Method)
}

func TestMergeHelpNamesOutputs(t *testing.T) {
	long := newMergeCmd().Long
	assert.Contains(t, long, "segmentation_10.ppm")
	assert.Contains(t, long, "segmentation_10.000000.ppm")
}

func TestMergeOutputName(t *testing.T) {
	assert.Equal(t, "segmentation_10", mergeOutputName(10))
	assert.Equal(t, "segmentation_2.5", mergeOutputName(2.5))
}
