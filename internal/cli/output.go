package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-segment/imageio"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/regiongraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// defaultInput is read when no input file is given.
const defaultInput = "imagem.ppm"

// outputFlags holds the output flags shared by every command.
type outputFlags struct {
	dir   string
	png   bool
	graph string
	seed  int64
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dir, "output-dir", "d", "", "output directory (default ./segments)")
	cmd.Flags().BoolVar(&f.png, "png", false, "also write a PNG next to every PPM")
	cmd.Flags().StringVar(&f.graph, "graph", "", "write the region adjacency graph: dot, svg")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "palette seed (0 seeds from the clock)")
}

// apply overrides cfg with the flags the user actually set.
func (f *outputFlags) apply(cmd *cobra.Command, cfg *OutputConfig) error {
	if cmd.Flags().Changed("output-dir") {
		cfg.Dir = f.dir
	}
	if cmd.Flags().Changed("png") {
		cfg.PNG = f.png
	}
	if cmd.Flags().Changed("graph") {
		cfg.Graph = f.graph
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	return cfg.validate()
}

// inputPath returns the single positional argument or defaultInput.
func inputPath(args []string) string {
	if len(args) == 0 {
		return defaultInput
	}
	return args[0]
}

// ensureDir creates dir and its parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(imageio.ErrResourceUnavailable, "create %s: %v", dir, err)
	}
	return nil
}

// writeOutputs colors seg and writes base.ppm, plus base.png and the region
// graph (base.dot or base.svg) when out asks for them.
func writeOutputs(ctx context.Context, base string, pg *pixelgraph.PixelGraph, seg *segmentation.Segmentation, out OutputConfig) error {
	logger := loggerFromContext(ctx)
	palette := imageio.NewPalette(out.Seed)

	img, err := imageio.Colorize(pg.Width, pg.Height, seg, palette)
	if err != nil {
		return err
	}
	paths := []string{base + ".ppm"}
	if out.PNG {
		paths = append(paths, base+".png")
	}
	for _, p := range paths {
		if err := imageio.WriteFile(p, img); err != nil {
			return err
		}
		logger.Infof("Wrote %s", p)
	}

	if out.Graph == "" {
		return nil
	}
	rg, err := regiongraph.Build(pg, seg)
	if err != nil {
		return err
	}
	dot := regiongraph.ToDOT(rg, regiongraph.Options{Palette: palette})
	path, data := base+".dot", []byte(dot)
	if out.Graph == "svg" {
		path = base + ".svg"
		if data, err = regiongraph.RenderSVG(ctx, dot); err != nil {
			return errors.WithMessage(err, path)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(imageio.ErrResourceUnavailable, "write %s: %v", path, err)
	}
	logger.Infof("Wrote %s (%d regions, %d links)", path, len(rg.Regions), len(rg.Links))

	return nil
}
