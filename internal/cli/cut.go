package cli

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-segment/flow"
	"github.com/katalvlaran/lvlath-segment/graphcut"
	"github.com/katalvlaran/lvlath-segment/imageio"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// defaultCutOutput is the base name of the cut result inside the output directory.
const defaultCutOutput = "output_segmented"

// cutFlags holds the cut command flags.
type cutFlags struct {
	foreground float64
	background float64
	method     string
	name       string
	out        outputFlags
}

// newCutCmd creates the cut command: a minimum-cut split into foreground
// and background, written to <dir>/output_segmented.ppm.
func newCutCmd() *cobra.Command {
	var f cutFlags

	cmd := &cobra.Command{
		Use:   "cut [image]",
		Short: "Split an image into foreground and background with a minimum cut",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("foreground") {
				cfg.Cut.Foreground = f.foreground
			}
			if cmd.Flags().Changed("background") {
				cfg.Cut.Background = f.background
			}
			if cmd.Flags().Changed("method") {
				cfg.Cut.Method = f.method
			}
			if err := f.out.apply(cmd, &cfg.Output); err != nil {
				return err
			}
			return runCut(cmd.Context(), inputPath(args), f.name, cfg)
		},
	}

	cmd.Flags().Float64Var(&f.foreground, "foreground", graphcut.DefaultForegroundThreshold, "minimum intensity tied to the source")
	cmd.Flags().Float64Var(&f.background, "background", graphcut.DefaultBackgroundThreshold, "maximum intensity tied to the sink")
	cmd.Flags().StringVar(&f.method, "method", string(flow.MethodEdmondsKarp), "max-flow method: edmonds-karp, dinic, ford-fulkerson")
	cmd.Flags().StringVarP(&f.name, "output", "o", defaultCutOutput, "output base name inside the output directory")
	f.out.register(cmd)

	return cmd
}

// cutOptions translates the [cut] configuration into graphcut options that
// log augmentations through logger when it is at debug level.
func cutOptions(cfg CutConfig, logger *log.Logger) (graphcut.Options, error) {
	method, err := flow.ParseMethod(cfg.Method)
	if err != nil {
		return graphcut.Options{}, err
	}
	opts := graphcut.DefaultOptions()
	opts.ForegroundThreshold = cfg.Foreground
	opts.BackgroundThreshold = cfg.Background
	opts.TerminalCapacity = cfg.TerminalCapacity
	opts.NeighborCeiling = cfg.NeighborCeiling
	opts.Method = method
	opts.Flow.Logger = logger
	opts.Flow.Verbose = logger.GetLevel() <= log.DebugLevel

	return opts, nil
}

func runCut(ctx context.Context, input, name string, cfg Config) error {
	logger := loggerFromContext(ctx)
	opts, err := cutOptions(cfg.Cut, logger)
	if err != nil {
		return err
	}
	if opts.ForegroundThreshold <= opts.BackgroundThreshold {
		logger.Warn("Foreground threshold does not exceed background threshold; pixels may be tied to both terminals",
			"foreground", opts.ForegroundThreshold, "background", opts.BackgroundThreshold)
	}

	img, err := imageio.ReadFile(input)
	if err != nil {
		return err
	}
	pg, err := pixelgraph.New(img.Width, img.Height, img.Pixels)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %dx%d", input, pg.Width, pg.Height)

	if err := ensureDir(cfg.Output.Dir); err != nil {
		return err
	}

	prog := newProgress(logger)
	cut, err := graphcut.Segment(ctx, img.Width, img.Height, img.Pixels, opts)
	if err != nil {
		return err
	}
	prog.done("Computed minimum cut")
	logger.Info("Cut", "method", opts.Method, "maxflow", cut.MaxFlow,
		"foreground", len(cut.Foreground), "background", len(cut.Background))

	seg := cut.Segmentation()
	report(logger, "cut", seg)

	return writeOutputs(ctx, filepath.Join(cfg.Output.Dir, name), pg, seg, cfg.Output)
}
