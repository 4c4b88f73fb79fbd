package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-segment/imageio"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// newMergeCmd creates the merge command: one threshold-merge segmentation per
// threshold, written to <dir>/segmentation_<threshold>.ppm.
func newMergeCmd() *cobra.Command {
	var (
		thresholds []float64
		out        outputFlags
	)

	cmd := &cobra.Command{
		Use:   "merge [image]",
		Short: "Merge adjacent pixels whose color distance is below a threshold",
		Long:  `merge unions every pair of neighboring pixels whose RGB distance is
strictly below the threshold and writes one colored image per threshold.

Outputs are named segmentation_<threshold>.ppm with the threshold in its
shortest decimal form: segmentation_10.ppm and segmentation_2.5.ppm, not
segmentation_10.000000.ppm.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("threshold") {
				cfg.Merge.Thresholds = thresholds
			}
			if err := out.apply(cmd, &cfg.Output); err != nil {
				return err
			}
			return runMerge(cmd.Context(), inputPath(args), cfg)
		},
	}

	cmd.Flags().Float64SliceVarP(&thresholds, "threshold", "t", nil, "merge threshold(s) (default 10,15,20)")
	out.register(cmd)

	return cmd
}

// runMerge segments input once per threshold. Thresholds run concurrently
// over one shared, read-only pixel graph.
func runMerge(ctx context.Context, input string, cfg Config) error {
	logger := loggerFromContext(ctx)
	if len(cfg.Merge.Thresholds) == 0 {
		return fmt.Errorf("merge: no thresholds given")
	}

	img, err := imageio.ReadFile(input)
	if err != nil {
		return err
	}
	pg, err := pixelgraph.New(img.Width, img.Height, img.Pixels)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %dx%d, %d edges", input, pg.Width, pg.Height, pg.Size())

	if err := ensureDir(cfg.Output.Dir); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, threshold := range cfg.Merge.Thresholds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			prog := newProgress(logger)
			seg := segmentation.ThresholdMerge(pg, threshold)
			prog.done(fmt.Sprintf("Segmented at threshold %g", threshold))

			report(logger, fmt.Sprintf("threshold %g", threshold), seg)
			base := filepath.Join(cfg.Output.Dir, mergeOutputName(threshold))
			return writeOutputs(gctx, base, pg, seg, cfg.Output)
		})
	}

	return g.Wait()
}

// mergeOutputName returns "segmentation_<threshold>" with the shortest
// exact formatting of threshold.
func mergeOutputName(threshold float64) string {
	return "segmentation_" + strconv.FormatFloat(threshold, 'f', -1, 64)
}
