package cli

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// report logs the segment count and largest segment at info level and every
// segment size at debug level.
func report(logger *log.Logger, run string, seg *segmentation.Segmentation) {
	sizes := seg.Sizes()
	largest := 0
	for _, n := range sizes {
		largest = max(largest, n)
	}
	logger.Info("Segmentation", "run", run, "segments", seg.Count(), "largest", largest)
	for id, n := range sizes {
		logger.Debug("Segment", "run", run, "id", id, "pixels", n)
	}
}
