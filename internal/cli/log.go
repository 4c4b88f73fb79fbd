// Package cli implements the segment command-line interface.
//
// # Commands
//
//   - merge: threshold-merge segmentation, one output per threshold
//   - cut: foreground/background split by minimum cut
//
// Both read a PPM or PNG image (default imagem.ppm), color each segment and
// write the result under the output directory (default ./segments).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on per-augmentation max-flow records for cut. Loggers are passed
// through context.Context.
//
// # Configuration
//
// --config points at a TOML file with [merge], [cut] and [output] tables.
// Flags given on the command line override file values.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Segmented at threshold 10 (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
