package flow

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// Sentinel errors for flow operations. All wrap pixelgraph.ErrInvalidInput.
var (
	// ErrSourceNotFound is returned when the source vertex is outside the network.
	ErrSourceNotFound = fmt.Errorf("flow: %w: source vertex not found", pixelgraph.ErrInvalidInput)
	// ErrSinkNotFound is returned when the sink vertex is outside the network.
	ErrSinkNotFound = fmt.Errorf("flow: %w: sink vertex not found", pixelgraph.ErrInvalidInput)
	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = fmt.Errorf("flow: %w: source and sink must differ", pixelgraph.ErrInvalidInput)
	// ErrVertexCount is returned by NewNetwork for a non-positive vertex count.
	ErrVertexCount = fmt.Errorf("flow: %w: vertex count must be positive", pixelgraph.ErrInvalidInput)
	// ErrVertexOutOfRange is returned when an edge endpoint is outside the network.
	ErrVertexOutOfRange = fmt.Errorf("flow: %w: vertex out of range", pixelgraph.ErrInvalidInput)
)

// ErrUnknownMethod is returned by Compute for an unrecognized Method.
var ErrUnknownMethod = fmt.Errorf("flow: %w: unknown max-flow method", pixelgraph.ErrInvalidInput)

// EdgeError is returned when an edge is added with a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Unwrap places EdgeError in the pixelgraph.ErrInvalidInput family.
func (e EdgeError) Unwrap() error {
	return pixelgraph.ErrInvalidInput
}

// Method names a max-flow algorithm for Compute.
type Method string

const (
	// MethodEdmondsKarp selects BFS shortest augmenting paths (default).
	MethodEdmondsKarp Method = "edmonds-karp"
	// MethodDinic selects level graph + blocking flow.
	MethodDinic Method = "dinic"
	// MethodFordFulkerson selects DFS augmenting paths.
	MethodFordFulkerson Method = "ford-fulkerson"
)

// FlowOptions configures all max-flow algorithms.
//   - Verbose: if true and Logger is set, logs each augmentation at debug level.
//   - Logger: destination of verbose records; nil disables logging.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Verbose              bool
	Logger               *log.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with logging off and no forced
// level-graph rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// logf reports one augmentation when verbose logging is enabled.
func (o *FlowOptions) logf(algorithm string, pushed, total int64, keyvals ...interface{}) {
	if o == nil || !o.Verbose || o.Logger == nil {
		return
	}
	o.Logger.Debug(algorithm+": augmented", append([]interface{}{"pushed", pushed, "total", total}, keyvals...)...)
}
