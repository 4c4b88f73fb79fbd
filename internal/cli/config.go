package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-segment/graphcut"
)

// Config is the TOML configuration file layout.
//
//	[merge]
//	thresholds = [10.0, 15.0, 20.0]
//
//	[cut]
//	foreground = 180.0
//	background = 150.0
//	terminal-capacity = 1000
//	neighbor-ceiling = 100.0
//	method = "edmonds-karp"
//
//	[output]
//	dir = "./segments"
//	png = false
//	graph = ""
//	seed = 0
type Config struct {
	Merge  MergeConfig  `toml:"merge"`
	Cut    CutConfig    `toml:"cut"`
	Output OutputConfig `toml:"output"`
}

// MergeConfig holds threshold-merge parameters.
type MergeConfig struct {
	Thresholds []float64 `toml:"thresholds"`
}

// CutConfig holds min-cut parameters.
type CutConfig struct {
	Foreground       float64 `toml:"foreground"`
	Background       float64 `toml:"background"`
	TerminalCapacity int64   `toml:"terminal-capacity"`
	NeighborCeiling  float64 `toml:"neighbor-ceiling"`
	Method           string  `toml:"method"`
}

// OutputConfig controls what gets written and where.
type OutputConfig struct {
	Dir string `toml:"dir"`
	// PNG additionally writes a .png next to every .ppm.
	PNG bool `toml:"png"`
	// Graph writes the region adjacency graph: "", "dot" or "svg".
	Graph string `toml:"graph"`
	// Seed fixes the segment palette; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
}

// DefaultConfig returns thresholds 10, 15 and 20, the graphcut defaults and
// ./segments as output directory.
func DefaultConfig() Config {
	cut := graphcut.DefaultOptions()
	return Config{
		Merge: MergeConfig{Thresholds: []float64{10, 15, 20}},
		Cut: CutConfig{
			Foreground:       cut.ForegroundThreshold,
			Background:       cut.BackgroundThreshold,
			TerminalCapacity: cut.TerminalCapacity,
			NeighborCeiling:  cut.NeighborCeiling,
			Method:           string(cut.Method),
		},
		Output: OutputConfig{Dir: "./segments"},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults. Keys the file sets but Config does not know are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Output.validate(); err != nil {
		return Config{}, errors.WithMessage(err, path)
	}

	return cfg, nil
}

// graphFormats lists the accepted --graph values.
var graphFormats = map[string]bool{"": true, "dot": true, "svg": true}

func (o OutputConfig) validate() error {
	if !graphFormats[o.Graph] {
		return fmt.Errorf("invalid graph format: %s (must be 'dot' or 'svg')", o.Graph)
	}
	return nil
}

const configKey ctxKey = 1

// withConfig returns a copy of ctx carrying cfg.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the Config attached to ctx, or DefaultConfig().
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return DefaultConfig()
}
