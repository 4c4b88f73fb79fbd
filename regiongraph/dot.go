package regiongraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvlath-segment/imageio"
)

// Options configures DOT export.
type Options struct {
	// Palette fills each node with its segment color; nil leaves nodes white.
	Palette *imageio.Palette
}

// ToDOT converts g to an undirected Graphviz graph. Nodes are named r<id>
// and labelled with the id and pixel count; links are labelled with their
// minimum boundary weight.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, r := range g.Regions {
		fill := "white"
		if opts.Palette != nil {
			fill = opts.Palette.Color(r.ID).Clamped().Hex()
		}
		fmt.Fprintf(&buf, "  r%d [label=\"%d\\n%d px\", fillcolor=%q];\n", r.ID, r.ID, r.Size, fill)
	}

	buf.WriteString("\n")
	for _, l := range g.Links {
		fmt.Fprintf(&buf, "  r%d -- r%d [label=\"%.1f\", penwidth=%d];\n", l.From, l.To, l.Weight, penWidth(l.Boundary))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// penWidth grows with the boundary length, capped at 6.
func penWidth(boundary int) int {
	switch {
	case boundary >= 32:
		return 6
	case boundary >= 8:
		return 3
	default:
		return 1
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
