package imageio

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// Palette hands out one color per segment id, drawing new colors lazily.
// Colors are random and carry no meaning; only equality within one palette
// is stable. A Palette is not safe for concurrent use.
type Palette struct {
	rng    *rand.Rand
	colors []colorful.Color
}

// NewPalette returns a palette seeded with seed; seed 0 seeds from the clock.
func NewPalette(seed int64) *Palette {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Palette{rng: rand.New(rand.NewSource(seed))}
}

// Color returns the color of segment id, drawing colors up to id on demand.
func (p *Palette) Color(id int) colorful.Color {
	for len(p.colors) <= id {
		// Saturation in [0.5, 1), value in [0.6, 1).
		h := p.rng.Float64() * 360
		s := 0.5 + p.rng.Float64()*0.5
		v := 0.6 + p.rng.Float64()*0.4
		p.colors = append(p.colors, colorful.Hsv(h, s, v))
	}

	return p.colors[id]
}

// Pixel returns Color(id) as an 8-bit pixel.
func (p *Palette) Pixel(id int) pixelgraph.Pixel {
	r, g, b := p.Color(id).Clamped().RGB255()

	return pixelgraph.Pixel{R: r, G: g, B: b}
}

// Colorize paints every pixel with its segment's palette color.
// Returns pixelgraph.ErrDimensions or pixelgraph.ErrPixelCount when seg does
// not cover width*height vertices.
func Colorize(width, height int, seg *segmentation.Segmentation, palette *Palette) (*Image, error) {
	if err := pixelgraph.Validate(width, height, seg.Len()); err != nil {
		return nil, err
	}
	out := &Image{Width: width, Height: height, Pixels: make([]pixelgraph.Pixel, seg.Len())}
	for v, id := range seg.Labels() {
		out.Pixels[v] = palette.Pixel(id)
	}

	return out, nil
}
