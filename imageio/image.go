package imageio

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// Image is a decoded row-major RGB buffer: Pixels[y*Width+x].
type Image struct {
	Width, Height int
	Pixels        []pixelgraph.Pixel
}

// FromImage copies any image.Image into an Image, dropping alpha.
// Complexity: O(W×H).
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	out := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]pixelgraph.Pixel, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			out.Pixels = append(out.Pixels, pixelgraph.Pixel{R: c.R, G: c.G, B: c.B})
		}
	}

	return out
}

// ToImage returns an opaque *image.RGBA with the same pixels.
func (im *Image) ToImage() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for i, p := range im.Pixels {
		rgba.SetRGBA(i%im.Width, i/im.Width, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
	}

	return rgba
}

// Validate reports pixelgraph.ErrDimensions or pixelgraph.ErrPixelCount for
// a malformed buffer.
func (im *Image) Validate() error {
	return pixelgraph.Validate(im.Width, im.Height, len(im.Pixels))
}

// Decode reads a PPM or PNG image from r.
// Any parse failure, including an empty image, wraps ErrFormat.
func Decode(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "decode: %v", err)
	}
	out := FromImage(img)
	if err := out.Validate(); err != nil {
		return nil, errors.Wrapf(ErrFormat, "decode: %v", err)
	}

	return out, nil
}

// ReadFile opens path and decodes it. A missing or unreadable path, or one
// that is not a regular file, wraps ErrResourceUnavailable.
func ReadFile(path string) (_ *Image, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "open %s: %v", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "stat %s: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrResourceUnavailable, "%s is not a regular file", path)
	}

	img, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return img, nil
}

// Encode writes im to w as a binary (P6) PPM.
func Encode(w io.Writer, im *Image) error {
	if err := im.Validate(); err != nil {
		return err
	}

	return errors.Wrap(ppm.Encode(w, im.ToImage()), "encode ppm")
}

// EncodePNG writes im to w as PNG.
func EncodePNG(w io.Writer, im *Image) error {
	if err := im.Validate(); err != nil {
		return err
	}

	return errors.Wrap(png.Encode(w, im.ToImage()), "encode png")
}

// WriteFile creates path and encodes im into it: PNG when the extension is
// ".png", binary PPM otherwise. A destination that cannot be created wraps
// ErrResourceUnavailable.
func WriteFile(path string, im *Image) (err error) {
	if err := im.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrResourceUnavailable, "create %s: %v", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	encode := Encode
	if strings.EqualFold(filepath.Ext(path), ".png") {
		encode = EncodePNG
	}
	if err := encode(w, im); err != nil {
		return errors.WithMessage(err, path)
	}

	return errors.Wrap(w.Flush(), path)
}
