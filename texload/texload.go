// Package texload fills texture updates from encoded images.
//
// Images are decoded with the standard PNG and JPEG decoders and the BMP,
// TIFF and WebP decoders of golang.org/x/image, converted to NRGBA and
// optionally rescaled, then written through a float cursor so any color
// format can be targeted. The top row of the image
// is written to the highest y of the texture, so the upload appears
// upright under the bottom-left coordinate convention.
package texload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/region"
	"github.com/gogpu/texel/transfer"
)

// Load errors.
var (
	// ErrUnsupportedFormat is returned when the image encoding is not
	// recognized.
	ErrUnsupportedFormat = errors.New("texload: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("texload: empty data")
)

// Option configures image loading.
type Option func(*options)

type options struct {
	width, height int
	pool          *transfer.Pool
}

// WithSize rescales the image to width x height with Catmull-Rom
// filtering. Non-positive sizes keep the image size.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithPool allocates the texture buffer from p.
func WithPool(p *transfer.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// Load decodes the image file at path into an update of format f.
func Load(path string, f format.Format, opts ...Option) (*transfer.TextureUpdate, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texload: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, f, opts...)
}

// LoadBytes decodes an encoded image held in memory.
func LoadBytes(data []byte, f format.Format, opts ...Option) (*transfer.TextureUpdate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), f, opts...)
}

// Decode decodes an image from r, auto-detecting its encoding, into an
// update of format f.
func Decode(r io.Reader, f format.Format, opts ...Option) (*transfer.TextureUpdate, error) {
	img, kind, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("texload: decode: %w", err)
	}
	texel.Logger().Debug("texload: decoded image", "encoding", kind, "bounds", img.Bounds())
	return FromImage(img, f, opts...)
}

// FromImage writes img into a new update of format f covering the whole
// texture. It fails with texel.ErrTypeError if f is unknown or a depth
// format. Integer formats receive the channels scaled to their full range.
func FromImage(img image.Image, f format.Format, opts ...Option) (*transfer.TextureUpdate, error) {
	if !f.IsValid() || f.DepthBits() > 0 {
		return nil, fmt.Errorf("texload: %v is not a color format: %w", f, texel.ErrTypeError)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	nrgba := toNRGBA(img, o.width, o.height)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	extent, err := region.AreaFromSize(w, h)
	if err != nil {
		return nil, fmt.Errorf("texload: image size: %w", err)
	}

	u, err := transfer.NewTexture(f, extent, transfer.WithPool(o.pool))
	if err != nil {
		return nil, err
	}
	c, err := u.FloatN()
	if err != nil {
		u.Release()
		return nil, err
	}

	n := c.Components()
	vals := make([]float64, n)
	for iy := range h {
		row := nrgba.Pix[iy*nrgba.Stride:]
		for x := range w {
			px := row[x*4 : x*4+4]
			for i := range n {
				vals[i] = float64(px[i]) / 255
			}
			c.SeekTo(x, h-1-iy)
			if err := c.Put(vals...); err != nil {
				u.Release()
				return nil, err
			}
		}
	}
	return u, nil
}

// toNRGBA converts img to a zero-origin NRGBA image, rescaling it when a
// positive size is requested.
func toNRGBA(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	if width <= 0 || height <= 0 {
		width, height = b.Dx(), b.Dy()
	}
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && b.Dx() == width && b.Dy() == height {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if b.Dx() == width && b.Dy() == height {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst
}

// ToImage reads a texture update back into an image, top row first.
// Components missing from the format read as zero, except alpha which
// reads as opaque.
func ToImage(u *transfer.TextureUpdate) (*image.NRGBA, error) {
	c, err := u.FloatN()
	if err != nil {
		return nil, err
	}
	t := u.Target()
	w, h := t.Width(), t.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	vals := make([]float64, 0, 4)
	for iy := range h {
		for x := range w {
			c.SeekTo(t.X.Lower+x, t.Y.Upper-iy)
			vals = c.Get(vals[:0])
			px := img.Pix[iy*img.Stride+x*4:]
			px[3] = 0xFF
			for i, v := range vals {
				px[i] = toByte(v)
			}
		}
	}
	return img, nil
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
