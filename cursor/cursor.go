// Package cursor reads and writes texels and vertex elements inside raw
// transfer buffers by coordinate.
//
// A pixel cursor is bound to a byte buffer holding a tightly packed image,
// a zero-based source area describing that buffer, and a target area of the
// same size describing the part of the destination texture being replaced.
// Callers address texels with target coordinates. Following the
// graphics-standard convention that image row 0 is the bottom-most row, a
// coordinate (x, y) is stored at
//
//	row    = source.Height() - 1 - (y - target.Y.Lower)
//	col    = x - target.X.Lower
//	offset = row*source.Width()*bpp + col*bpp
//
// so the lowest target row is the last row of the buffer.
//
// One generic Cursor serves every format; per-format behaviour comes from a
// codec record selected by the format. The typed wrappers (Float1..Float4,
// Int1..Int4, Packed) fix the arity and value kind at construction time.
//
// Float cursors are available for floating-point, normalized and integer
// formats. Normalized and integer components alike are converted with the
// fixed-point equations of their bit width, so an R16I value of 0x7fff
// reads as 1.0. Integer cursors are available for integer and normalized
// formats and exchange the stored bit-field unchanged. Packed cursors
// exchange whole packed words.
//
// Constructors fail with texel.ErrTypeError when the value kind does not
// suit the format, with texel.ErrComponentCountMismatch when the arity
// differs from the format's component count, and with texel.ErrRange when
// an area is inverted, source is not zero-based, source and target differ
// in size, or data is shorter than source.Width()*source.Height()*bpp.
//
// Cursors hold a mutable position and are not safe for concurrent use.
package cursor

import (
	"fmt"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/region"
)

// kind is the value kind requested by a cursor constructor.
type kind uint8

const (
	kindFloat kind = iota
	kindInt
	kindPacked
)

func (k kind) String() string {
	switch k {
	case kindFloat:
		return "float"
	case kindInt:
		return "integer"
	default:
		return "packed"
	}
}

// Cursor is the position and addressing state shared by all pixel cursors.
type Cursor struct {
	data     []byte
	codec    *codec
	source   region.Area
	target   region.Area
	rowBytes int
	x, y     int
}

func checkKind(c *codec, k kind) error {
	ok := false
	switch k {
	case kindPacked:
		ok = c.packed
	case kindInt:
		ok = c.enc.IsInteger() || c.enc.IsNormalized()
	case kindFloat:
		ok = c.enc == format.EncodingFloat || c.enc.IsInteger() || c.enc.IsNormalized()
	}
	if !ok {
		return fmt.Errorf("cursor: %s cursor on %v (%v): %w", k, c.format, c.enc, texel.ErrTypeError)
	}
	return nil
}

// newCursor validates a request for a cursor of kind k and the given arity.
// arity 0 accepts any component count.
func newCursor(data []byte, f format.Format, source, target region.Area, k kind, arity int) (Cursor, error) {
	c, ok := codecFor(f)
	if !ok {
		return Cursor{}, fmt.Errorf("cursor: unknown format %d: %w", f, texel.ErrTypeError)
	}
	if err := checkKind(c, k); err != nil {
		return Cursor{}, err
	}
	if arity != 0 && arity != c.count {
		return Cursor{}, fmt.Errorf("cursor: %d-component cursor on %v with %d components: %w",
			arity, f, c.count, texel.ErrComponentCountMismatch)
	}
	if !source.IsValid() || !target.IsValid() {
		return Cursor{}, fmt.Errorf("cursor: inverted area in source %v or target %v: %w",
			source, target, texel.ErrRange)
	}
	if !source.IsZeroBased() {
		return Cursor{}, fmt.Errorf("cursor: source area %v is not zero-based: %w", source, texel.ErrRange)
	}
	if !source.SameSize(target) {
		return Cursor{}, fmt.Errorf("cursor: source area %v and target area %v differ in size: %w",
			source, target, texel.ErrRange)
	}
	rowBytes := source.Width() * c.bpp
	if need := rowBytes * source.Height(); len(data) < need {
		return Cursor{}, fmt.Errorf("cursor: buffer of %d bytes, need %d: %w", len(data), need, texel.ErrRange)
	}
	return Cursor{
		data:     data,
		codec:    c,
		source:   source,
		target:   target,
		rowBytes: rowBytes,
		x:        target.X.Lower,
		y:        target.Y.Lower,
	}, nil
}

// Format returns the format the cursor encodes.
func (c *Cursor) Format() format.Format {
	return c.codec.format
}

// Source returns the zero-based area of the buffer.
func (c *Cursor) Source() region.Area {
	return c.source
}

// Target returns the area addressed by callers.
func (c *Cursor) Target() region.Area {
	return c.target
}

// X returns the current x coordinate.
func (c *Cursor) X() int {
	return c.x
}

// Y returns the current y coordinate.
func (c *Cursor) Y() int {
	return c.y
}

// SeekTo moves the cursor to (x, y). The position may lie outside the
// target area, in which case IsValid reports false.
func (c *Cursor) SeekTo(x, y int) {
	c.x, c.y = x, y
}

// Next advances the cursor in row-major order: along x, then to the start
// of the next y.
func (c *Cursor) Next() {
	c.x++
	if c.x > c.target.X.Upper {
		c.x = c.target.X.Lower
		c.y++
	}
}

// IsValid reports whether the current position lies within the target
// area.
func (c *Cursor) IsValid() bool {
	return c.target.Contains(c.x, c.y)
}

// ByteOffset returns the offset of the current texel in the buffer, or -1
// if the position is not valid.
func (c *Cursor) ByteOffset() int {
	if !c.IsValid() {
		return -1
	}
	row := c.source.Height() - 1 - (c.y - c.target.Y.Lower)
	col := c.x - c.target.X.Lower
	return row*c.rowBytes + col*c.codec.bpp
}

// current returns the bytes of the texel at the current position.
func (c *Cursor) current() ([]byte, error) {
	off := c.ByteOffset()
	if off < 0 {
		return nil, fmt.Errorf("cursor: position (%d, %d) outside %v: %w", c.x, c.y, c.target, texel.ErrRange)
	}
	return c.data[off : off+c.codec.bpp], nil
}
