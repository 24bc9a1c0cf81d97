// Package transfer builds the CPU-side buffers that replace part of a
// texture or a GPU buffer.
//
// A builder validates that the requested region lies within the target
// resource, allocates a tightly packed buffer for exactly that region and
// hands out cursors addressing it in target coordinates. Texture updates
// also describe their upload in WebGPU terms, converting the bottom-left
// convention of region areas into the top-left origin of a texture copy.
//
//	extent, _ := region.AreaFromSize(256, 256)
//	up, err := transfer.NewTexture(format.RGBA8, extent)
//	if err != nil {
//		return err
//	}
//	c, _ := up.Float4()
//	for ; c.IsValid(); c.Next() {
//		_ = c.Put4f(1, 0, 0, 1)
//	}
//	err = queue.WriteTexture(up)
package transfer

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/cursor"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/region"
)

// TextureUpdate is a buffer replacing an area of a 2D texture.
type TextureUpdate struct {
	format format.Format
	extent region.Area
	source region.Area
	target region.Area
	data   []byte
	pool   *Pool
}

// NewTexture returns an update of format f for a texture covering extent.
// The whole extent is replaced unless WithArea selects a sub-area. It fails
// with texel.ErrTypeError for an unknown format and with texel.ErrRange if
// either area is inverted or the sub-area is not included in the extent.
func NewTexture(f format.Format, extent region.Area, opts ...Option) (*TextureUpdate, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("transfer: unknown format %d: %w", f, texel.ErrTypeError)
	}
	if !extent.IsValid() {
		return nil, fmt.Errorf("transfer: inverted texture extent %v: %w", extent, texel.ErrRange)
	}
	o := buildOptions(opts)

	target := extent
	if o.area != nil {
		target = *o.area
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("transfer: inverted target area %v: %w", target, texel.ErrRange)
	}
	if !target.IncludedIn(extent) {
		return nil, fmt.Errorf("transfer: target area %v is not included in texture extent %v: %w",
			target, extent, texel.ErrRange)
	}

	u := &TextureUpdate{
		format: f,
		extent: extent,
		source: target.ZeroBased(),
		target: target,
		pool:   o.pool,
	}
	u.data = alloc(o.pool, f.ImageBytes(target.Width(), target.Height()))

	texel.Logger().Debug("transfer: texture update",
		"format", f,
		"extent", extent,
		"target", target,
		"bytes", len(u.data))
	return u, nil
}

// NewTextureFor returns an update for tex, whose extent is taken from its
// width and height.
func NewTextureFor(f format.Format, tex gpucontext.Texture, opts ...Option) (*TextureUpdate, error) {
	extent, err := region.AreaFromSize(tex.Width(), tex.Height())
	if err != nil {
		return nil, fmt.Errorf("transfer: texture size: %w", err)
	}
	return NewTexture(f, extent, opts...)
}

// Format returns the format of the texels in the buffer.
func (u *TextureUpdate) Format() format.Format { return u.format }

// Data returns the update buffer.
func (u *TextureUpdate) Data() []byte { return u.data }

// Source returns the zero-based area describing the buffer.
func (u *TextureUpdate) Source() region.Area { return u.source }

// Target returns the area of the texture being replaced.
func (u *TextureUpdate) Target() region.Area { return u.target }

// Bounds returns the extent of the whole texture.
func (u *TextureUpdate) Bounds() region.Area { return u.extent }

// Origin returns the top-left texel of the target area in the coordinate
// system of a WebGPU texture copy.
func (u *TextureUpdate) Origin() gputypes.Origin3D {
	return gputypes.Origin3D{
		X: uint32(u.target.X.Lower - u.extent.X.Lower),
		Y: uint32(u.extent.Y.Upper - u.target.Y.Upper),
	}
}

// Extent returns the size of the target area.
func (u *TextureUpdate) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(u.target.Width()),
		Height:             uint32(u.target.Height()),
		DepthOrArrayLayers: 1,
	}
}

// DataLayout returns the layout of the buffer for a texture copy.
func (u *TextureUpdate) DataLayout() gputypes.TextureDataLayout {
	return gputypes.TextureDataLayout{
		BytesPerRow:  uint32(u.format.RowBytes(u.target.Width())),
		RowsPerImage: uint32(u.target.Height()),
	}
}

// Release returns a pooled buffer to its pool. The update must not be used
// afterwards.
func (u *TextureUpdate) Release() {
	if u.pool != nil && u.data != nil {
		u.pool.Put(u.data)
	}
	u.data = nil
}

// Float1 returns a single-component float cursor over the buffer.
func (u *TextureUpdate) Float1() (*cursor.Float1, error) {
	return cursor.NewFloat1(u.data, u.format, u.source, u.target)
}

// Float2 returns a two-component float cursor over the buffer.
func (u *TextureUpdate) Float2() (*cursor.Float2, error) {
	return cursor.NewFloat2(u.data, u.format, u.source, u.target)
}

// Float3 returns a three-component float cursor over the buffer.
func (u *TextureUpdate) Float3() (*cursor.Float3, error) {
	return cursor.NewFloat3(u.data, u.format, u.source, u.target)
}

// Float4 returns a four-component float cursor over the buffer.
func (u *TextureUpdate) Float4() (*cursor.Float4, error) {
	return cursor.NewFloat4(u.data, u.format, u.source, u.target)
}

// FloatN returns a float cursor of the format's arity over the buffer.
func (u *TextureUpdate) FloatN() (*cursor.FloatN, error) {
	return cursor.NewFloatN(u.data, u.format, u.source, u.target)
}

// Int1 returns a single-component integer cursor over the buffer.
func (u *TextureUpdate) Int1() (*cursor.Int1, error) {
	return cursor.NewInt1(u.data, u.format, u.source, u.target)
}

// Int2 returns a two-component integer cursor over the buffer.
func (u *TextureUpdate) Int2() (*cursor.Int2, error) {
	return cursor.NewInt2(u.data, u.format, u.source, u.target)
}

// Int3 returns a three-component integer cursor over the buffer.
func (u *TextureUpdate) Int3() (*cursor.Int3, error) {
	return cursor.NewInt3(u.data, u.format, u.source, u.target)
}

// Int4 returns a four-component integer cursor over the buffer.
func (u *TextureUpdate) Int4() (*cursor.Int4, error) {
	return cursor.NewInt4(u.data, u.format, u.source, u.target)
}

// Packed returns a packed-word cursor over the buffer.
func (u *TextureUpdate) Packed() (*cursor.Packed, error) {
	return cursor.NewPacked(u.data, u.format, u.source, u.target)
}
