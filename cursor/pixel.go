package cursor

import (
	"fmt"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/region"
)

// Float1 reads and writes single-component texels as float64 values.
type Float1 struct{ Cursor }

// Float2 reads and writes two-component texels as float64 values.
type Float2 struct{ Cursor }

// Float3 reads and writes three-component texels as float64 values.
type Float3 struct{ Cursor }

// Float4 reads and writes four-component texels as float64 values.
type Float4 struct{ Cursor }

// Int1 reads and writes single-component texels as raw integers.
type Int1 struct{ Cursor }

// Int2 reads and writes two-component texels as raw integers.
type Int2 struct{ Cursor }

// Int3 reads and writes three-component texels as raw integers.
type Int3 struct{ Cursor }

// Int4 reads and writes four-component texels as raw integers.
type Int4 struct{ Cursor }

// Packed reads and writes whole packed words.
type Packed struct{ Cursor }

// FloatN reads and writes texels of any arity as float64 values.
type FloatN struct{ Cursor }

// NewFloat1 returns a single-component float cursor.
func NewFloat1(data []byte, f format.Format, source, target region.Area) (*Float1, error) {
	c, err := newCursor(data, f, source, target, kindFloat, 1)
	if err != nil {
		return nil, err
	}
	return &Float1{c}, nil
}

// NewFloat2 returns a two-component float cursor.
func NewFloat2(data []byte, f format.Format, source, target region.Area) (*Float2, error) {
	c, err := newCursor(data, f, source, target, kindFloat, 2)
	if err != nil {
		return nil, err
	}
	return &Float2{c}, nil
}

// NewFloat3 returns a three-component float cursor.
func NewFloat3(data []byte, f format.Format, source, target region.Area) (*Float3, error) {
	c, err := newCursor(data, f, source, target, kindFloat, 3)
	if err != nil {
		return nil, err
	}
	return &Float3{c}, nil
}

// NewFloat4 returns a four-component float cursor.
func NewFloat4(data []byte, f format.Format, source, target region.Area) (*Float4, error) {
	c, err := newCursor(data, f, source, target, kindFloat, 4)
	if err != nil {
		return nil, err
	}
	return &Float4{c}, nil
}

// NewFloatN returns a float cursor whose arity is the component count of f.
func NewFloatN(data []byte, f format.Format, source, target region.Area) (*FloatN, error) {
	c, err := newCursor(data, f, source, target, kindFloat, 0)
	if err != nil {
		return nil, err
	}
	return &FloatN{c}, nil
}

// NewInt1 returns a single-component integer cursor.
func NewInt1(data []byte, f format.Format, source, target region.Area) (*Int1, error) {
	c, err := newCursor(data, f, source, target, kindInt, 1)
	if err != nil {
		return nil, err
	}
	return &Int1{c}, nil
}

// NewInt2 returns a two-component integer cursor.
func NewInt2(data []byte, f format.Format, source, target region.Area) (*Int2, error) {
	c, err := newCursor(data, f, source, target, kindInt, 2)
	if err != nil {
		return nil, err
	}
	return &Int2{c}, nil
}

// NewInt3 returns a three-component integer cursor.
func NewInt3(data []byte, f format.Format, source, target region.Area) (*Int3, error) {
	c, err := newCursor(data, f, source, target, kindInt, 3)
	if err != nil {
		return nil, err
	}
	return &Int3{c}, nil
}

// NewInt4 returns a four-component integer cursor.
func NewInt4(data []byte, f format.Format, source, target region.Area) (*Int4, error) {
	c, err := newCursor(data, f, source, target, kindInt, 4)
	if err != nil {
		return nil, err
	}
	return &Int4{c}, nil
}

// NewPacked returns a cursor over the whole storage word of a packed
// format. It is the only cursor available for Depth24Stencil8.
func NewPacked(data []byte, f format.Format, source, target region.Area) (*Packed, error) {
	c, err := newCursor(data, f, source, target, kindPacked, 0)
	if err != nil {
		return nil, err
	}
	return &Packed{c}, nil
}

// Put1f stores v at the current position.
func (c *Float1) Put1f(v float64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putFloat(px, 0, v)
	return nil
}

// Get1f returns the texel at the current position, or zero if the position
// is not valid.
func (c *Float1) Get1f() float64 {
	px, err := c.current()
	if err != nil {
		return 0
	}
	return c.codec.getFloat(px, 0)
}

// Put2f stores (x, y) at the current position.
func (c *Float2) Put2f(x, y float64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putFloat(px, 0, x)
	c.codec.putFloat(px, 1, y)
	return nil
}

// Get2f returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Float2) Get2f() (x, y float64) {
	px, err := c.current()
	if err != nil {
		return 0, 0
	}
	return c.codec.getFloat(px, 0), c.codec.getFloat(px, 1)
}

// Put3f stores (x, y, z) at the current position.
func (c *Float3) Put3f(x, y, z float64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putFloat(px, 0, x)
	c.codec.putFloat(px, 1, y)
	c.codec.putFloat(px, 2, z)
	return nil
}

// Get3f returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Float3) Get3f() (x, y, z float64) {
	px, err := c.current()
	if err != nil {
		return 0, 0, 0
	}
	return c.codec.getFloat(px, 0), c.codec.getFloat(px, 1), c.codec.getFloat(px, 2)
}

// Put4f stores (x, y, z, w) at the current position.
func (c *Float4) Put4f(x, y, z, w float64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putFloat(px, 0, x)
	c.codec.putFloat(px, 1, y)
	c.codec.putFloat(px, 2, z)
	c.codec.putFloat(px, 3, w)
	return nil
}

// Get4f returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Float4) Get4f() (x, y, z, w float64) {
	px, err := c.current()
	if err != nil {
		return 0, 0, 0, 0
	}
	return c.codec.getFloat(px, 0), c.codec.getFloat(px, 1),
		c.codec.getFloat(px, 2), c.codec.getFloat(px, 3)
}

// Components returns the number of values exchanged per texel.
func (c *FloatN) Components() int {
	return c.codec.count
}

// Put stores v at the current position. len(v) must equal Components.
func (c *FloatN) Put(v ...float64) error {
	if len(v) != c.codec.count {
		return fmt.Errorf("cursor: %d values for %v with %d components: %w",
			len(v), c.codec.format, c.codec.count, texel.ErrComponentCountMismatch)
	}
	px, err := c.current()
	if err != nil {
		return err
	}
	for i, x := range v {
		c.codec.putFloat(px, i, x)
	}
	return nil
}

// Get appends the texel at the current position to dst. Nothing is
// appended if the position is not valid.
func (c *FloatN) Get(dst []float64) []float64 {
	px, err := c.current()
	if err != nil {
		return dst
	}
	for i := range c.codec.count {
		dst = append(dst, c.codec.getFloat(px, i))
	}
	return dst
}

// Put1i stores v at the current position.
func (c *Int1) Put1i(v int64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putInt(px, 0, v)
	return nil
}

// Get1i returns the texel at the current position, or zero if the position
// is not valid.
func (c *Int1) Get1i() int64 {
	px, err := c.current()
	if err != nil {
		return 0
	}
	return c.codec.getInt(px, 0)
}

// Put2i stores (x, y) at the current position.
func (c *Int2) Put2i(x, y int64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putInt(px, 0, x)
	c.codec.putInt(px, 1, y)
	return nil
}

// Get2i returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Int2) Get2i() (x, y int64) {
	px, err := c.current()
	if err != nil {
		return 0, 0
	}
	return c.codec.getInt(px, 0), c.codec.getInt(px, 1)
}

// Put3i stores (x, y, z) at the current position.
func (c *Int3) Put3i(x, y, z int64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putInt(px, 0, x)
	c.codec.putInt(px, 1, y)
	c.codec.putInt(px, 2, z)
	return nil
}

// Get3i returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Int3) Get3i() (x, y, z int64) {
	px, err := c.current()
	if err != nil {
		return 0, 0, 0
	}
	return c.codec.getInt(px, 0), c.codec.getInt(px, 1), c.codec.getInt(px, 2)
}

// Put4i stores (x, y, z, w) at the current position.
func (c *Int4) Put4i(x, y, z, w int64) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	c.codec.putInt(px, 0, x)
	c.codec.putInt(px, 1, y)
	c.codec.putInt(px, 2, z)
	c.codec.putInt(px, 3, w)
	return nil
}

// Get4i returns the texel at the current position, or zeros if the
// position is not valid.
func (c *Int4) Get4i() (x, y, z, w int64) {
	px, err := c.current()
	if err != nil {
		return 0, 0, 0, 0
	}
	return c.codec.getInt(px, 0), c.codec.getInt(px, 1),
		c.codec.getInt(px, 2), c.codec.getInt(px, 3)
}

// PutPacked stores the whole word v at the current position.
func (c *Packed) PutPacked(v uint32) error {
	px, err := c.current()
	if err != nil {
		return err
	}
	storeWord(px, c.codec.word, v)
	return nil
}

// GetPacked returns the word at the current position, or zero if the
// position is not valid.
func (c *Packed) GetPacked() uint32 {
	px, err := c.current()
	if err != nil {
		return 0
	}
	return loadWord(px, c.codec.word)
}
