package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/layout"
	"github.com/gogpu/texel/region"
)

// elements is the addressing state shared by the 1D element cursors. The
// buffer holds source.Interval() records of stride bytes; element i of the
// target range lives at record i-target.Lower.
type elements struct {
	data   []byte
	stride int
	source region.Range
	target region.Range
	i      int
}

func newElements(data []byte, stride int, source, target region.Range) (elements, error) {
	if !source.IsValid() || !target.IsValid() {
		return elements{}, fmt.Errorf("cursor: inverted range in source %v or target %v: %w",
			source, target, texel.ErrRange)
	}
	if !source.IsZeroBased() {
		return elements{}, fmt.Errorf("cursor: source range %v is not zero-based: %w", source, texel.ErrRange)
	}
	if source.Interval() != target.Interval() {
		return elements{}, fmt.Errorf("cursor: source range %v and target range %v differ in size: %w",
			source, target, texel.ErrRange)
	}
	if need := source.Interval() * stride; len(data) < need {
		return elements{}, fmt.Errorf("cursor: buffer of %d bytes, need %d: %w", len(data), need, texel.ErrRange)
	}
	return elements{data: data, stride: stride, source: source, target: target, i: target.Lower}, nil
}

// Index returns the current element index.
func (e *elements) Index() int {
	return e.i
}

// SeekTo moves the cursor to element i.
func (e *elements) SeekTo(i int) {
	e.i = i
}

// Next advances the cursor to the following element.
func (e *elements) Next() {
	e.i++
}

// IsValid reports whether the current element lies within the target
// range.
func (e *elements) IsValid() bool {
	return e.target.Contains(e.i)
}

func (e *elements) record() int {
	if !e.IsValid() {
		return -1
	}
	return (e.i - e.target.Lower) * e.stride
}

func loadScalar(b []byte, t layout.ScalarType) (int64, float64) {
	switch t {
	case layout.Int8:
		v := int64(int8(b[0]))
		return v, float64(v)
	case layout.Uint8:
		v := int64(b[0])
		return v, float64(v)
	case layout.Int16:
		v := int64(int16(binary.NativeEndian.Uint16(b)))
		return v, float64(v)
	case layout.Uint16:
		v := int64(binary.NativeEndian.Uint16(b))
		return v, float64(v)
	case layout.Int32:
		v := int64(int32(binary.NativeEndian.Uint32(b)))
		return v, float64(v)
	case layout.Uint32:
		v := int64(binary.NativeEndian.Uint32(b))
		return v, float64(v)
	case layout.Float16:
		f := float64(float16.Frombits(binary.NativeEndian.Uint16(b)).Float32())
		return int64(f), f
	default:
		f := float64(math.Float32frombits(binary.NativeEndian.Uint32(b)))
		return int64(f), f
	}
}

func storeInt(b []byte, t layout.ScalarType, v int64) {
	switch t.SizeBytes() {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	default:
		binary.NativeEndian.PutUint32(b, uint32(v))
	}
}

func storeFloat(b []byte, t layout.ScalarType, v float64) {
	if t == layout.Float16 {
		binary.NativeEndian.PutUint16(b, float16.Fromfloat32(float32(v)).Bits())
		return
	}
	binary.NativeEndian.PutUint32(b, math.Float32bits(float32(v)))
}

// AttributeCursor reads and writes one attribute of every record in a
// vertex buffer.
type AttributeCursor struct {
	elements
	attr   layout.Attribute
	offset int
}

// NewAttribute returns a cursor over attribute name of the records in data.
// It fails with texel.ErrUnknownAttribute if l has no such attribute and
// with texel.ErrRange if source is not zero-based, source and target differ
// in size, or data is shorter than source.Interval()*l.Stride().
func NewAttribute(data []byte, l *layout.BufferLayout, name string, source, target region.Range) (*AttributeCursor, error) {
	attr, err := l.Attribute(name)
	if err != nil {
		return nil, err
	}
	offset, err := l.Offset(name)
	if err != nil {
		return nil, err
	}
	e, err := newElements(data, l.Stride(), source, target)
	if err != nil {
		return nil, err
	}
	return &AttributeCursor{elements: e, attr: attr, offset: offset}, nil
}

// Attribute returns the attribute the cursor addresses.
func (c *AttributeCursor) Attribute() layout.Attribute {
	return c.attr
}

// ByteOffset returns the offset of the current attribute value in the
// buffer, or -1 if the position is not valid.
func (c *AttributeCursor) ByteOffset() int {
	r := c.record()
	if r < 0 {
		return -1
	}
	return r + c.offset
}

func (c *AttributeCursor) slot(n int, float bool) ([]byte, error) {
	if c.attr.Type.IsFloat() != float {
		want := "integer"
		if float {
			want = "float"
		}
		return nil, fmt.Errorf("cursor: %s values for attribute %v: %w", want, c.attr, texel.ErrTypeError)
	}
	if n != c.attr.Count {
		return nil, fmt.Errorf("cursor: %d values for attribute %v: %w", n, c.attr, texel.ErrComponentCountMismatch)
	}
	off := c.ByteOffset()
	if off < 0 {
		return nil, fmt.Errorf("cursor: element %d outside %v: %w", c.i, c.target, texel.ErrRange)
	}
	return c.data[off : off+c.attr.SizeBytes()], nil
}

// PutFloats stores v into the current element. The attribute must be of a
// float type and len(v) must equal its count.
func (c *AttributeCursor) PutFloats(v ...float64) error {
	b, err := c.slot(len(v), true)
	if err != nil {
		return err
	}
	size := c.attr.Type.SizeBytes()
	for k, x := range v {
		storeFloat(b[k*size:], c.attr.Type, x)
	}
	return nil
}

// PutInts stores v into the current element. The attribute must be of an
// integer type and len(v) must equal its count. Values are truncated to
// the component width.
func (c *AttributeCursor) PutInts(v ...int64) error {
	b, err := c.slot(len(v), false)
	if err != nil {
		return err
	}
	size := c.attr.Type.SizeBytes()
	for k, x := range v {
		storeInt(b[k*size:], c.attr.Type, x)
	}
	return nil
}

// Floats appends the components of the current element to dst, converted
// to float64. Nothing is appended if the position is not valid.
func (c *AttributeCursor) Floats(dst []float64) []float64 {
	off := c.ByteOffset()
	if off < 0 {
		return dst
	}
	size := c.attr.Type.SizeBytes()
	for k := range c.attr.Count {
		_, f := loadScalar(c.data[off+k*size:], c.attr.Type)
		dst = append(dst, f)
	}
	return dst
}

// Ints appends the components of the current element to dst, converted to
// int64. Nothing is appended if the position is not valid.
func (c *AttributeCursor) Ints(dst []int64) []int64 {
	off := c.ByteOffset()
	if off < 0 {
		return dst
	}
	size := c.attr.Type.SizeBytes()
	for k := range c.attr.Count {
		v, _ := loadScalar(c.data[off+k*size:], c.attr.Type)
		dst = append(dst, v)
	}
	return dst
}

// IndexCursor reads and writes an index buffer.
type IndexCursor struct {
	elements
	typ layout.ScalarType
}

// NewIndex returns a cursor over an index buffer of type t, which must be
// Uint8, Uint16 or Uint32.
func NewIndex(data []byte, t layout.ScalarType, source, target region.Range) (*IndexCursor, error) {
	switch t {
	case layout.Uint8, layout.Uint16, layout.Uint32:
	default:
		return nil, fmt.Errorf("cursor: index type %v: %w", t, texel.ErrTypeError)
	}
	e, err := newElements(data, t.SizeBytes(), source, target)
	if err != nil {
		return nil, err
	}
	return &IndexCursor{elements: e, typ: t}, nil
}

// Type returns the index type.
func (c *IndexCursor) Type() layout.ScalarType {
	return c.typ
}

// ByteOffset returns the offset of the current index in the buffer, or -1
// if the position is not valid.
func (c *IndexCursor) ByteOffset() int {
	return c.record()
}

// PutIndex stores v at the current position. It fails with texel.ErrRange
// if the position is not valid or v does not fit the index type.
func (c *IndexCursor) PutIndex(v uint32) error {
	if limit := uint64(1)<<(8*c.typ.SizeBytes()) - 1; uint64(v) > limit {
		return fmt.Errorf("cursor: index %d does not fit %v: %w", v, c.typ, texel.ErrRange)
	}
	off := c.record()
	if off < 0 {
		return fmt.Errorf("cursor: element %d outside %v: %w", c.i, c.target, texel.ErrRange)
	}
	storeInt(c.data[off:], c.typ, int64(v))
	return nil
}

// GetIndex returns the index at the current position, or zero if the
// position is not valid.
func (c *IndexCursor) GetIndex() uint32 {
	off := c.record()
	if off < 0 {
		return 0
	}
	v, _ := loadScalar(c.data[off:], c.typ)
	return uint32(v)
}
