package cursor

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/internal/fixed"
)

// codec is the encode/decode strategy of one format. Every component lives
// in a storage word of word bytes at (packed ? 0 : i*word) within the texel,
// occupying bits[i] bits starting at bit shifts[i]. Unpacked components use
// the whole word.
type codec struct {
	format format.Format
	enc    format.Encoding
	pixel  format.PixelType
	count  int
	word   int
	bpp    int
	packed bool
	bits   [4]uint8
	shifts [4]uint8
}

// codecs is the dispatch table, indexed by format.
var codecs = buildCodecs()

func buildCodecs() []codec {
	all := format.Values()
	out := make([]codec, len(all))
	for _, f := range all {
		info := f.Info()
		out[f] = codec{
			format: f,
			enc:    info.Encoding,
			pixel:  info.PixelType,
			count:  info.Components,
			word:   info.PixelType.WordBytes(),
			bpp:    info.BytesPerPixel,
			packed: info.Packed,
			bits:   info.Bits,
			shifts: info.Shifts,
		}
	}
	return out
}

func codecFor(f format.Format) (*codec, bool) {
	if int(f) >= len(codecs) {
		return nil, false
	}
	return &codecs[f], true
}

func mask(bits uint8) uint32 {
	return uint32(uint64(1)<<bits - 1)
}

func loadWord(b []byte, size int) uint32 {
	switch size {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.NativeEndian.Uint16(b))
	default:
		return binary.NativeEndian.Uint32(b)
	}
}

func storeWord(b []byte, size int, v uint32) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	default:
		binary.NativeEndian.PutUint32(b, v)
	}
}

func (c *codec) wordAt(px []byte, i int) []byte {
	if c.packed {
		return px[:c.word]
	}
	return px[i*c.word : (i+1)*c.word]
}

// raw returns the unsigned bit-field of component i.
func (c *codec) raw(px []byte, i int) uint32 {
	w := loadWord(c.wordAt(px, i), c.word)
	return (w >> c.shifts[i]) & mask(c.bits[i])
}

// setRaw replaces the bit-field of component i, leaving the other bits of
// the word untouched.
func (c *codec) setRaw(px []byte, i int, v uint32) {
	b := c.wordAt(px, i)
	m := mask(c.bits[i]) << c.shifts[i]
	w := loadWord(b, c.word)
	w = (w &^ m) | ((v << c.shifts[i]) & m)
	storeWord(b, c.word, w)
}

func signExtend(v uint32, bits uint8) int64 {
	s := 32 - bits
	return int64(int32(v<<s) >> s)
}

func (c *codec) signed() bool {
	return c.enc == format.EncodingSignedInt || c.enc == format.EncodingSignedNormalized
}

func (c *codec) getInt(px []byte, i int) int64 {
	v := c.raw(px, i)
	if c.signed() {
		return signExtend(v, c.bits[i])
	}
	return int64(v)
}

func (c *codec) putInt(px []byte, i int, v int64) {
	c.setRaw(px, i, uint32(v))
}

func (c *codec) getFloat(px []byte, i int) float64 {
	switch c.enc {
	case format.EncodingFloat:
		if c.pixel == format.PixelHalfFloat {
			return float64(float16.Frombits(uint16(c.raw(px, i))).Float32())
		}
		return float64(math.Float32frombits(c.raw(px, i)))
	case format.EncodingUnsignedNormalized, format.EncodingUnsignedInt:
		return fixed.FromUnsigned[float64](int64(c.raw(px, i)), int(c.bits[i]))
	case format.EncodingSignedNormalized, format.EncodingSignedInt:
		return fixed.FromSigned[float64](signExtend(c.raw(px, i), c.bits[i]), int(c.bits[i]))
	default:
		return float64(c.getInt(px, i))
	}
}

func (c *codec) putFloat(px []byte, i int, v float64) {
	switch c.enc {
	case format.EncodingFloat:
		if c.pixel == format.PixelHalfFloat {
			c.setRaw(px, i, uint32(float16.Fromfloat32(float32(v)).Bits()))
			return
		}
		c.setRaw(px, i, math.Float32bits(float32(v)))
	case format.EncodingUnsignedNormalized, format.EncodingUnsignedInt:
		c.setRaw(px, i, uint32(fixed.ToUnsigned[int64](v, int(c.bits[i]))))
	case format.EncodingSignedNormalized, format.EncodingSignedInt:
		c.setRaw(px, i, uint32(fixed.ToSigned[int64](v, int(c.bits[i]))))
	default:
		c.putInt(px, i, int64(v))
	}
}

// PackDepthStencil returns the Depth24Stencil8 word holding the low 24
// bits of depth and the stencil value.
func PackDepthStencil(depth uint32, stencil uint8) uint32 {
	return (depth&0xFFFFFF)<<8 | uint32(stencil)
}

// UnpackDepthStencil splits a Depth24Stencil8 word.
func UnpackDepthStencil(w uint32) (depth uint32, stencil uint8) {
	return w >> 8, uint8(w)
}
