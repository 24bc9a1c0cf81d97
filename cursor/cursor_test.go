package cursor

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/region"
)

func mustArea(t *testing.T, x, y, w, h int) region.Area {
	t.Helper()
	a, err := region.AreaAt(x, y, w, h)
	if err != nil {
		t.Fatalf("AreaAt(%d, %d, %d, %d): %v", x, y, w, h, err)
	}
	return a
}

func buffer(f format.Format, w, h int) []byte {
	return make([]byte, f.RowBytes(w)*h)
}

func TestRowFlip(t *testing.T) {
	src := mustArea(t, 0, 0, 2, 3)
	dst := mustArea(t, 10, 20, 2, 3)
	data := buffer(format.R8U, 2, 3)

	c, err := NewInt1(data, format.R8U, src, dst)
	if err != nil {
		t.Fatalf("NewInt1: %v", err)
	}

	tests := []struct {
		x, y   int
		offset int
	}{
		{10, 20, 4},
		{11, 20, 5},
		{10, 21, 2},
		{11, 22, 1},
		{10, 22, 0},
	}
	for i, tt := range tests {
		c.SeekTo(tt.x, tt.y)
		if got := c.ByteOffset(); got != tt.offset {
			t.Errorf("ByteOffset at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.offset)
		}
		if err := c.Put1i(int64(i + 1)); err != nil {
			t.Fatalf("Put1i: %v", err)
		}
		if data[tt.offset] != byte(i+1) {
			t.Errorf("data[%d] = %d, want %d", tt.offset, data[tt.offset], i+1)
		}
	}
}

func TestNextTraversal(t *testing.T) {
	src := mustArea(t, 0, 0, 2, 2)
	dst := mustArea(t, 5, 5, 2, 2)
	c, err := NewFloat4(buffer(format.RGBA8, 2, 2), format.RGBA8, src, dst)
	if err != nil {
		t.Fatalf("NewFloat4: %v", err)
	}

	want := [][2]int{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	for _, p := range want {
		if !c.IsValid() {
			t.Fatalf("cursor invalid before (%d, %d)", p[0], p[1])
		}
		if c.X() != p[0] || c.Y() != p[1] {
			t.Errorf("position = (%d, %d), want (%d, %d)", c.X(), c.Y(), p[0], p[1])
		}
		c.Next()
	}
	if c.IsValid() {
		t.Errorf("cursor valid after traversal at (%d, %d)", c.X(), c.Y())
	}
	if got := c.ByteOffset(); got != -1 {
		t.Errorf("ByteOffset past end = %d, want -1", got)
	}
}

func TestInvalidPosition(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := []byte{0x7F, 0x7F, 0x7F, 0x7F}
	c, err := NewFloat4(data, format.RGBA8, area, area)
	if err != nil {
		t.Fatalf("NewFloat4: %v", err)
	}
	c.SeekTo(1, 0)
	if err := c.Put4f(1, 1, 1, 1); !errors.Is(err, texel.ErrRange) {
		t.Errorf("Put4f outside target = %v, want ErrRange", err)
	}
	if r, g, b, a := c.Get4f(); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Get4f outside target = (%v, %v, %v, %v), want zeros", r, g, b, a)
	}
	for i, v := range data {
		if v != 0x7F {
			t.Errorf("data[%d] = %#x, buffer modified by failed put", i, v)
		}
	}
}

func TestConstructorErrors(t *testing.T) {
	one := mustArea(t, 0, 0, 1, 1)
	two := mustArea(t, 0, 0, 2, 1)
	shifted := mustArea(t, 1, 0, 1, 1)
	inverted := region.Area{X: region.Range{Lower: 0, Upper: -2}, Y: region.Range{Lower: 0, Upper: 0}}
	tests := []struct {
		name string
		new  func() error
		want error
	}{
		{"depth-stencil float", func() error {
			_, err := NewFloat2(buffer(format.Depth24Stencil8, 1, 1), format.Depth24Stencil8, one, one)
			return err
		}, texel.ErrTypeError},
		{"depth-stencil int", func() error {
			_, err := NewInt2(buffer(format.Depth24Stencil8, 1, 1), format.Depth24Stencil8, one, one)
			return err
		}, texel.ErrTypeError},
		{"int on float", func() error {
			_, err := NewInt1(buffer(format.R32F, 1, 1), format.R32F, one, one)
			return err
		}, texel.ErrTypeError},
		{"inverted source", func() error {
			_, err := NewFloat1(make([]byte, 16), format.R8, inverted, inverted)
			return err
		}, texel.ErrRange},
		{"inverted target", func() error {
			_, err := NewFloat1(buffer(format.R8, 1, 1), format.R8, one, inverted.Translate(3, 0))
			return err
		}, texel.ErrRange},
		{"packed on unpacked", func() error {
			_, err := NewPacked(buffer(format.RGBA8, 1, 1), format.RGBA8, one, one)
			return err
		}, texel.ErrTypeError},
		{"unknown format", func() error {
			_, err := NewFloat1(make([]byte, 16), format.Format(200), one, one)
			return err
		}, texel.ErrTypeError},
		{"arity", func() error {
			_, err := NewFloat2(buffer(format.R8, 1, 1), format.R8, one, one)
			return err
		}, texel.ErrComponentCountMismatch},
		{"kind before arity", func() error {
			_, err := NewInt3(buffer(format.R32F, 1, 1), format.R32F, one, one)
			return err
		}, texel.ErrTypeError},
		{"arity before range", func() error {
			_, err := NewFloat3(nil, format.RGBA8, shifted, two)
			return err
		}, texel.ErrComponentCountMismatch},
		{"source not zero-based", func() error {
			_, err := NewFloat1(buffer(format.R8, 2, 1), format.R8, shifted, one)
			return err
		}, texel.ErrRange},
		{"size mismatch", func() error {
			_, err := NewFloat1(buffer(format.R8, 2, 1), format.R8, one, two)
			return err
		}, texel.ErrRange},
		{"short buffer", func() error {
			_, err := NewFloat4(make([]byte, 7), format.RGBA8, two, two)
			return err
		}, texel.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.new(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPackedLayouts(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	tests := []struct {
		name   string
		format format.Format
		values []int64
		word   uint32
	}{
		{"565 red", format.RGB565, []int64{31, 0, 0}, 0xF800},
		{"565 green", format.RGB565, []int64{0, 63, 0}, 0x07E0},
		{"565 blue", format.RGB565, []int64{0, 0, 31}, 0x001F},
		{"4444 red", format.RGBA4444, []int64{15, 0, 0, 0}, 0xF000},
		{"4444 alpha", format.RGBA4444, []int64{0, 0, 0, 15}, 0x000F},
		{"5551 red", format.RGBA5551, []int64{31, 0, 0, 0}, 0xF800},
		{"5551 alpha", format.RGBA5551, []int64{0, 0, 0, 1}, 0x0001},
		{"1010102 red", format.RGBA1010102, []int64{1023, 0, 0, 0}, 0xFFC00000},
		{"1010102 blue", format.RGBA1010102, []int64{0, 0, 1023, 0}, 0x00000FFC},
		{"1010102 alpha", format.RGBA1010102, []int64{0, 0, 0, 3}, 0x00000003},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buffer(tt.format, 1, 1)
			var err error
			switch len(tt.values) {
			case 3:
				var c *Int3
				if c, err = NewInt3(data, tt.format, area, area); err == nil {
					err = c.Put3i(tt.values[0], tt.values[1], tt.values[2])
				}
			case 4:
				var c *Int4
				if c, err = NewInt4(data, tt.format, area, area); err == nil {
					err = c.Put4i(tt.values[0], tt.values[1], tt.values[2], tt.values[3])
				}
			}
			if err != nil {
				t.Fatalf("put: %v", err)
			}
			if got := loadWord(data, len(data)); got != tt.word {
				t.Errorf("word = %#x, want %#x", got, tt.word)
			}

			p, err := NewPacked(data, tt.format, area, area)
			if err != nil {
				t.Fatalf("NewPacked: %v", err)
			}
			if got := p.GetPacked(); got != tt.word {
				t.Errorf("GetPacked() = %#x, want %#x", got, tt.word)
			}
		})
	}
}

func TestRGB565FloatRoundTrip(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.RGB565, 1, 1)
	c, err := NewFloat3(data, format.RGB565, area, area)
	if err != nil {
		t.Fatalf("NewFloat3: %v", err)
	}
	if err := c.Put3f(1, 1, 1); err != nil {
		t.Fatalf("Put3f: %v", err)
	}
	if got := binary.NativeEndian.Uint16(data); got != 0xFFFF {
		t.Errorf("word = %#x, want 0xffff", got)
	}
	r, g, b := c.Get3f()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("Get3f() = (%v, %v, %v), want (1, 1, 1)", r, g, b)
	}

	i, err := NewInt3(data, format.RGB565, area, area)
	if err != nil {
		t.Fatalf("NewInt3: %v", err)
	}
	if r, g, b := i.Get3i(); r != 31 || g != 63 || b != 31 {
		t.Errorf("Get3i() = (%d, %d, %d), want (31, 63, 31)", r, g, b)
	}
}

func TestNoNeighbourCorruption(t *testing.T) {
	src := mustArea(t, 0, 0, 3, 1)
	for _, f := range []format.Format{format.RGBA4444, format.RGB565, format.RGBA8, format.RG16F, format.RGBA1010102} {
		t.Run(f.String(), func(t *testing.T) {
			data := buffer(f, 3, 1)
			for i := range data {
				data[i] = 0xA5
			}
			c, err := NewFloatN(data, f, src, src)
			if err != nil {
				t.Fatalf("NewFloatN: %v", err)
			}
			c.SeekTo(1, 0)
			vals := make([]float64, c.Components())
			if err := c.Put(vals...); err != nil {
				t.Fatalf("Put: %v", err)
			}
			bpp := f.BytesPerPixel()
			for i, v := range data {
				if i >= bpp && i < 2*bpp {
					continue
				}
				if v != 0xA5 {
					t.Errorf("data[%d] = %#x, want 0xa5", i, v)
				}
			}
		})
	}
}

func TestPartialFieldWrite(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.RGBA5551, 1, 1)
	binary.NativeEndian.PutUint16(data, 0xFFFE)

	c, err := NewInt4(data, format.RGBA5551, area, area)
	if err != nil {
		t.Fatalf("NewInt4: %v", err)
	}
	r, g, b, _ := c.Get4i()
	if err := c.Put4i(r, g, b, 1); err != nil {
		t.Fatalf("Put4i: %v", err)
	}
	if got := binary.NativeEndian.Uint16(data); got != 0xFFFF {
		t.Errorf("word = %#x, want 0xffff", got)
	}
}

func TestDepthLayouts(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)

	t.Run("Depth24", func(t *testing.T) {
		data := buffer(format.Depth24, 1, 1)
		c, err := NewFloat1(data, format.Depth24, area, area)
		if err != nil {
			t.Fatalf("NewFloat1: %v", err)
		}
		if err := c.Put1f(1); err != nil {
			t.Fatalf("Put1f: %v", err)
		}
		if got := binary.NativeEndian.Uint32(data); got != 0xFFFFFF00 {
			t.Errorf("word = %#x, want 0xffffff00", got)
		}
		if got := c.Get1f(); got != 1 {
			t.Errorf("Get1f() = %v, want 1", got)
		}
	})

	t.Run("Depth24Stencil8", func(t *testing.T) {
		data := buffer(format.Depth24Stencil8, 1, 1)
		c, err := NewPacked(data, format.Depth24Stencil8, area, area)
		if err != nil {
			t.Fatalf("NewPacked: %v", err)
		}
		if err := c.PutPacked(PackDepthStencil(0xABCDEF, 0x12)); err != nil {
			t.Fatalf("PutPacked: %v", err)
		}
		if got := binary.NativeEndian.Uint32(data); got != 0xABCDEF12 {
			t.Errorf("word = %#x, want 0xabcdef12", got)
		}
		d, s := UnpackDepthStencil(c.GetPacked())
		if d != 0xABCDEF || s != 0x12 {
			t.Errorf("UnpackDepthStencil = (%#x, %#x), want (0xabcdef, 0x12)", d, s)
		}
	})

	t.Run("Depth16", func(t *testing.T) {
		data := buffer(format.Depth16, 1, 1)
		c, err := NewFloat1(data, format.Depth16, area, area)
		if err != nil {
			t.Fatalf("NewFloat1: %v", err)
		}
		if err := c.Put1f(1); err != nil {
			t.Fatalf("Put1f: %v", err)
		}
		if got := binary.NativeEndian.Uint16(data); got != 0xFFFF {
			t.Errorf("word = %#x, want 0xffff", got)
		}
	})
}

func TestUnsignedNormalizedIsNotClamped(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.R8, 1, 1)
	c, err := NewFloat1(data, format.R8, area, area)
	if err != nil {
		t.Fatalf("NewFloat1: %v", err)
	}
	// 2.0 * 255 = 510, masked to the low 8 bits.
	if err := c.Put1f(2); err != nil {
		t.Fatalf("Put1f: %v", err)
	}
	if data[0] != 0xFE {
		t.Errorf("data[0] = %#x, want 0xfe", data[0])
	}
}

func TestSignedNormalizedClamps(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.RG8S, 1, 1)
	c, err := NewFloat2(data, format.RG8S, area, area)
	if err != nil {
		t.Fatalf("NewFloat2: %v", err)
	}
	if err := c.Put2f(3, -3); err != nil {
		t.Fatalf("Put2f: %v", err)
	}
	if int8(data[0]) != 127 || int8(data[1]) != -127 {
		t.Errorf("data = (%d, %d), want (127, -127)", int8(data[0]), int8(data[1]))
	}
	if x, y := c.Get2f(); x != 1 || y != -1 {
		t.Errorf("Get2f() = (%v, %v), want (1, -1)", x, y)
	}
}

func TestFloatRoundTripAllFormats(t *testing.T) {
	area := mustArea(t, 0, 0, 2, 2)
	for _, f := range format.Values() {
		c, ok := codecFor(f)
		if !ok {
			t.Fatalf("no codec for %v", f)
		}
		if checkKind(c, kindFloat) != nil {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			var in []float64
			switch c.enc {
			case format.EncodingFloat:
				in = []float64{0.5, -2, 0.25, 1}
			case format.EncodingSignedNormalized:
				in = []float64{-1, 1, 0, 1}
			default:
				in = []float64{1, 0, 1, 0}
			}
			in = in[:c.count]

			cur, err := NewFloatN(buffer(f, 2, 2), f, area, area)
			if err != nil {
				t.Fatalf("NewFloatN: %v", err)
			}
			for ; cur.IsValid(); cur.Next() {
				if err := cur.Put(in...); err != nil {
					t.Fatalf("Put at (%d, %d): %v", cur.X(), cur.Y(), err)
				}
			}
			cur.SeekTo(1, 1)
			got := cur.Get(nil)
			if len(got) != len(in) {
				t.Fatalf("Get returned %d values, want %d", len(got), len(in))
			}
			for i := range in {
				if math.Abs(got[i]-in[i]) > 1e-6 {
					t.Errorf("component %d = %v, want %v", i, got[i], in[i])
				}
			}
		})
	}
}

func TestFloatOnIntegerFormats(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)

	t.Run("R16I", func(t *testing.T) {
		data := buffer(format.R16I, 1, 1)
		fc, err := NewFloat1(data, format.R16I, area, area)
		if err != nil {
			t.Fatalf("NewFloat1: %v", err)
		}
		ic, err := NewInt1(data, format.R16I, area, area)
		if err != nil {
			t.Fatalf("NewInt1: %v", err)
		}
		tests := []struct {
			raw int64
			f   float64
		}{
			{0x7fff, 1},
			{-0x7fff, -1},
			{-0x8000, -1},
			{0, 0},
		}
		for _, tt := range tests {
			if err := ic.Put1i(tt.raw); err != nil {
				t.Fatalf("Put1i: %v", err)
			}
			if got := fc.Get1f(); got != tt.f {
				t.Errorf("raw %#x: Get1f() = %v, want %v", tt.raw, got, tt.f)
			}
		}
		if err := fc.Put1f(1); err != nil {
			t.Fatalf("Put1f: %v", err)
		}
		if got := ic.Get1i(); got != 0x7fff {
			t.Errorf("Put1f(1) stored %#x, want 0x7fff", got)
		}
		if err := fc.Put1f(-1); err != nil {
			t.Fatalf("Put1f: %v", err)
		}
		if got := ic.Get1i(); got != -0x7fff {
			t.Errorf("Put1f(-1) stored %d, want %d", got, -0x7fff)
		}
	})

	t.Run("RGBA8U", func(t *testing.T) {
		data := buffer(format.RGBA8U, 1, 1)
		c, err := NewFloat4(data, format.RGBA8U, area, area)
		if err != nil {
			t.Fatalf("NewFloat4: %v", err)
		}
		if err := c.Put4f(1, 0, 1, 0); err != nil {
			t.Fatalf("Put4f: %v", err)
		}
		if diff := cmp.Diff([]byte{0xFF, 0, 0xFF, 0}, data); diff != "" {
			t.Errorf("data mismatch (-want +got):\n%s", diff)
		}
		if r, g, b, a := c.Get4f(); r != 1 || g != 0 || b != 1 || a != 0 {
			t.Errorf("Get4f() = (%v, %v, %v, %v), want (1, 0, 1, 0)", r, g, b, a)
		}
	})
}

func TestIntRoundTripAllFormats(t *testing.T) {
	for _, f := range format.Values() {
		c, _ := codecFor(f)
		if c.enc != format.EncodingSignedInt && c.enc != format.EncodingUnsignedInt {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			in := []int64{1, 2, 3, 4}
			if c.enc == format.EncodingSignedInt {
				in = []int64{-1, 2, -3, 4}
			}
			px := buffer(f, 1, 1)
			for i := range c.count {
				c.putInt(px, i, in[i])
			}
			for i := range c.count {
				if got := c.getInt(px, i); got != in[i] {
					t.Errorf("component %d = %d, want %d", i, got, in[i])
				}
			}
		})
	}
}

func TestIntTruncatesToWidth(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.R16I, 1, 1)
	c, err := NewInt1(data, format.R16I, area, area)
	if err != nil {
		t.Fatalf("NewInt1: %v", err)
	}
	if err := c.Put1i(0x18000); err != nil {
		t.Fatalf("Put1i: %v", err)
	}
	if got := c.Get1i(); got != -0x8000 {
		t.Errorf("Get1i() = %d, want %d", got, -0x8000)
	}
}

func TestHalfFloat(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	data := buffer(format.R16F, 1, 1)
	c, err := NewFloat1(data, format.R16F, area, area)
	if err != nil {
		t.Fatalf("NewFloat1: %v", err)
	}
	if err := c.Put1f(1); err != nil {
		t.Fatalf("Put1f: %v", err)
	}
	if got := binary.NativeEndian.Uint16(data); got != 0x3C00 {
		t.Errorf("bits = %#x, want 0x3c00", got)
	}
}

func TestFloatNArity(t *testing.T) {
	area := mustArea(t, 0, 0, 1, 1)
	c, err := NewFloatN(buffer(format.RGB16F, 1, 1), format.RGB16F, area, area)
	if err != nil {
		t.Fatalf("NewFloatN: %v", err)
	}
	if err := c.Put(1, 2); !errors.Is(err, texel.ErrComponentCountMismatch) {
		t.Errorf("Put with 2 values = %v, want ErrComponentCountMismatch", err)
	}
}

func BenchmarkFloat4Fill(b *testing.B) {
	area, _ := region.AreaFromSize(256, 256)
	data := buffer(format.RGBA8, 256, 256)
	c, err := NewFloat4(data, format.RGBA8, area, area)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		for c.SeekTo(0, 0); c.IsValid(); c.Next() {
			_ = c.Put4f(1, 0.5, 0.25, 1)
		}
	}
}
