// Package format is the closed catalog of texel formats understood by
// texel, with the static metadata needed to encode them.
//
// Every query over Format is answered from tables indexed by the format
// value. The tables are sized by formatCount, so a format added without a
// table entry shows up as a zero entry in the package tests.
package format

import "strings"

// Format identifies a texel storage format.
type Format uint8

const (
	// Depth16 is a 16-bit unsigned normalized depth component.
	Depth16 Format = iota

	// Depth24 is a 24-bit unsigned normalized depth component stored in
	// the high 24 bits of a 32-bit word.
	Depth24

	// Depth24Stencil8 packs 24 bits of depth and 8 bits of stencil into
	// one 32-bit word.
	Depth24Stencil8

	// Depth32F is a 32-bit floating-point depth component.
	Depth32F

	// R8 is one 8-bit unsigned normalized component.
	R8
	// R8I is one 8-bit signed integer component.
	R8I
	// R8U is one 8-bit unsigned integer component.
	R8U
	// R8S is one 8-bit signed normalized component.
	R8S
	// R16 is one 16-bit unsigned normalized component.
	R16
	// R16F is one half-precision floating-point component.
	R16F
	// R16I is one 16-bit signed integer component.
	R16I
	// R16U is one 16-bit unsigned integer component.
	R16U
	// R16S is one 16-bit signed normalized component.
	R16S
	// R32F is one single-precision floating-point component.
	R32F
	// R32I is one 32-bit signed integer component.
	R32I
	// R32U is one 32-bit unsigned integer component.
	R32U

	// RG8 is two 8-bit unsigned normalized components.
	RG8
	// RG8I is two 8-bit signed integer components.
	RG8I
	// RG8U is two 8-bit unsigned integer components.
	RG8U
	// RG8S is two 8-bit signed normalized components.
	RG8S
	// RG16 is two 16-bit unsigned normalized components.
	RG16
	// RG16F is two half-precision floating-point components.
	RG16F
	// RG16I is two 16-bit signed integer components.
	RG16I
	// RG16U is two 16-bit unsigned integer components.
	RG16U
	// RG16S is two 16-bit signed normalized components.
	RG16S
	// RG32F is two single-precision floating-point components.
	RG32F
	// RG32I is two 32-bit signed integer components.
	RG32I
	// RG32U is two 32-bit unsigned integer components.
	RG32U

	// RGB8 is three 8-bit unsigned normalized components.
	RGB8
	// RGB8I is three 8-bit signed integer components.
	RGB8I
	// RGB8U is three 8-bit unsigned integer components.
	RGB8U
	// RGB8S is three 8-bit signed normalized components.
	RGB8S
	// RGB16 is three 16-bit unsigned normalized components.
	RGB16
	// RGB16F is three half-precision floating-point components.
	RGB16F
	// RGB16I is three 16-bit signed integer components.
	RGB16I
	// RGB16U is three 16-bit unsigned integer components.
	RGB16U
	// RGB16S is three 16-bit signed normalized components.
	RGB16S
	// RGB32F is three single-precision floating-point components.
	RGB32F
	// RGB32I is three 32-bit signed integer components.
	RGB32I
	// RGB32U is three 32-bit unsigned integer components.
	RGB32U
	// RGB565 packs 5, 6 and 5 bit unsigned normalized components into a
	// 16-bit word, red in the most significant bits.
	RGB565

	// RGBA8 is four 8-bit unsigned normalized components.
	RGBA8
	// RGBA8I is four 8-bit signed integer components.
	RGBA8I
	// RGBA8U is four 8-bit unsigned integer components.
	RGBA8U
	// RGBA8S is four 8-bit signed normalized components.
	RGBA8S
	// RGBA16 is four 16-bit unsigned normalized components.
	RGBA16
	// RGBA16F is four half-precision floating-point components.
	RGBA16F
	// RGBA16I is four 16-bit signed integer components.
	RGBA16I
	// RGBA16U is four 16-bit unsigned integer components.
	RGBA16U
	// RGBA16S is four 16-bit signed normalized components.
	RGBA16S
	// RGBA32F is four single-precision floating-point components.
	RGBA32F
	// RGBA32I is four 32-bit signed integer components.
	RGBA32I
	// RGBA32U is four 32-bit unsigned integer components.
	RGBA32U
	// RGBA4444 packs four 4-bit unsigned normalized components into a
	// 16-bit word.
	RGBA4444
	// RGBA5551 packs 5, 5, 5 and 1 bit unsigned normalized components into
	// a 16-bit word.
	RGBA5551
	// RGBA1010102 packs 10, 10, 10 and 2 bit unsigned normalized components
	// into a 32-bit word.
	RGBA1010102

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Adding or removing a format breaks one of these declarations until the
// tables and the tests are revisited.
var (
	_ [56 - formatCount]struct{}
	_ [formatCount - 56]struct{}
)

// Info contains the static metadata of a format.
type Info struct {
	// Name is the canonical name returned by Format.String.
	Name string

	// Components is the number of components per texel (1 to 4).
	Components int

	// BytesPerPixel is the storage size of one texel.
	BytesPerPixel int

	// PixelType is the storage type of the components.
	PixelType PixelType

	// Encoding is how component values map to stored bits.
	Encoding Encoding

	// Bits holds the width in bits of each component.
	Bits [4]uint8

	// Shifts holds the position of the least significant bit of each
	// component within its storage word.
	Shifts [4]uint8

	// Packed reports whether all components share a single storage word.
	Packed bool

	// Float reports whether components are floating-point values.
	Float bool

	// DepthBits is the width of the depth component, or zero.
	DepthBits int

	// StencilBits is the width of the stencil component, or zero.
	StencilBits int
}

func unpacked(name string, n int, pt PixelType, enc Encoding) Info {
	w := pt.WordBytes()
	info := Info{
		Name:          name,
		Components:    n,
		BytesPerPixel: n * w,
		PixelType:     pt,
		Encoding:      enc,
		Float:         enc == EncodingFloat,
	}
	for i := range n {
		info.Bits[i] = uint8(8 * w)
	}
	return info
}

// packed lays components out from the most significant bit downwards, in
// the order given.
func packed(name string, pt PixelType, enc Encoding, bits ...uint8) Info {
	w := pt.WordBytes()
	info := Info{
		Name:          name,
		Components:    len(bits),
		BytesPerPixel: w,
		PixelType:     pt,
		Encoding:      enc,
		Packed:        true,
	}
	shift := 8 * w
	for i, b := range bits {
		shift -= int(b)
		info.Bits[i] = b
		info.Shifts[i] = uint8(shift)
	}
	return info
}

func depth(info Info, depthBits, stencilBits int) Info {
	info.DepthBits = depthBits
	info.StencilBits = stencilBits
	return info
}

const (
	ui = EncodingUnsignedInt
	si = EncodingSignedInt
	un = EncodingUnsignedNormalized
	sn = EncodingSignedNormalized
	fl = EncodingFloat
)

var infoTable = [formatCount]Info{
	Depth16: depth(unpacked("Depth16", 1, PixelUnsignedShort, un), 16, 0),
	Depth24: depth(Info{
		Name:          "Depth24",
		Components:    1,
		BytesPerPixel: 4,
		PixelType:     PixelUnsignedInt,
		Encoding:      un,
		Bits:          [4]uint8{24},
		Shifts:        [4]uint8{8},
	}, 24, 0),
	Depth24Stencil8: depth(packed("Depth24Stencil8", PixelPacked248, EncodingDepthStencil, 24, 8), 24, 8),
	Depth32F:        depth(unpacked("Depth32F", 1, PixelFloat, fl), 32, 0),

	R8:   unpacked("R8", 1, PixelUnsignedByte, un),
	R8I:  unpacked("R8I", 1, PixelByte, si),
	R8U:  unpacked("R8U", 1, PixelUnsignedByte, ui),
	R8S:  unpacked("R8S", 1, PixelByte, sn),
	R16:  unpacked("R16", 1, PixelUnsignedShort, un),
	R16F: unpacked("R16F", 1, PixelHalfFloat, fl),
	R16I: unpacked("R16I", 1, PixelShort, si),
	R16U: unpacked("R16U", 1, PixelUnsignedShort, ui),
	R16S: unpacked("R16S", 1, PixelShort, sn),
	R32F: unpacked("R32F", 1, PixelFloat, fl),
	R32I: unpacked("R32I", 1, PixelInt, si),
	R32U: unpacked("R32U", 1, PixelUnsignedInt, ui),

	RG8:   unpacked("RG8", 2, PixelUnsignedByte, un),
	RG8I:  unpacked("RG8I", 2, PixelByte, si),
	RG8U:  unpacked("RG8U", 2, PixelUnsignedByte, ui),
	RG8S:  unpacked("RG8S", 2, PixelByte, sn),
	RG16:  unpacked("RG16", 2, PixelUnsignedShort, un),
	RG16F: unpacked("RG16F", 2, PixelHalfFloat, fl),
	RG16I: unpacked("RG16I", 2, PixelShort, si),
	RG16U: unpacked("RG16U", 2, PixelUnsignedShort, ui),
	RG16S: unpacked("RG16S", 2, PixelShort, sn),
	RG32F: unpacked("RG32F", 2, PixelFloat, fl),
	RG32I: unpacked("RG32I", 2, PixelInt, si),
	RG32U: unpacked("RG32U", 2, PixelUnsignedInt, ui),

	RGB8:   unpacked("RGB8", 3, PixelUnsignedByte, un),
	RGB8I:  unpacked("RGB8I", 3, PixelByte, si),
	RGB8U:  unpacked("RGB8U", 3, PixelUnsignedByte, ui),
	RGB8S:  unpacked("RGB8S", 3, PixelByte, sn),
	RGB16:  unpacked("RGB16", 3, PixelUnsignedShort, un),
	RGB16F: unpacked("RGB16F", 3, PixelHalfFloat, fl),
	RGB16I: unpacked("RGB16I", 3, PixelShort, si),
	RGB16U: unpacked("RGB16U", 3, PixelUnsignedShort, ui),
	RGB16S: unpacked("RGB16S", 3, PixelShort, sn),
	RGB32F: unpacked("RGB32F", 3, PixelFloat, fl),
	RGB32I: unpacked("RGB32I", 3, PixelInt, si),
	RGB32U: unpacked("RGB32U", 3, PixelUnsignedInt, ui),
	RGB565: packed("RGB565", PixelPacked565, un, 5, 6, 5),

	RGBA8:       unpacked("RGBA8", 4, PixelUnsignedByte, un),
	RGBA8I:      unpacked("RGBA8I", 4, PixelByte, si),
	RGBA8U:      unpacked("RGBA8U", 4, PixelUnsignedByte, ui),
	RGBA8S:      unpacked("RGBA8S", 4, PixelByte, sn),
	RGBA16:      unpacked("RGBA16", 4, PixelUnsignedShort, un),
	RGBA16F:     unpacked("RGBA16F", 4, PixelHalfFloat, fl),
	RGBA16I:     unpacked("RGBA16I", 4, PixelShort, si),
	RGBA16U:     unpacked("RGBA16U", 4, PixelUnsignedShort, ui),
	RGBA16S:     unpacked("RGBA16S", 4, PixelShort, sn),
	RGBA32F:     unpacked("RGBA32F", 4, PixelFloat, fl),
	RGBA32I:     unpacked("RGBA32I", 4, PixelInt, si),
	RGBA32U:     unpacked("RGBA32U", 4, PixelUnsignedInt, ui),
	RGBA4444:    packed("RGBA4444", PixelPacked4444, un, 4, 4, 4, 4),
	RGBA5551:    packed("RGBA5551", PixelPacked5551, un, 5, 5, 5, 1),
	RGBA1010102: packed("RGBA1010102", PixelPacked1010102, un, 10, 10, 10, 2),
}

// Info returns the metadata of the format, or the zero Info for an
// unknown format.
func (f Format) Info() Info {
	if f >= formatCount {
		return Info{}
	}
	return infoTable[f]
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ComponentCount returns the number of components per texel.
func (f Format) ComponentCount() int {
	return f.Info().Components
}

// BytesPerPixel returns the storage size of one texel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsFloatingPoint returns true if components are floating-point values.
func (f Format) IsFloatingPoint() bool {
	return f.Info().Float
}

// IsPacked returns true if all components share one storage word.
func (f Format) IsPacked() bool {
	return f.Info().Packed
}

// PixelType returns the storage type of the components.
func (f Format) PixelType() PixelType {
	return f.Info().PixelType
}

// Encoding returns how component values map to stored bits.
func (f Format) Encoding() Encoding {
	return f.Info().Encoding
}

// ComponentBits returns the width in bits of component i, or zero if the
// format has no such component.
func (f Format) ComponentBits(i int) int {
	info := f.Info()
	if i < 0 || i >= info.Components {
		return 0
	}
	return int(info.Bits[i])
}

// DepthBits returns the width of the depth component, or zero.
func (f Format) DepthBits() int {
	return f.Info().DepthBits
}

// StencilBits returns the width of the stencil component, or zero.
func (f Format) StencilBits() int {
	return f.Info().StencilBits
}

// RowBytes returns the number of bytes in a tightly packed row.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes returns the number of bytes in a tightly packed image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return infoTable[f].Name
}

// Values returns every format in declaration order.
func Values() []Format {
	out := make([]Format, 0, formatCount)
	for f := range formatCount {
		out = append(out, f)
	}
	return out
}

// Parse returns the format whose name matches s, ignoring case.
func Parse(s string) (Format, bool) {
	for f := range formatCount {
		if strings.EqualFold(infoTable[f].Name, s) {
			return f, true
		}
	}
	return 0, false
}

// WithComponents returns the formats with exactly n components, in
// declaration order.
func WithComponents(n int) []Format {
	var out []Format
	for f := range formatCount {
		if infoTable[f].Components == n {
			out = append(out, f)
		}
	}
	return out
}
