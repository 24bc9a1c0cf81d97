package format

// PixelType is the storage type of the components of a format as seen by
// the native upload call.
type PixelType uint8

const (
	// PixelByte stores each component as a signed 8-bit integer.
	PixelByte PixelType = iota

	// PixelUnsignedByte stores each component as an unsigned 8-bit integer.
	PixelUnsignedByte

	// PixelShort stores each component as a signed 16-bit integer.
	PixelShort

	// PixelUnsignedShort stores each component as an unsigned 16-bit integer.
	PixelUnsignedShort

	// PixelInt stores each component as a signed 32-bit integer.
	PixelInt

	// PixelUnsignedInt stores each component as an unsigned 32-bit integer.
	PixelUnsignedInt

	// PixelHalfFloat stores each component as an IEEE-754 binary16 value.
	PixelHalfFloat

	// PixelFloat stores each component as an IEEE-754 binary32 value.
	PixelFloat

	// PixelPacked565 packs R5 G6 B5 into one 16-bit word.
	PixelPacked565

	// PixelPacked4444 packs R4 G4 B4 A4 into one 16-bit word.
	PixelPacked4444

	// PixelPacked5551 packs R5 G5 B5 A1 into one 16-bit word.
	PixelPacked5551

	// PixelPacked1010102 packs R10 G10 B10 A2 into one 32-bit word.
	PixelPacked1010102

	// PixelPacked248 packs a 24-bit depth and an 8-bit stencil value into
	// one 32-bit word.
	PixelPacked248

	pixelTypeCount
)

var pixelTypeNames = [pixelTypeCount]string{
	PixelByte:          "Byte",
	PixelUnsignedByte:  "UnsignedByte",
	PixelShort:         "Short",
	PixelUnsignedShort: "UnsignedShort",
	PixelInt:           "Int",
	PixelUnsignedInt:   "UnsignedInt",
	PixelHalfFloat:     "HalfFloat",
	PixelFloat:         "Float",
	PixelPacked565:     "Packed565",
	PixelPacked4444:    "Packed4444",
	PixelPacked5551:    "Packed5551",
	PixelPacked1010102: "Packed1010102",
	PixelPacked248:     "Packed248",
}

// WordBytes returns the size of one storage word: a component for
// unpacked types, the whole pixel for packed ones.
func (t PixelType) WordBytes() int {
	switch t {
	case PixelByte, PixelUnsignedByte:
		return 1
	case PixelShort, PixelUnsignedShort, PixelHalfFloat,
		PixelPacked565, PixelPacked4444, PixelPacked5551:
		return 2
	case PixelInt, PixelUnsignedInt, PixelFloat,
		PixelPacked1010102, PixelPacked248:
		return 4
	default:
		return 0
	}
}

// IsPacked reports whether several components share one storage word.
func (t PixelType) IsPacked() bool {
	switch t {
	case PixelPacked565, PixelPacked4444, PixelPacked5551,
		PixelPacked1010102, PixelPacked248:
		return true
	default:
		return false
	}
}

// String returns the name of the pixel type.
func (t PixelType) String() string {
	if t >= pixelTypeCount {
		return "Unknown"
	}
	return pixelTypeNames[t]
}

// Encoding classifies how component values map to stored bits.
type Encoding uint8

const (
	// EncodingUnsignedInt stores unsigned integers without conversion.
	EncodingUnsignedInt Encoding = iota

	// EncodingSignedInt stores signed integers without conversion.
	EncodingSignedInt

	// EncodingUnsignedNormalized stores values in [0, 1] as
	// trunc(c * (2^b - 1)).
	EncodingUnsignedNormalized

	// EncodingSignedNormalized stores values in [-1, 1] as
	// trunc(clamp(c, -1, 1) * (2^(b-1) - 1)).
	EncodingSignedNormalized

	// EncodingFloat stores IEEE-754 values of the component width.
	EncodingFloat

	// EncodingDepthStencil stores one packed depth/stencil word that is
	// only addressable as a whole.
	EncodingDepthStencil

	encodingCount
)

var encodingNames = [encodingCount]string{
	EncodingUnsignedInt:        "UnsignedInt",
	EncodingSignedInt:          "SignedInt",
	EncodingUnsignedNormalized: "UnsignedNormalized",
	EncodingSignedNormalized:   "SignedNormalized",
	EncodingFloat:              "Float",
	EncodingDepthStencil:       "DepthStencil",
}

// String returns the name of the encoding.
func (e Encoding) String() string {
	if e >= encodingCount {
		return "Unknown"
	}
	return encodingNames[e]
}

// IsNormalized reports whether the encoding maps integers onto [0, 1] or
// [-1, 1].
func (e Encoding) IsNormalized() bool {
	return e == EncodingUnsignedNormalized || e == EncodingSignedNormalized
}

// IsInteger reports whether the encoding stores raw integers.
func (e Encoding) IsInteger() bool {
	return e == EncodingUnsignedInt || e == EncodingSignedInt
}
