package layout

// ScalarType is the storage type of one attribute component.
type ScalarType uint8

const (
	// Int8 is a signed 8-bit integer.
	Int8 ScalarType = iota
	// Int16 is a signed 16-bit integer.
	Int16
	// Int32 is a signed 32-bit integer.
	Int32
	// Uint8 is an unsigned 8-bit integer.
	Uint8
	// Uint16 is an unsigned 16-bit integer.
	Uint16
	// Uint32 is an unsigned 32-bit integer.
	Uint32
	// Float16 is an IEEE-754 binary16 value.
	Float16
	// Float32 is an IEEE-754 binary32 value.
	Float32

	scalarCount
)

var scalarInfo = [scalarCount]struct {
	name   string
	size   int
	float  bool
	signed bool
}{
	Int8:    {"int8", 1, false, true},
	Int16:   {"int16", 2, false, true},
	Int32:   {"int32", 4, false, true},
	Uint8:   {"uint8", 1, false, false},
	Uint16:  {"uint16", 2, false, false},
	Uint32:  {"uint32", 4, false, false},
	Float16: {"float16", 2, true, true},
	Float32: {"float32", 4, true, true},
}

// IsValid returns true if t is a known scalar type.
func (t ScalarType) IsValid() bool {
	return t < scalarCount
}

// SizeBytes returns the size of one component of type t.
func (t ScalarType) SizeBytes() int {
	if !t.IsValid() {
		return 0
	}
	return scalarInfo[t].size
}

// IsFloat returns true for the floating-point types.
func (t ScalarType) IsFloat() bool {
	return t.IsValid() && scalarInfo[t].float
}

// IsSigned returns true for the signed integer and floating-point types.
func (t ScalarType) IsSigned() bool {
	return t.IsValid() && scalarInfo[t].signed
}

// String returns the name of the type.
func (t ScalarType) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return scalarInfo[t].name
}
