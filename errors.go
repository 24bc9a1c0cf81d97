package texel

import "errors"

// Sentinel errors shared by all texel packages. Callers match them with
// errors.Is; the returned errors wrap them with the offending values.
var (
	// ErrRange reports a value outside its permitted range: a fixed-point
	// bit width, a sub-area that is not contained in its extent, a cursor
	// position outside its area, or a buffer that is too small.
	ErrRange = errors.New("texel: value out of range")

	// ErrTypeError reports an operation whose kind does not match the
	// bound format or attribute type, such as an integer cursor on a
	// floating-point format.
	ErrTypeError = errors.New("texel: type error")

	// ErrComponentCountMismatch reports a cursor arity that differs from
	// the component count of its format or attribute.
	ErrComponentCountMismatch = errors.New("texel: component count mismatch")

	// ErrDuplicateAttribute reports two attributes sharing a name.
	ErrDuplicateAttribute = errors.New("texel: duplicate attribute name")

	// ErrUnknownAttribute reports a lookup of an attribute that a layout
	// does not declare.
	ErrUnknownAttribute = errors.New("texel: unknown attribute")

	// ErrIndexOutOfRange reports an element index past an attribute's
	// element count.
	ErrIndexOutOfRange = errors.New("texel: index out of range")
)
