// Package region describes inclusive integer ranges and the 2D areas built
// from them.
//
// Ranges and areas are small immutable values. They describe both the full
// extent of a texture or buffer and the sub-area being replaced.
package region

import (
	"fmt"
	"image"

	"github.com/gogpu/texel"
)

// Range is an inclusive integer range [Lower, Upper].
type Range struct {
	Lower int
	Upper int
}

// NewRange returns the range [lower, upper]. It fails with texel.ErrRange
// if upper < lower.
func NewRange(lower, upper int) (Range, error) {
	if upper < lower {
		return Range{}, fmt.Errorf("region: upper %d < lower %d: %w", upper, lower, texel.ErrRange)
	}
	return Range{Lower: lower, Upper: upper}, nil
}

// RangeFromSize returns the zero-based range [0, n-1]. It fails with
// texel.ErrRange if n < 1.
func RangeFromSize(n int) (Range, error) {
	if n < 1 {
		return Range{}, fmt.Errorf("region: size %d < 1: %w", n, texel.ErrRange)
	}
	return Range{Lower: 0, Upper: n - 1}, nil
}

// Interval returns the number of integers in the range.
func (r Range) Interval() int {
	return r.Upper - r.Lower + 1
}

// IsValid reports whether Upper >= Lower. Ranges built with NewRange are
// always valid; literals may not be.
func (r Range) IsValid() bool {
	return r.Upper >= r.Lower
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Lower && v <= r.Upper
}

// IncludedIn reports whether r is a subrange of o.
func (r Range) IncludedIn(o Range) bool {
	return r.Lower >= o.Lower && r.Upper <= o.Upper
}

// ZeroBased returns the range of the same interval starting at zero.
func (r Range) ZeroBased() Range {
	return Range{Lower: 0, Upper: r.Upper - r.Lower}
}

// IsZeroBased reports whether the range starts at zero.
func (r Range) IsZeroBased() bool {
	return r.Lower == 0
}

// String returns the range as "[lower, upper]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lower, r.Upper)
}

// Area is a 2D region formed by an inclusive range on each axis.
type Area struct {
	X Range
	Y Range
}

// NewArea returns the area spanning x and y.
func NewArea(x, y Range) Area {
	return Area{X: x, Y: y}
}

// AreaFromSize returns the zero-based area of the given width and height.
// It fails with texel.ErrRange if either is less than one.
func AreaFromSize(width, height int) (Area, error) {
	x, err := RangeFromSize(width)
	if err != nil {
		return Area{}, fmt.Errorf("region: width: %w", err)
	}
	y, err := RangeFromSize(height)
	if err != nil {
		return Area{}, fmt.Errorf("region: height: %w", err)
	}
	return Area{X: x, Y: y}, nil
}

// AreaAt returns the area of the given size whose lower corner is (x, y).
func AreaAt(x, y, width, height int) (Area, error) {
	a, err := AreaFromSize(width, height)
	if err != nil {
		return Area{}, err
	}
	return a.Translate(x, y), nil
}

// Width returns X.Upper - X.Lower + 1.
func (a Area) Width() int {
	return a.X.Interval()
}

// Height returns Y.Upper - Y.Lower + 1.
func (a Area) Height() int {
	return a.Y.Interval()
}

// IsValid reports whether both axes are valid ranges.
func (a Area) IsValid() bool {
	return a.X.IsValid() && a.Y.IsValid()
}

// Contains reports whether (x, y) lies within the area.
func (a Area) Contains(x, y int) bool {
	return a.X.Contains(x) && a.Y.Contains(y)
}

// IncludedIn reports whether both axes of a are subranges of o.
func (a Area) IncludedIn(o Area) bool {
	return a.X.IncludedIn(o.X) && a.Y.IncludedIn(o.Y)
}

// ZeroBased returns the area of the same size with its lower corner at the
// origin.
func (a Area) ZeroBased() Area {
	return Area{X: a.X.ZeroBased(), Y: a.Y.ZeroBased()}
}

// IsZeroBased reports whether the lower corner of the area is the origin.
func (a Area) IsZeroBased() bool {
	return a.X.IsZeroBased() && a.Y.IsZeroBased()
}

// SameSize reports whether a and o have equal width and height.
func (a Area) SameSize(o Area) bool {
	return a.Width() == o.Width() && a.Height() == o.Height()
}

// Translate returns the area moved by (dx, dy).
func (a Area) Translate(dx, dy int) Area {
	return Area{
		X: Range{Lower: a.X.Lower + dx, Upper: a.X.Upper + dx},
		Y: Range{Lower: a.Y.Lower + dy, Upper: a.Y.Upper + dy},
	}
}

// Rectangle returns the area as a half-open image.Rectangle.
func (a Area) Rectangle() image.Rectangle {
	return image.Rect(a.X.Lower, a.Y.Lower, a.X.Upper+1, a.Y.Upper+1)
}

// FromRectangle returns the inclusive area covered by a non-empty
// rectangle.
func FromRectangle(r image.Rectangle) (Area, error) {
	if r.Empty() {
		return Area{}, fmt.Errorf("region: empty rectangle %v: %w", r, texel.ErrRange)
	}
	return Area{
		X: Range{Lower: r.Min.X, Upper: r.Max.X - 1},
		Y: Range{Lower: r.Min.Y, Upper: r.Max.Y - 1},
	}, nil
}

// String returns the area as "x[lower, upper] y[lower, upper]".
func (a Area) String() string {
	return fmt.Sprintf("x%v y%v", a.X, a.Y)
}
