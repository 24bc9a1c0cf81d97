package transfer

import (
	"fmt"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/cursor"
	"github.com/gogpu/texel/layout"
	"github.com/gogpu/texel/region"
)

// elementRange resolves the target range of a 1D update over count
// elements.
func elementRange(count int, o options) (region.Range, error) {
	full, err := region.RangeFromSize(count)
	if err != nil {
		return region.Range{}, fmt.Errorf("transfer: element count: %w", err)
	}
	target := full
	if o.rng != nil {
		target = *o.rng
	}
	if !target.IsValid() {
		return region.Range{}, fmt.Errorf("transfer: inverted target range %v: %w", target, texel.ErrRange)
	}
	if !target.IncludedIn(full) {
		return region.Range{}, fmt.Errorf("transfer: target range %v is not included in %v: %w",
			target, full, texel.ErrRange)
	}
	return target, nil
}

// ArrayUpdate is a buffer replacing a range of records in a vertex buffer.
type ArrayUpdate struct {
	layout   *layout.BufferLayout
	elements int
	source   region.Range
	target   region.Range
	data     []byte
	pool     *Pool
}

// NewArray returns an update for a vertex buffer of the given number of
// records laid out by l. Every record is replaced unless WithRange selects a
// sub-range. It fails with texel.ErrRange if elements is less than one or
// the sub-range is inverted or not included in [0, elements-1].
func NewArray(l *layout.BufferLayout, elements int, opts ...Option) (*ArrayUpdate, error) {
	o := buildOptions(opts)
	target, err := elementRange(elements, o)
	if err != nil {
		return nil, err
	}
	u := &ArrayUpdate{
		layout:   l,
		elements: elements,
		source:   target.ZeroBased(),
		target:   target,
		pool:     o.pool,
	}
	u.data = alloc(o.pool, target.Interval()*l.Stride())

	texel.Logger().Debug("transfer: array update",
		"elements", elements,
		"stride", l.Stride(),
		"target", target,
		"bytes", len(u.data))
	return u, nil
}

// Layout returns the record layout.
func (u *ArrayUpdate) Layout() *layout.BufferLayout { return u.layout }

// Elements returns the number of records in the whole buffer.
func (u *ArrayUpdate) Elements() int { return u.elements }

// Data returns the update buffer.
func (u *ArrayUpdate) Data() []byte { return u.data }

// Source returns the zero-based range describing the update buffer.
func (u *ArrayUpdate) Source() region.Range { return u.source }

// Target returns the range of records being replaced.
func (u *ArrayUpdate) Target() region.Range { return u.target }

// TargetOffset returns the byte offset of the first replaced record in the
// GPU buffer.
func (u *ArrayUpdate) TargetOffset() int {
	return u.target.Lower * u.layout.Stride()
}

// Attribute returns a cursor over attribute name of every record in the
// update.
func (u *ArrayUpdate) Attribute(name string) (*cursor.AttributeCursor, error) {
	return cursor.NewAttribute(u.data, u.layout, name, u.source, u.target)
}

// Release returns a pooled buffer to its pool. The update must not be used
// afterwards.
func (u *ArrayUpdate) Release() {
	if u.pool != nil && u.data != nil {
		u.pool.Put(u.data)
	}
	u.data = nil
}
