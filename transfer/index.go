package transfer

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/cursor"
	"github.com/gogpu/texel/layout"
	"github.com/gogpu/texel/region"
)

// IndexUpdate is a buffer replacing a range of an index buffer.
type IndexUpdate struct {
	typ    layout.ScalarType
	count  int
	source region.Range
	target region.Range
	data   []byte
	pool   *Pool
}

// NewIndices returns an update for an index buffer of count indices of type
// t. Every index is replaced unless WithRange selects a sub-range. It fails
// with texel.ErrTypeError unless t is Uint8, Uint16 or Uint32, and with
// texel.ErrRange for a bad count or sub-range.
func NewIndices(t layout.ScalarType, count int, opts ...Option) (*IndexUpdate, error) {
	switch t {
	case layout.Uint8, layout.Uint16, layout.Uint32:
	default:
		return nil, fmt.Errorf("transfer: index type %v: %w", t, texel.ErrTypeError)
	}
	o := buildOptions(opts)
	target, err := elementRange(count, o)
	if err != nil {
		return nil, err
	}
	u := &IndexUpdate{
		typ:    t,
		count:  count,
		source: target.ZeroBased(),
		target: target,
		pool:   o.pool,
	}
	u.data = alloc(o.pool, target.Interval()*t.SizeBytes())

	texel.Logger().Debug("transfer: index update",
		"type", t,
		"count", count,
		"target", target,
		"bytes", len(u.data))
	return u, nil
}

// Type returns the index type.
func (u *IndexUpdate) Type() layout.ScalarType { return u.typ }

// Count returns the number of indices in the whole buffer.
func (u *IndexUpdate) Count() int { return u.count }

// Data returns the update buffer.
func (u *IndexUpdate) Data() []byte { return u.data }

// Source returns the zero-based range describing the update buffer.
func (u *IndexUpdate) Source() region.Range { return u.source }

// Target returns the range of indices being replaced.
func (u *IndexUpdate) Target() region.Range { return u.target }

// TargetOffset returns the byte offset of the first replaced index in the
// GPU buffer.
func (u *IndexUpdate) TargetOffset() int {
	return u.target.Lower * u.typ.SizeBytes()
}

// IndexFormat returns the WebGPU index format of the buffer. WebGPU has no
// 8-bit indices, so Uint8 reports false.
func (u *IndexUpdate) IndexFormat() (gputypes.IndexFormat, bool) {
	switch u.typ {
	case layout.Uint16:
		return gputypes.IndexFormatUint16, true
	case layout.Uint32:
		return gputypes.IndexFormatUint32, true
	}
	return gputypes.IndexFormatUndefined, false
}

// Cursor returns a cursor over the indices of the update.
func (u *IndexUpdate) Cursor() (*cursor.IndexCursor, error) {
	return cursor.NewIndex(u.data, u.typ, u.source, u.target)
}

// Release returns a pooled buffer to its pool. The update must not be used
// afterwards.
func (u *IndexUpdate) Release() {
	if u.pool != nil && u.data != nil {
		u.pool.Put(u.data)
	}
	u.data = nil
}
