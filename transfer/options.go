package transfer

import "github.com/gogpu/texel/region"

// Option configures an update during creation.
//
// Example:
//
//	sub, _ := region.AreaAt(16, 16, 32, 32)
//	up, err := transfer.NewTexture(format.RGBA8, extent, transfer.WithArea(sub))
type Option func(*options)

// options holds optional configuration shared by all update builders.
type options struct {
	area *region.Area
	rng  *region.Range
	pool *Pool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithArea restricts a texture update to a sub-area of the texture extent.
// Without it the whole extent is replaced. Ignored by array and index
// updates.
func WithArea(a region.Area) Option {
	return func(o *options) {
		o.area = &a
	}
}

// WithRange restricts an array or index update to a sub-range of the
// buffer's elements. Without it every element is replaced. Ignored by
// texture updates.
func WithRange(r region.Range) Option {
	return func(o *options) {
		o.rng = &r
	}
}

// WithPool allocates the update's buffer from p. Call Release on the
// update to hand the buffer back.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}
