// Package fixed implements the normalized fixed-point equations shared by
// the fixedpoint package and the pixel codecs.
//
// The functions here do not validate the bit width. Callers guarantee
// 1 <= b < bits(W); the pixel codecs need b = 1 for single-bit alpha fields,
// which the public API rejects.
package fixed

import (
	"math"
	"unsafe"
)

// Float is the set of floating-point types accepted by the equations.
type Float interface {
	~float32 | ~float64
}

// Word is the set of backing integer types.
type Word interface {
	~int32 | ~int64
}

// UnsignedScale returns 2^b - 1.
func UnsignedScale(b int) float64 {
	return math.Pow(2, float64(b)) - 1
}

// SignedScale returns 2^(b-1) - 1.
func SignedScale(b int) float64 {
	return math.Pow(2, float64(b-1)) - 1
}

// ToUnsigned computes trunc(c * (2^b - 1)). The input is not clamped to
// [0, 1].
func ToUnsigned[W Word, F Float](c F, b int) W {
	return truncate[W](float64(c) * UnsignedScale(b))
}

// ToSigned computes trunc(clamp(c, -1, 1) * (2^(b-1) - 1)).
func ToSigned[W Word, F Float](c F, b int) W {
	cc := math.Max(math.Min(float64(c), 1), -1)
	return truncate[W](cc * SignedScale(b))
}

// FromUnsigned computes v / (2^b - 1).
func FromUnsigned[F Float, W Word](v W, b int) F {
	return F(float64(v) / UnsignedScale(b))
}

// FromSigned computes max(v / (2^(b-1) - 1), -1).
func FromSigned[F Float, W Word](v W, b int) F {
	return F(math.Max(float64(v)/SignedScale(b), -1))
}

// truncate rounds x toward zero and converts it to W. Values outside the
// range of W saturate to its bounds and NaN becomes zero; a plain Go
// conversion would be implementation-defined for those inputs.
func truncate[W Word](x float64) W {
	if math.IsNaN(x) {
		return 0
	}
	var zero W
	if unsafe.Sizeof(zero) == 8 {
		// float64(math.MaxInt64) rounds up to 2^63, so compare with >=.
		var v int64
		switch {
		case x >= math.MaxInt64:
			v = math.MaxInt64
		case x <= math.MinInt64:
			v = math.MinInt64
		default:
			v = int64(x)
		}
		return W(v)
	}
	var v int32
	switch {
	case x >= math.MaxInt32:
		v = math.MaxInt32
	case x <= math.MinInt32:
		v = math.MinInt32
	default:
		v = int32(x)
	}
	return W(v)
}
