// Package fixedpoint converts between floating-point values and normalized
// fixed-point integers using the graphics-standard equations.
//
// An unsigned normalized value of b bits represents c = v / (2^b - 1), so
// the full integer range maps onto [0, 1]. A signed normalized value
// represents c = max(v / (2^(b-1) - 1), -1) and covers [-1, 1].
//
// Each equation is offered for 32-bit (int32) and 64-bit (int64) backing
// words, and for float32 and float64 values. The bit width must satisfy
// 2 <= b < 31 for int32 words and 2 <= b < 63 for int64 words; other widths
// fail with texel.ErrRange.
//
// The unsigned forward conversion does not clamp its input to [0, 1] while
// the signed one clamps to [-1, 1]. Results that do not fit the backing word
// saturate to its bounds.
package fixedpoint

import (
	"fmt"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/internal/fixed"
)

const (
	// MaxBits32 is the exclusive upper bound on b for int32 words.
	MaxBits32 = 31

	// MaxBits64 is the exclusive upper bound on b for int64 words.
	MaxBits64 = 63

	// MinBits is the smallest accepted bit width.
	MinBits = 2
)

func checkBits(b, limit int) error {
	if b < MinBits || b >= limit {
		return fmt.Errorf("fixedpoint: bit count %d not in [%d, %d): %w", b, MinBits, limit, texel.ErrRange)
	}
	return nil
}

// FloatToUnsignedNormalized returns trunc(c * (2^b - 1)) in an int32.
func FloatToUnsignedNormalized(c float32, b int) (int32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.ToUnsigned[int32](c, b), nil
}

// DoubleToUnsignedNormalized returns trunc(c * (2^b - 1)) in an int32.
func DoubleToUnsignedNormalized(c float64, b int) (int32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.ToUnsigned[int32](c, b), nil
}

// FloatToUnsignedNormalizedLong returns trunc(c * (2^b - 1)) in an int64.
func FloatToUnsignedNormalizedLong(c float32, b int) (int64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.ToUnsigned[int64](c, b), nil
}

// DoubleToUnsignedNormalizedLong returns trunc(c * (2^b - 1)) in an int64.
func DoubleToUnsignedNormalizedLong(c float64, b int) (int64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.ToUnsigned[int64](c, b), nil
}

// FloatToSignedNormalized returns trunc(clamp(c, -1, 1) * (2^(b-1) - 1))
// in an int32.
func FloatToSignedNormalized(c float32, b int) (int32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.ToSigned[int32](c, b), nil
}

// DoubleToSignedNormalized returns trunc(clamp(c, -1, 1) * (2^(b-1) - 1))
// in an int32.
func DoubleToSignedNormalized(c float64, b int) (int32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.ToSigned[int32](c, b), nil
}

// FloatToSignedNormalizedLong is FloatToSignedNormalized for int64 words.
func FloatToSignedNormalizedLong(c float32, b int) (int64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.ToSigned[int64](c, b), nil
}

// DoubleToSignedNormalizedLong is DoubleToSignedNormalized for int64 words.
func DoubleToSignedNormalizedLong(c float64, b int) (int64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.ToSigned[int64](c, b), nil
}

// UnsignedNormalizedFixedToFloat returns v / (2^b - 1).
func UnsignedNormalizedFixedToFloat(b int, v int32) (float32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.FromUnsigned[float32](v, b), nil
}

// UnsignedNormalizedFixedToDouble returns v / (2^b - 1).
func UnsignedNormalizedFixedToDouble(b int, v int32) (float64, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.FromUnsigned[float64](v, b), nil
}

// UnsignedNormalizedFixedToFloatLong returns v / (2^b - 1) for an int64 word.
func UnsignedNormalizedFixedToFloatLong(b int, v int64) (float32, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.FromUnsigned[float32](v, b), nil
}

// UnsignedNormalizedFixedToDoubleLong returns v / (2^b - 1) for an int64 word.
func UnsignedNormalizedFixedToDoubleLong(b int, v int64) (float64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.FromUnsigned[float64](v, b), nil
}

// SignedNormalizedFixedToFloat returns max(v / (2^(b-1) - 1), -1).
func SignedNormalizedFixedToFloat(b int, v int32) (float32, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.FromSigned[float32](v, b), nil
}

// SignedNormalizedFixedToDouble returns max(v / (2^(b-1) - 1), -1).
func SignedNormalizedFixedToDouble(b int, v int32) (float64, error) {
	if err := checkBits(b, MaxBits32); err != nil {
		return 0, err
	}
	return fixed.FromSigned[float64](v, b), nil
}

// SignedNormalizedFixedToFloatLong is SignedNormalizedFixedToFloat for
// int64 words.
func SignedNormalizedFixedToFloatLong(b int, v int64) (float32, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.FromSigned[float32](v, b), nil
}

// SignedNormalizedFixedToDoubleLong is SignedNormalizedFixedToDouble for
// int64 words.
func SignedNormalizedFixedToDoubleLong(b int, v int64) (float64, error) {
	if err := checkBits(b, MaxBits64); err != nil {
		return 0, err
	}
	return fixed.FromSigned[float64](v, b), nil
}
