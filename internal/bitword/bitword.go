// Package bitword provides the fixed-width bit-vector arithmetic shared by
// the block update and query profile stages of the alignment engine.
package bitword

import (
	"math/bits"
)

// Word is the fixed-width unsigned integer that all block bit-vectors are
// defined over. W = 64, matching the reference design.
type Word = uint64

// Width is W, the number of rows represented by one Word.
const Width = 64

// HighBitMask is the word with only bit W-1 set.
const HighBitMask Word = 1 << (Width - 1)

// PopCount returns the number of set bits in w. bits.OnesCount64 is already
// lowered to the hardware POPCNT/CNT instruction by the compiler on
// architectures that have one, so no separate runtime feature gate is
// needed here.
func PopCount(w Word) int {
	return bits.OnesCount64(w)
}

// CeilDivWidth returns ceil(n / Width).
func CeilDivWidth(n int) int {
	return (n + Width - 1) / Width
}

// Signed is a constraint for signed integer types, used by the handful of
// places in the banded sweep needing abs/min/max over score deltas and
// column/row indices.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the lesser of a and b.
func Min[T Signed](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T Signed](a, b T) T {
	if a > b {
		return a
	}
	return b
}
