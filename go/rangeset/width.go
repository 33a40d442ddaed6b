package rangeset

import (
	"fmt"
	"math"
)

const (
	minInt64 = math.MinInt64
	maxInt64 = math.MaxInt64
	minInt32 = math.MinInt32
	maxInt32 = math.MaxInt32
)

// Width selects the machine integer semantics arithmetic is performed
// with. Results are truncated to the width's two's complement range.
type Width uint8

const (
	W32 Width = 32
	W64 Width = 64
)

func (w Width) String() string {
	switch w {
	case W32:
		return "int32"
	case W64:
		return "int64"
	default:
		return fmt.Sprintf("Width(%d)", uint8(w))
	}
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool { return w == W32 || w == W64 }

// Bits returns the number of bits in w.
func (w Width) Bits() int { return int(w) }

// Min returns the smallest value representable in w.
func (w Width) Min() int64 {
	if w == W32 {
		return minInt32
	}
	return minInt64
}

// Max returns the largest value representable in w.
func (w Width) Max() int64 {
	if w == W32 {
		return maxInt32
	}
	return maxInt64
}

// Full returns the set of all values representable in w.
func (w Width) Full() Set {
	if w == W32 {
		return int32Range
	}
	return int64Range
}

// Truncate converts v the way a conversion to w's integer type would.
func (w Width) Truncate(v int64) int64 {
	if w == W32 {
		return int64(int32(v))
	}
	return v
}

// additionMayOverflow reports whether a+b overflows w.
func (w Width) additionMayOverflow(a, b int64) bool {
	r := a + b
	if w == W32 {
		return r != int64(int32(r)) || ((a^r)&(b^r)) < 0
	}
	return ((a ^ r) & (b ^ r)) < 0
}

// subtractionMayOverflow reports whether a-b overflows w.
func (w Width) subtractionMayOverflow(a, b int64) bool {
	r := a - b
	if w == W32 {
		return r != int64(int32(r)) || ((a^b)&(a^r)) < 0
	}
	return ((a ^ b) & (a ^ r)) < 0
}
