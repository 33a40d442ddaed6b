package rangeset

import "math/bits"

// remainder returns the non-negative remainder of v modulo mod.
func remainder(v int64, mod int) int {
	r := int(v % int64(mod))
	if r < 0 {
		r += mod
	}
	return r
}

func isSet(b uint64, n int) bool {
	return (b>>uint(n))&1 != 0
}

func setBit(b uint64, n int) uint64 {
	return b | 1<<uint(n)
}

func clearBit(b uint64, n int) uint64 {
	return b &^ (1 << uint(n))
}

// lowMask returns a mask with the n lowest bits set.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// extractBits returns count bits of b starting at offset.
func extractBits(b uint64, offset, count int) uint64 {
	if offset >= 64 {
		return 0
	}
	return (b >> uint(offset)) & lowMask(count)
}

// rotateRemainders rotates the mod-bit wide remainder mask so that bit
// shift becomes bit 0.
func rotateRemainders(b uint64, mod, shift int) uint64 {
	if shift == 0 {
		return b
	}
	return ((b >> uint(shift)) | (b << uint(mod-shift))) & lowMask(mod)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func clamp64(v, lo, hi int64) int64 {
	return max64(lo, min64(v, hi))
}

// mulExact multiplies a and b, reporting whether the product overflowed
// int64.
func mulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return r, false
	}
	return r, true
}

func trailingZeros(v uint64) int { return bits.TrailingZeros64(v) }
func leadingZeros(v uint64) int  { return bits.LeadingZeros64(v) }
func popCount(v uint64) int      { return bits.OnesCount64(v) }

// highestOneBit returns v with all but its highest set bit cleared.
func highestOneBit(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return 1 << uint(63-leadingZeros(v))
}

// lowestOneBit returns v with all but its lowest set bit cleared.
func lowestOneBit(v int64) int64 {
	return v & -v
}

func reverse64(v uint64) uint64 { return bits.Reverse64(v) }
