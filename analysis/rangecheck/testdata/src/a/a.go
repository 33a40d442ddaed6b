package pkg

import "math"

func fn1(x int32, y int64, b byte, u uint16, u64 uint64, i8 int8, n uint, s []int) {
	if x&7 > 7 { // want `comparison is always false: x & 7 is in`
	}
	if x&7 <= 7 { // want `comparison is always true: x & 7 is in`
	}
	if x%10 == 10 { // want `comparison is always false: x % 10 is in`
	}
	if int32(b) < 0 { // want `comparison is always false: int32\(b\) is in`
	}
	if int64(u) >= 0 { // want `comparison is always true`
	}
	if 0 > int64(u) { // want `comparison is always false: int64\(u\) is in`
	}
	if y>>60 > 7 { // want `comparison is always false: y >> 60 is in`
	}
	if x*2 == 3 { // want `comparison is always false: x \* 2 is even`
	}
	if x*2 != 3 { // want `comparison is always true: x \* 2 is even`
	}
	if int64(x) > math.MaxInt32 { // want `comparison is always false`
	}
	if int32(i8) > 127 { // want `comparison is always false`
	}
	if len(s) < 0 { // want `comparison is always false`
	}
	if b < 0 { // want `comparison is always false`
	}

	if x < 10 {
	}
	if x&8 == 8 {
	}
	if x+1 > x {
	}
	if -x < 0 {
	}
	if x>>n > 100 {
	}
	if x<<40 == 1 {
	}
	if u64 < 1 {
	}
	if int32(u64) > 0 {
	}
	if y%10 == 9 {
	}
}

func fn2(x int32, y int64) {
	_ = x / (x & 0) // want `divisor x & 0 is always zero`
	_ = y % (y & 0) // want `divisor y & 0 is always zero`
	y /= y & 0      // want `divisor y & 0 is always zero`
	_ = x / (x & 1)
	_ = y / 2
}

func fn3[T ~int32](v T) bool {
	return v&3 > 3 // want `comparison is always false: v & 3 is in`
}

func fn4[T ~int32 | ~int64](v T) bool {
	return v&3 > 3
}

const c = 5

func fn5() bool {
	return c > 3
}

func fn6(u uint8) {
	// Adding MinInt32 wraps, which loses the congruence modulo 3.
	if (-(int32(u)*3)-3+math.MinInt32)%3 == 2 {
	}
	if (-(int32(u)*3)-3+math.MinInt32)%3 < 0 { // want `comparison is always false`
	}
}
