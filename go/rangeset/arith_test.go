package rangeset

import (
	"errors"
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	if !Empty().Abs(W64).IsEmpty() {
		t.Error("abs of empty set isn't empty")
	}
	checkEqual(t, "abs(MinInt64+1)", Point(math.MinInt64+1).Abs(W64), Point(math.MaxInt64))
	checkEqual(t, "abs(MinInt64)", Point(math.MinInt64).Abs(W64), Point(math.MinInt64))
	checkEqual(t, "abs(MinInt32) in 32 bits", Point(math.MinInt32).Abs(W32), Point(math.MinInt32))
	checkEqual(t, "abs(MinInt32) in 64 bits", Point(math.MinInt32).Abs(W64), Point(math.MaxInt32+1))
	checkEqual(t, "abs(100..200)", Range(100, 200).Abs(W64), Range(100, 200))
	checkEqual(t, "abs(-1..200)", Range(-1, 200).Abs(W64), Range(0, 200))
	checkEqual(t, "abs(-200..200)", Range(-200, 200).Abs(W32), Range(0, 200))
	checkEqual(t, "abs(-201..200)", Range(-201, 200).Abs(W32), Range(0, 201))
	checkEqual(t, "abs(all)", All(W64).Abs(W64), Range(0, math.MaxInt64).Union(Point(math.MinInt64)))
	checkEqual(t, "abs(MinInt32..-100) in 32 bits", Range(math.MinInt32, -100).Abs(W32),
		Range(100, math.MaxInt32).Union(Point(math.MinInt32)))
	checkEqual(t, "abs(MinInt32..-100) in 64 bits", Range(math.MinInt32, -100).Abs(W64), Range(100, math.MaxInt32+1))

	set := Range(-900, 1000).Subtract(Range(-800, -600)).Subtract(Range(-300, 100)).Subtract(Range(500, 700))
	checkString(t, "set", set, "{-900..-801, -599..-301, 101..499, 701..1000}")
	checkString(t, "abs(set)", set.Abs(W32), "{101..599, 701..1000}")
}

func TestNegate(t *testing.T) {
	if !Empty().Negate(W64).IsEmpty() {
		t.Error("negation of empty set isn't empty")
	}
	checkEqual(t, "-(MinInt64+1)", Point(math.MinInt64+1).Negate(W64), Point(math.MaxInt64))
	checkEqual(t, "-MinInt64", Point(math.MinInt64).Negate(W64), Point(math.MinInt64))
	checkEqual(t, "-MinInt32 in 32 bits", Point(math.MinInt32).Negate(W32), Point(math.MinInt32))
	checkEqual(t, "-MinInt32 in 64 bits", Point(math.MinInt32).Negate(W64), Point(math.MaxInt32+1))
	checkEqual(t, "-(100..200)", Range(100, 200).Negate(W64), Range(-200, -100))
	checkEqual(t, "-(-1..200)", Range(-1, 200).Negate(W64), Range(-200, 1))
	checkEqual(t, "-(-200..200)", Range(-200, 200).Negate(W32), Range(-200, 200))
	checkEqual(t, "-(-201..200)", Range(-201, 200).Negate(W32), Range(-200, 201))
	checkEqual(t, "-all", All(W64).Negate(W64), All(W64))
	checkEqual(t, "-(MinInt32..-100) in 32 bits", Range(math.MinInt32, -100).Negate(W32),
		Range(100, math.MaxInt32).Union(Point(math.MinInt32)))
	checkEqual(t, "-(MinInt64..MinInt64+1)", Range(math.MinInt64, math.MinInt64+1).Negate(W64),
		Point(math.MaxInt64).Union(Point(math.MinInt64)))
	checkEqual(t, "-(MinInt32..-100) in 64 bits", Range(math.MinInt32, -100).Negate(W64), Range(100, math.MaxInt32+1))

	set := Range(-900, 1000).Subtract(Range(-800, -600)).Subtract(Range(-300, 100)).Subtract(Range(500, 700))
	checkString(t, "-set", set.Negate(W32), "{-1000..-701, -499..-101, 301..599, 801..900}")
	checkNegate(t, ModRange(-15, 100, 10, 0b1011), W64, "{-100..10}: <0, 7, 9> mod 10")
	checkNegate(t, ModRange(-15, 100, 2, 0b10), W32, "{-99..15}: odd")
	checkNegate(t, ModRange(0, 200, 64, 0b100), W32, "{-194..-2}: <62> mod 64")
}

func TestPlus(t *testing.T) {
	checkPlus(t, Empty(), Empty(), W64, "{}")
	checkPlus(t, Empty(), Point(0), W64, "{}")
	checkPlus(t, Empty(), Range(0, 10), W64, "{}")
	checkPlus(t, Empty(), Range(0, 10).Union(Range(15, 20)), W64, "{}")

	checkPlus(t, Point(5), Point(10), W32, "{15}")
	checkPlus(t, Point(math.MaxInt32), Point(math.MaxInt32), W32, "{-2}")
	checkPlus(t, Point(math.MaxInt32), Point(math.MaxInt32), W64, "{4294967294}")
	checkPlus(t, Range(0, 10), Point(10), W32, "{10..20}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Point(1), W64, "{2147483638..2147483648}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Point(1), W32, "{MinInt32, 2147483638..MaxInt32}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Point(10), W32, "{MinInt32..-2147483639, MaxInt32}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Point(11), W32, "{MinInt32..-2147483638}")

	checkPlus(t, Range(0, 10), Range(20, 30), W64, "{20..40}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Range(0, 10), W64, "{2147483637..2147483657}")
	checkPlus(t, Range(math.MaxInt32-10, math.MaxInt32), Range(0, 10), W32, "{MinInt32..-2147483639, 2147483637..MaxInt32}")

	checkPlus(t, Range(10, 20).Union(Range(40, 50)), Range(0, 3).Union(Range(5, 7)), W64, "{10..27, 40..57}")

	checkPlus(t, Range(-1, 10).Mul(Point(2), W32), Point(3), W32, "{1..23}: odd")
	checkPlus(t, Range(-1, 10).Mul(Point(2), W32), Point(-10), W32, "{-12..10}: even")
	checkPlus(t, Range(-1, 10).Mul(Point(3), W32), Point(-1), W32, "{-4..29}: <2> mod 3")
	checkPlus(t, Point(10), Range(-1, 10).Mul(Point(2), W32), W32, "{8..30}: even")
	checkPlus(t, Range(-1, 10).Mul(Point(2), W32), Range(-1, 10).Mul(Point(2), W32), W32, "{-4..40}: even")
	byThree := Range(-1, 10).Mul(Point(3), W32).Plus(Point(1), W32)
	checkPlus(t, byThree, byThree, W32, "{-4..62}: <2> mod 3")

	intDomain := All(W32)
	checkEqual(t, "int + 20", intDomain.Plus(Point(20), W32), intDomain)
	checkEqual(t, "int without 0 + 20", intDomain.Without(0).Plus(Point(20), W32), intDomain.Without(20))
	checkEqual(t, "long without 0 + 20", All(W64).Without(0).Plus(Point(20), W64), All(W64).Without(20))
	checkEqual(t, "disjoint + int", Range(20, 30).Union(Range(40, 50)).Plus(intDomain, W32), intDomain)
	checkEqual(t, "wide int ranges", Range(math.MinInt32, 2).Plus(Range(-2, math.MaxInt32), W32), intDomain)
	checkEqual(t, "wide long ranges", Range(math.MinInt64, 2).Plus(Range(-2, math.MaxInt64), W64), All(W64))
	checkEqual(t, "long + all", Range(-100, math.MaxInt64).Plus(All(W64), W64), All(W64))

	checkString(t, "64k-1", All(W64).Mul(Point(64), W64).Minus(Point(1), W64), "{-9223372036854775745..MaxInt64}: <63> mod 64")
}

func TestOverflow(t *testing.T) {
	tt := []struct {
		a, b  Set
		w     Width
		plus  bool
		minus bool
	}{
		{Range(0, 10), Range(0, 10), W32, false, false},
		{Point(math.MaxInt32), Point(1), W32, true, false},
		{Point(math.MaxInt32), Point(1), W64, false, false},
		{Point(math.MinInt32), Point(1), W32, false, true},
		{Range(0, math.MaxInt64), Point(-1), W64, false, true},
		{Point(math.MinInt64), Range(0, 1), W64, false, true},
		{Point(-1), Point(math.MinInt64), W64, true, false},
		{Point(-1), Point(math.MinInt32), W32, true, false},
		{Point(math.MinInt64), Point(math.MinInt64), W64, true, false},
		{Range(0, 5), Point(math.MinInt64), W64, false, true},
	}
	for _, tc := range tt {
		if got := tc.a.AdditionMayOverflow(tc.b, tc.w); got != tc.plus {
			t.Errorf("%s + %s in %s: overflow = %t, want %t", tc.a, tc.b, tc.w, got, tc.plus)
		}
		if got := tc.a.SubtractionMayOverflow(tc.b, tc.w); got != tc.minus {
			t.Errorf("%s - %s in %s: overflow = %t, want %t", tc.a, tc.b, tc.w, got, tc.minus)
		}
	}
}

func TestPlusMinValue(t *testing.T) {
	set := ModRange(-36, -30, 13, 1<<3|1<<4|1<<5|1<<6|1<<9)
	for _, w := range []Width{W32, W64} {
		trunc := truncate(w)
		minValue := Point(w.Min())
		sum, diff := set.Plus(minValue, w), set.Minus(minValue, w)
		for _, x := range members(set) {
			if v := trunc(x + w.Min()); !sum.Contains(v) {
				t.Errorf("%s + %s in %s = %s misses %d", set, minValue, w, sum, v)
			}
			if v := trunc(x - w.Min()); !diff.Contains(v) {
				t.Errorf("%s - %s in %s = %s misses %d", set, minValue, w, diff, v)
			}
		}
	}
}

func TestMul(t *testing.T) {
	checkMul(t, Empty(), Empty(), W64, "{}")
	checkMul(t, Empty(), Point(0), W64, "{}")
	checkMul(t, Empty(), Range(0, 10), W64, "{}")
	checkMul(t, Empty(), Range(0, 10).Union(Range(15, 20)), W64, "{}")

	checkMul(t, Point(5), Point(10), W32, "{50}")
	checkMul(t, Point(2_000_000_000), Point(2), W32, "{-294967296}")
	checkMul(t, Point(2_000_000_000), Point(2), W64, "{4000000000}")
	checkMul(t, Point(math.MinInt32), Point(math.MinInt32), W32, "{0}")
	checkMul(t, Point(math.MinInt32), Point(math.MinInt32), W64, "{4611686018427387904}")
	checkMul(t, Point(1), Point(10), W32, "{10}")
	checkMul(t, Point(0), Point(10), W32, "{0}")
	checkMul(t, Point(-1), Point(10), W32, "{-10}")

	twoRanges := Range(10, 20).Union(Range(30, 40))
	checkMul(t, Point(1), twoRanges, W32, "{10..20, 30..40}")
	checkMul(t, Point(0), twoRanges, W32, "{0}")
	checkMul(t, Point(-1), twoRanges, W32, "{-40..-30, -20..-10}")
	checkMul(t, Point(-1), Range(math.MinInt32, math.MinInt32+30), W32, "{MinInt32, 2147483618..MaxInt32}")
	checkMul(t, Point(-1), Range(math.MinInt32, math.MinInt32+30), W64, "{2147483618..2147483648}")

	checkMul(t, Point(2), Range(10, 20), W32, "{20..40}: even")
	checkMul(t, Point(-2), Range(10, 20), W32, "{-40..-20}: even")
	checkMul(t, Point(2), Range(-20, -10), W32, "{-40..-20}: even")
	checkMul(t, Point(2), Range(math.MaxInt32-10, math.MaxInt32), W32, "{MinInt32..MaxInt32-1}: even")
	checkMul(t, Point(2), Range(math.MaxInt32-10, math.MaxInt32), W64, "{4294967274..4294967294}: even")
	checkMul(t, Point(3), Range(-5, 15), W32, "{-15..45}: divisible by 3")
	checkMul(t, Point(3), Range(math.MaxInt32-10, math.MaxInt32), W32, "{MinInt32..MaxInt32}")
	checkMul(t, Point(6), Range(math.MaxInt32-10, math.MaxInt32), W32, "{MinInt32..MaxInt32-1}: even")
	checkMul(t, Point(3), Range(math.MaxInt32-10, math.MaxInt32), W64, "{6442450911..6442450941}: divisible by 3")
	checkMul(t, Point(6), Range(math.MaxInt32-10, math.MaxInt32), W64, "{12884901822..12884901882}: divisible by 6")

	all := All(W64)
	mul720 := all.Mul(Point(5), W64).Mul(Point(8), W64).Mul(Point(3), W64).Mul(Point(6), W64)
	checkString(t, "all*720", mul720, "{MinInt64..9223372036854775792}: divisible by 16")
	mul15 := Range(0, 10).Mul(Point(3), W64).Mul(Point(5), W64)
	checkString(t, "0..10*15", mul15, "{0..150}: divisible by 15")
	checkString(t, "0..10*120", mul15.Mul(Point(8), W64), "{0..1200}")
	checkString(t, "evens*all", Point(2).Union(Point(10)).Union(Point(100)).Mul(all, W64), "{MinInt64..MaxInt64-1}: even")
	even := ModRange(math.MinInt32, math.MaxInt32, 2, 1)
	checkString(t, "multiples of 4 * even", Point(4).Union(Point(100)).Union(Point(1000)).Mul(even, W32),
		"{MinInt32..2147483640}: divisible by 8")

	checkMul(t, Range(2, 5), Range(-3, 4), W64, "{-15..20}")
	checkMul(t, Range(0, 10).Mul(Point(2), W64), Range(0, 10).Mul(Point(2), W64), W64, "{0..400}: divisible by 4")
}

func TestDiv(t *testing.T) {
	all := All(W64)
	checkEqual(t, "{} / all", Empty().Div(all, W64), Empty())
	checkEqual(t, "all / {}", all.Div(Empty(), W64), Empty())
	checkEqual(t, "{1} / {}", Point(1).Div(Empty(), W64), Empty())
	checkEqual(t, "{1} / {3} / {}", Point(1).Div(Point(3), W64).Div(Empty(), W64), Empty())
	checkEqual(t, "all / all", all.Div(all, W64), all)
	checkEqual(t, "all / 0", all.Div(Point(0), W64), Empty())
	checkEqual(t, "all / 1", all.Div(Point(1), W64), all)
	checkEqual(t, "all / -1", all.Div(Point(-1), W64), all)
	checkEqual(t, "110 / 10", Point(110).Div(Point(10), W64), Point(11))

	checkDiv(t, Range(1, 20), Range(1, 5), W64, "{0..20}")
	checkDiv(t, Range(1, 20), Range(-5, -1), W64, "{-20..0}")
	checkDiv(t, Range(-20, -1), Range(1, 5), W64, "{-20..0}")
	checkDiv(t, Range(-20, -1), Range(-5, -1), W64, "{0..20}")
	checkDiv(t, Range(-10, 10), Range(2, 4), W64, "{-5..5}")
	checkDiv(t, Range(100, 120), Range(-2, 2), W64, "{-120..-50, 50..120}")
	checkDiv(t, Range(math.MinInt32, math.MinInt32+20), Range(-2, 2), W64,
		"{MinInt32..-1073741814, 1073741814..2147483648}")
	checkDiv(t, Range(math.MinInt32, math.MinInt32+20), Range(-2, 2), W32,
		"{MinInt32..-1073741814, 1073741814..MaxInt32}")
	checkDiv(t, Range(math.MinInt32, math.MinInt32+20), Range(-2, -1), W64,
		"{1073741814..2147483648}")
	checkDiv(t, Range(math.MinInt32, math.MinInt32+20), Range(-2, -1), W32,
		"{MinInt32, 1073741814..MaxInt32}")
}

func TestMod(t *testing.T) {
	all := All(W64)
	checkEqual(t, "{} % all", Empty().Mod(all), Empty())
	checkEqual(t, "all % {}", all.Mod(Empty()), Empty())
	checkEqual(t, "{1} % {}", Point(1).Mod(Empty()), Empty())
	checkEqual(t, "{1, 3} % {}", Point(1).Union(Point(3)).Mod(Empty()), Empty())
	checkEqual(t, "110 % 100", Point(110).Mod(Point(100)), Point(10))

	checkMod(t, Range(10, 20), Range(30, 40), "{10..20}")
	checkMod(t, Range(-10, 10), Range(20, 30), "{-10..10}")
	checkMod(t, Point(0), Range(-100, -50).Union(Range(20, 80)), "{0}")
	checkMod(t, Point(30), Range(10, 40), "{0..30}")
	checkMod(t, Point(-30), Range(-10, 40), "{-30..0}")
	checkMod(t, Point(math.MinInt64), Range(-10, 40), "{-39..0}")
	checkMod(t, Range(-10, 40), Point(math.MinInt64), "{-10..40}")
	checkMod(t, Range(-30, -20), Point(23), "{-22..0}")
	checkMod(t, Point(10), Range(30, 40), "{10}")
	checkMod(t, Range(-10, 40), Point(math.MinInt64).Union(Point(70)), "{-10..40}")
	checkMod(t, Range(-10, 40), Point(math.MinInt64).Union(Point(0)), "{-10..40}")
	checkMod(t, Point(10), Point(math.MinInt64).Union(Point(0)), "{0, 10}")
	checkMod(t, Range(0, 10).Union(Range(30, 50)), Range(-20, -10).Union(Range(15, 25)), "{0..24}")
	checkMod(t, Point(10), Point(0), "{}")
	checkMod(t, Range(0, 10), Point(0), "{}")
	checkMod(t, Range(math.MinInt64, math.MinInt64+3), Point(math.MinInt64), "{MinInt64+1..-9223372036854775805, 0}")
	checkMod(t, Range(math.MaxInt64-3, math.MaxInt64), Point(math.MaxInt64), "{0..MaxInt64-1}")
	checkMod(t, Range(0, 10).Mul(Point(4), W32), Point(10), "{0..8}: <0, 2, 4, 6, 8> mod 10")
	checkMod(t, Range(-1, 10).Mul(Point(4), W32), Point(10), "{-4..8}: <0, 2, 4, 6, 8> mod 10")
	checkMod(t, Range(-2, 10).Mul(Point(3), W32).Minus(Point(1), W32), Point(6), "{-4..5}: <2> mod 3")
}

func TestShiftRight(t *testing.T) {
	all := All(W64)
	intRange := All(W32)
	checkEqual(t, "{} >> all", Empty().ShiftRight(all, W64), Empty())
	checkEqual(t, "all >> {}", all.ShiftRight(Empty(), W64), Empty())
	checkEqual(t, "all >> all", all.ShiftRight(all, W64), all)
	checkEqual(t, "all >> 32", all.ShiftRight(Point(32), W64), intRange)
	checkEqual(t, "int >> 16", intRange.ShiftRight(Point(16), W32), Range(-32768, 32767))
	checkEqual(t, "int >> 24", intRange.ShiftRight(Point(24), W32), Range(-128, 127))
	checkEqual(t, "int >> 31", intRange.ShiftRight(Point(31), W32), Range(-1, 0))

	checkShr(t, Range(-20, 20), Point(31), W32, "{-1, 0}")
	checkShr(t, Range(-20, 20), Point(31), W64, "{-1, 0}")
	checkShr(t, Range(-20, 20), Range(1, 3), W64, "{-10..10}")
	checkShr(t, Range(-20, 20), Range(3, 5), W64, "{-3..2}")
	checkShr(t, Range(1000000, 1000020), Range(3, 5), W64, "{31250..125002}")
}

func TestShiftLeft(t *testing.T) {
	all := All(W64)
	checkEqual(t, "{} << all", Empty().ShiftLeft(all, W64), Empty())
	checkEqual(t, "all << {}", all.ShiftLeft(Empty(), W64), Empty())
	checkEqual(t, "all << all", all.ShiftLeft(all, W64), all)
	checkShl(t, Point(1), Point(3), W32, "{8}")
	checkShl(t, Range(0, 10), Point(3), W32, "{0..80}: divisible by 8")
	checkShl(t, Range(0, 15), Point(28), W32, "{MinInt32..2147483584}: divisible by 64")
	checkShl(t, Range(0, 15), Point(28), W64, "{0..4026531840}: divisible by 64")
	checkShl(t, Point(1), Point(35), W32, "{8}")
}

func TestUnsignedShiftRight(t *testing.T) {
	all := All(W64)
	intRange := All(W32)
	checkEqual(t, "{} >>> all", Empty().UnsignedShiftRight(all, W64), Empty())
	checkEqual(t, "all >>> {}", all.UnsignedShiftRight(Empty(), W64), Empty())
	checkEqual(t, "all >>> all", all.UnsignedShiftRight(all, W64), all)
	checkEqual(t, "all >>> 32", all.UnsignedShiftRight(Point(32), W64), Range(0, 4294967295))
	checkEqual(t, "int >>> 16", intRange.UnsignedShiftRight(Point(16), W32), Range(0, 65535))
	checkEqual(t, "int >>> 24", intRange.UnsignedShiftRight(Point(24), W32), Range(0, 255))
	checkEqual(t, "int >>> 31", intRange.UnsignedShiftRight(Point(31), W32), Range(0, 1))

	checkUshr(t, Range(-20, 20), Point(31), W32, "{0, 1}")
	checkUshr(t, Range(-20, 20), Point(31), W64, "{0, 8589934591}")
	checkUshr(t, Range(-20, 20), Range(1, 3), W64, "{0..10, 2305843009213693949..MaxInt64}")
	checkUshr(t, Range(-20, 20), Range(1, 3), W32, "{0..10, 536870909..MaxInt32}")
	checkUshr(t, Range(-20, 20), Range(3, 5), W64, "{0..2, 576460752303423487..2305843009213693951}")
	checkUshr(t, Range(-20, 20), Range(3, 5), W32, "{0..2, 134217727..536870911}")
	checkUshr(t, Range(1000000, 1000020), Range(3, 5), W64, "{31250..125002}")
}

func TestCastTo(t *testing.T) {
	for _, w := range []Width{W32, W64} {
		got, err := Empty().CastTo(w)
		if err != nil || !got.IsEmpty() {
			t.Errorf("cast of empty set to %s = %s, %v", w, got, err)
		}
		got, err = Point(0).CastTo(w)
		if err != nil || !got.Equal(Point(0)) {
			t.Errorf("cast of {0} to %s = %s, %v", w, got, err)
		}
		full := All(w)
		if got, _ := full.CastTo(w); !got.Equal(full) {
			t.Errorf("cast of %s to %s = %s", full, w, got)
		}
		if got, _ := All(W64).CastTo(w); !got.Equal(full) {
			t.Errorf("cast of all to %s = %s", w, got)
		}
	}

	const v = 0x1234_5678_9ABC_DEF0
	tt := []struct {
		set  Set
		w    Width
		want Set
	}{
		{Point(v), W64, Point(v)},
		{Point(v), W32, Point(-0x6543_2110)},
		{Range(math.MinInt64, math.MaxInt32-1), W32, All(W32)},
		{Range(-10, math.MaxInt32+101), W32, Range(math.MinInt32, math.MinInt32+100).Union(Range(-10, math.MaxInt32))},
	}
	for _, tc := range tt {
		got, err := tc.set.CastTo(tc.w)
		if err != nil {
			t.Errorf("cast of %s to %s: %v", tc.set, tc.w, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("cast of %s to %s = %s, want %s", tc.set, tc.w, got, tc.want)
		}
	}

	var werr *UnsupportedWidthError
	if _, err := Point(1).CastTo(Width(16)); err == nil {
		t.Error("cast to 16 bits succeeded")
	} else if !errors.As(err, &werr) || werr.Width != 16 {
		t.Errorf("got error %v", err)
	}
}
