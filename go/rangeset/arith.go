package rangeset

// Abs returns the absolute values of the members of s, computed in w.
// The minimum value of w is its own absolute value.
func (s Set) Abs(w Width) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		if s.from >= 0 || s.from == w.Min() {
			return s
		}
		return Point(-s.from)
	case KindRange, KindModRange:
		return s.intervalAbs(w)
	case KindDisjoint:
		return s.eachRange(func(piece Set) Set { return piece.Abs(w) })
	default:
		panic("unreachable")
	}
}

func (s Set) intervalAbs(w Width) Set {
	if s.from >= 0 {
		return s
	}
	minValue := w.Min()
	low, hi := s.from, s.to
	if low <= minValue {
		low = minValue + 1
	}
	if s.to <= 0 {
		low, hi = -s.to, -low
	} else {
		low, hi = 0, max64(-low, hi)
	}
	if low > hi {
		return w.Full()
	}
	if s.from <= minValue {
		return disjoint(minValue, minValue, low, hi)
	}
	return rng(low, hi)
}

// Negate returns the negations of the members of s, computed in w.
func (s Set) Negate(w Width) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		if s.from == w.Min() {
			return s
		}
		return Point(-s.from)
	case KindRange:
		return s.intervalNegate(w)
	case KindModRange:
		return s.modNegate(w)
	case KindDisjoint:
		return s.eachRange(func(piece Set) Set { return piece.Negate(w) })
	default:
		panic("unreachable")
	}
}

func (s Set) intervalNegate(w Width) Set {
	minValue := w.Min()
	if s.from <= minValue {
		if s.to >= w.Max() {
			return w.Full()
		}
		return disjoint(minValue, minValue, -s.to, -(minValue + 1))
	}
	return rng(-s.to, -s.from)
}

// eachRange unites the results of applying fn to every sub-range of a
// KindDisjoint s.
func (s Set) eachRange(fn func(Set) Set) Set {
	result := emptySet
	for i := 0; i < len(s.ranges); i += 2 {
		result = result.Union(fn(rng(s.ranges[i], s.ranges[i+1])))
	}
	return result
}

// Plus returns the sums of members of s and o, wrapping around in w.
// Plus is commutative.
func (s Set) Plus(o Set, w Width) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		if o.IsEmpty() {
			return o
		}
		if o.kind == KindPoint {
			return Point(w.Truncate(s.from + o.from))
		}
		return o.Plus(s, w)
	case KindRange:
		return s.intervalPlus(o, w)
	case KindModRange:
		return s.modPlus(o, w)
	case KindDisjoint:
		if len(s.ranges) > 6 {
			return rng(s.from, s.to).Plus(o, w)
		}
		return s.eachRange(func(piece Set) Set { return piece.Plus(o, w) })
	default:
		panic("unreachable")
	}
}

func (s Set) intervalPlus(o Set, w Width) Set {
	if o.IsEmpty() {
		return o
	}
	if s.Equal(w.Full()) {
		return s
	}
	if o.kind != KindDisjoint || len(o.ranges) > 6 {
		return plusIntervals(s.from, s.to, o.from, o.to, w)
	}
	result := emptySet
	for i := 0; i < len(o.ranges); i += 2 {
		result = result.Union(plusIntervals(s.from, s.to, o.ranges[i], o.ranges[i+1], w))
	}
	return result
}

func plusIntervals(from1, to1, from2, to2 int64, w Width) Set {
	len1 := to1 - from1
	len2 := to2 - from2
	// The lengths wrap for intervals wider than 2^63.
	if len1 < 0 && len2 < 0 || (len1 < 0 || len2 < 0) && len1+len2+1 >= 0 {
		return w.Full()
	}
	from := from1 + from2
	to := to1 + to2
	if w == W32 {
		if to-from+1 >= 1<<32 {
			return int32Range
		}
		from, to = w.Truncate(from), w.Truncate(to)
	}
	if to < from {
		return disjoint(w.Min(), to, from, w.Max())
	}
	return rng(from, to)
}

// Minus returns the differences of members of s and o, wrapping around in
// w.
func (s Set) Minus(o Set, w Width) Set {
	return s.Plus(o.Negate(w), w)
}

// AdditionMayOverflow reports whether adding a member of o to a member of
// s may overflow w. Both sets must be non-empty.
func (s Set) AdditionMayOverflow(o Set, w Width) bool {
	return w.additionMayOverflow(s.lo(), o.lo()) || w.additionMayOverflow(s.hi(), o.hi())
}

// SubtractionMayOverflow reports whether subtracting a member of o from a
// member of s may overflow w. Both sets must be non-empty.
func (s Set) SubtractionMayOverflow(o Set, w Width) bool {
	return w.subtractionMayOverflow(s.lo(), o.hi()) || w.subtractionMayOverflow(s.hi(), o.lo())
}

// Mul returns the products of members of s and o, wrapping around in w.
// Mul is commutative.
func (s Set) Mul(o Set, w Width) Set {
	if s.IsEmpty() {
		return s
	}
	if o.IsEmpty() {
		return o
	}
	if s.kind == KindPoint {
		return s.pointMul(o, w)
	}
	if o.kind == KindPoint {
		return o.pointMul(s, w)
	}
	thisMask := s.bitwiseMask()
	thatMask := o.bitwiseMask()
	// Known trailing zeros of both factors add up.
	zeros := min(6,
		min(trailingZeros(thisMask.bits), trailingZeros(^thisMask.mask))+
			min(trailingZeros(thatMask.bits), trailingZeros(^thatMask.mask)))
	lo, hi := w.Min(), w.Max()
	if clo, chi, ok := cornerProducts(s.from, s.to, o.from, o.to, w); ok {
		lo, hi = clo, chi
	}
	return modRange(lo, hi, 1<<uint(zeros), 1)
}

// cornerProducts bounds the products of two intervals. It fails if any
// product overflows w.
func cornerProducts(from1, to1, from2, to2 int64, w Width) (lo, hi int64, ok bool) {
	lo, hi = maxInt64, minInt64
	for _, a := range [2]int64{from1, to1} {
		for _, b := range [2]int64{from2, to2} {
			p, ok := mulExact(a, b)
			if !ok || w.Truncate(p) != p {
				return 0, 0, false
			}
			lo, hi = min64(lo, p), max64(hi, p)
		}
	}
	return lo, hi, true
}

func (s Set) pointMul(multiplier Set, w Width) Set {
	v := s.from
	switch {
	case multiplier.IsEmpty():
		return multiplier
	case v == 0:
		return s
	case v == 1:
		return multiplier
	case v == -1:
		return multiplier.Negate(w)
	case multiplier.kind == KindPoint:
		return Point(w.Truncate(v * multiplier.from))
	}
	lo, ok1 := mulExact(multiplier.from, v)
	hi, ok2 := mulExact(multiplier.to, v)
	overflow := !ok1 || !ok2 || w.Truncate(lo) != lo || w.Truncate(hi) != hi
	var result Set
	if overflow {
		result = w.Full()
	} else if lo > hi {
		result = rng(hi, lo)
	} else {
		result = rng(lo, hi)
	}
	abs := abs64(v)
	if overflow {
		abs = lowestOneBit(abs)
	}
	// Multiples of a power of two above 64 are multiples of 64.
	clampMod := func(m int64) int64 {
		if m < 0 || m > 64 && popCount(uint64(m)) == 1 {
			return 64
		}
		return m
	}
	abs = clampMod(abs)
	if multiplier.kind == KindModRange && multiplier.bits == 1 && abs < 64 {
		mod := int64(multiplier.mod)
		if overflow {
			mod = lowestOneBit(mod)
		}
		abs = clampMod(abs * mod)
	}
	if abs > maxMod {
		return result
	}
	return modRange(result.from, result.to, int(abs), 1)
}

// Div returns the quotients of members of s divided by members of
// divisor, truncated toward zero and computed in w. Division by zero
// contributes nothing; MinValue / -1 yields MinValue.
func (s Set) Div(divisor Set, w Width) Set {
	if divisor.IsEmpty() || divisor.Equal(zero) {
		return emptySet
	}
	full := w.Full()
	divisor = divisor.Intersect(full)
	dividend := s.Intersect(full)
	if divisor.IsEmpty() || dividend.IsEmpty() {
		return emptySet
	}
	left := splitAtZero(dividend.rangeArray())
	right := splitAtZero([]int64{divisor.from, divisor.to})
	result := emptySet
	for i := 0; i < len(left); i += 2 {
		for j := 0; j < len(right); j += 2 {
			result = result.Union(divide(left[i], left[i+1], right[j], right[j+1], w))
		}
	}
	return result
}

func divide(dividendMin, dividendMax, divisorMin, divisorMax int64, w Width) Set {
	if divisorMin == 0 {
		if divisorMax == 0 {
			return emptySet
		}
		divisorMin = 1
	}
	if dividendMin >= 0 {
		if divisorMin > 0 {
			return Range(dividendMin/divisorMax, dividendMax/divisorMin)
		}
		return Range(dividendMax/divisorMax, dividendMin/divisorMin)
	}
	if divisorMin > 0 {
		return Range(dividendMin/divisorMin, dividendMax/divisorMax)
	}
	minValue := w.Min()
	if dividendMin == minValue && divisorMax == -1 {
		// MinValue / -1 overflows back to MinValue.
		result := Point(minValue)
		if divisorMin != -1 {
			result = result.Union(Range(dividendMin/divisorMin, dividendMin/(divisorMax-1)))
		}
		if dividendMax != minValue {
			result = result.Union(Range(dividendMax/divisorMin, (dividendMin+1)/divisorMax))
		}
		return result
	}
	return Range(dividendMax/divisorMin, dividendMin/divisorMax)
}

// splitAtZero splits the sub-range straddling zero, if any, into a
// negative and a non-negative part.
func splitAtZero(ranges []int64) []int64 {
	for i := 0; i < len(ranges); i += 2 {
		if ranges[i] < 0 && ranges[i+1] >= 0 {
			result := make([]int64, 0, len(ranges)+2)
			result = append(result, ranges[:i+1]...)
			result = append(result, -1, 0)
			return append(result, ranges[i+1:]...)
		}
	}
	return ranges
}

// Mod returns the remainders of members of s divided by members of
// divisor, with the sign of the dividend. Division by zero contributes
// nothing.
func (s Set) Mod(divisor Set) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		return s.pointMod(divisor)
	case KindRange:
		return s.rangeMod(divisor)
	case KindModRange:
		return s.modMod(divisor)
	case KindDisjoint:
		if divisor.IsEmpty() {
			return emptySet
		}
		return s.eachRange(func(piece Set) Set { return piece.Mod(divisor) })
	default:
		panic("unreachable")
	}
}

func (s Set) pointMod(divisor Set) Set {
	v := s.from
	if divisor.IsEmpty() || divisor.Equal(zero) {
		return emptySet
	}
	if v == 0 {
		return s
	}
	if d, ok := divisor.ConstantValue(); ok {
		return Point(v % d)
	}
	if v != minInt64 {
		// 10 % [15..20] is 10 whatever the divisor.
		if a := abs64(v); !divisor.Intersects(rng(-a, a)) {
			return s
		}
	}
	addend := emptySet
	if divisor.Contains(minInt64) {
		divisor = divisor.Subtract(Point(minInt64))
		addend = s
	}
	hi := max64(0, max64(abs64(divisor.lo()), abs64(divisor.hi()))-1)
	if v < 0 {
		return rng(max64(v, -hi), 0).Union(addend)
	}
	return rng(0, min64(v, hi)).Union(addend)
}

func (s Set) rangeMod(divisor Set) Set {
	if divisor.IsEmpty() || divisor.Equal(zero) {
		return emptySet
	}
	if d, ok := divisor.ConstantValue(); ok && d == minInt64 {
		if s.Contains(minInt64) {
			return s.Subtract(divisor).Union(zero)
		}
		return s
	}
	if divisor.Contains(minInt64) {
		return s.possibleMod()
	}
	lo, hi := divisor.from, divisor.to
	maxDivisor := max64(abs64(lo), abs64(hi))
	var minDivisor int64
	if lo > 0 {
		minDivisor = lo
	} else if hi < 0 {
		minDivisor = abs64(hi)
	}
	if !s.Intersects(rng(minInt64, -minDivisor)) && !s.Intersects(rng(minDivisor, maxInt64)) {
		return s
	}
	return s.possibleMod().Intersect(Range(-maxDivisor+1, maxDivisor-1))
}

// possibleMod extends s toward zero.
func (s Set) possibleMod() Set {
	if s.Contains(0) {
		return s
	}
	if s.from > 0 {
		return rng(0, s.to)
	}
	return rng(s.from, 0)
}

// ShiftLeft returns the members of s shifted left by members of shift.
// Shift counts are reduced modulo the bit size of w.
func (s Set) ShiftLeft(shift Set, w Width) Set {
	if s.IsEmpty() || shift.IsEmpty() {
		return emptySet
	}
	if v, ok := shift.ConstantValue(); ok {
		n := v & int64(w.Bits()-1)
		return Point(1<<uint(n)).Mul(s, w)
	}
	return w.Full()
}

// ShiftRight returns the members of s shifted right arithmetically by
// members of shift. Shift counts are reduced modulo the bit size of w.
func (s Set) ShiftRight(shift Set, w Width) Set {
	return s.shiftRight(shift, w, false)
}

// UnsignedShiftRight returns the members of s shifted right logically by
// members of shift, treating s as a w-bit unsigned quantity.
func (s Set) UnsignedShiftRight(shift Set, w Width) Set {
	return s.shiftRight(shift, w, true)
}

func (s Set) shiftRight(shift Set, w Width, unsigned bool) Set {
	if s.IsEmpty() || shift.IsEmpty() {
		return emptySet
	}
	maxShift := int64(w.Bits() - 1)
	if shift.from < 0 || shift.to > maxShift {
		shift = shift.And(Point(maxShift))
	}
	lo, hi := shift.from, shift.to
	negative := s.Intersect(rng(w.Min(), -1))
	positive := s.Intersect(rng(0, w.Max()))
	posResult := positive.shrPositive(lo, hi, w)
	// -1-x is non-negative for negative x.
	complement := Point(-1).Minus(negative, w)
	var negResult Set
	if unsigned {
		if lo == 0 {
			posResult = posResult.Union(negative)
			if hi == 0 {
				return posResult
			}
			lo++
		}
		// For x < 0 and y > 0, x >>> y == (MaxValue - ((-1-x) >> 1)) >> (y-1).
		negResult = Point(w.Max()).Minus(complement.shrPositive(1, 1, w), w).shrPositive(lo-1, hi-1, w)
	} else {
		negResult = Point(-1).Minus(complement.shrPositive(lo, hi, w), w)
	}
	return posResult.Union(negResult)
}

// shrPositive shifts the non-negative members of s right by [lo, hi].
func (s Set) shrPositive(lo, hi int64, w Width) Set {
	if s.IsEmpty() {
		return emptySet
	}
	if hi == int64(w.Bits()-1) {
		if lo == hi {
			return zero
		}
		return zero.Union(s.Div(rng(1<<uint(lo), 1<<uint(hi-1)), w))
	}
	return s.Div(rng(1<<uint(lo), 1<<uint(hi)), w)
}

// CastTo returns the values of s converted to w, the way a conversion
// between integer types of different sizes truncates.
func (s Set) CastTo(w Width) (Set, error) {
	switch w {
	case W64:
		return s, nil
	case W32:
		if int32Range.ContainsSet(s) {
			return s, nil
		}
		// Shift into [0, 2^32), keep the low 32 bits, and shift back.
		shifted := s.Plus(Point(1<<31), W64).And(Point(1<<32 - 1))
		return shifted.Plus(Point(-1<<31), W64), nil
	default:
		return s, &UnsupportedWidthError{Width: int(w)}
	}
}
