package rangeset

// bitwiseMask returns the bits shared by every member of s.
func (s Set) bitwiseMask() BitString {
	switch s.kind {
	case KindEmpty:
		return unknownBits
	case KindModRange:
		return s.modBitwiseMask()
	case KindDisjoint:
		result := BitStringFromRange(s.ranges[0], s.ranges[1])
		for i := 2; i < len(s.ranges); i += 2 {
			result = result.Union(BitStringFromRange(s.ranges[i], s.ranges[i+1]))
		}
		return result
	default:
		return BitStringFromRange(s.from, s.to)
	}
}

// Or returns a superset of x | y for x in s and y in o.
func (s Set) Or(o Set, w Width) Set {
	if s.IsEmpty() || o.IsEmpty() {
		return emptySet
	}
	return fromBits(s.bitwiseMask().Or(o.bitwiseMask())).Intersect(w.Full())
}

// Xor returns a superset of x ^ y for x in s and y in o.
func (s Set) Xor(o Set, w Width) Set {
	if s.IsEmpty() || o.IsEmpty() {
		return emptySet
	}
	return fromBits(s.bitwiseMask().Xor(o.bitwiseMask())).Intersect(w.Full())
}

// And returns a superset of x & y for x in s and y in o. The result never
// exceeds the width of its operands, so And takes no Width.
func (s Set) And(o Set) Set {
	if s.IsEmpty() || o.IsEmpty() {
		return emptySet
	}
	left := splitAtZero(s.rangeArray())
	right := splitAtZero(o.rangeArray())
	// Coarsen operands with more than three intervals.
	if len(left) > 6 {
		left = splitAtZero([]int64{left[0], left[len(left)-1]})
	}
	if len(right) > 6 {
		right = splitAtZero([]int64{right[0], right[len(right)-1]})
	}
	global := s.bitwiseMask().And(o.bitwiseMask())
	global = BitString{bits: global.bits | ^global.mask, mask: ^uint64(0)}
	result := emptySet
	for i := 0; i < len(left); i += 2 {
		for j := 0; j < len(right); j += 2 {
			result = result.Union(andIntervals(left[i], left[i+1], right[j], right[j+1], global))
		}
	}
	return result
}

func andIntervals(leftFrom, leftTo, rightFrom, rightTo int64, global BitString) Set {
	leftBits := BitStringFromRange(leftFrom, leftTo)
	rightBits := BitStringFromRange(rightFrom, rightTo)
	bits := fromBits(leftBits.And(rightBits).And(global))
	if leftFrom == leftTo && rightFrom == rightTo {
		return Point(leftFrom & rightFrom & int64(global.bits|^global.mask)).Intersect(bits)
	}
	if leftFrom == leftTo && popCount(uint64(leftFrom+1)) == 1 {
		return maskRange(rightFrom, rightTo, leftFrom).Intersect(bits)
	}
	if rightFrom == rightTo && popCount(uint64(rightFrom+1)) == 1 {
		return maskRange(leftFrom, leftTo, rightFrom).Intersect(bits)
	}
	return bits
}

// maskRange applies a mask of the form 0..01..1 to the interval [from, to]
// of one sign.
func maskRange(from, to, mask int64) Set {
	if uint64(to-from) >= uint64(mask) {
		return rng(0, mask)
	}
	lo, hi := from&mask, to&mask
	if lo < hi {
		return rng(lo, hi)
	}
	return disjoint(0, hi, lo, mask)
}

// fromBits returns the values matching b. The result may contain more.
func fromBits(b BitString) Set {
	if b.Known() {
		return Point(int64(b.bits))
	}
	var from int64
	i := 63
	for ; i >= 0 && b.Get(i) != Unknown; i-- {
		if b.Get(i) == One {
			from = int64(setBit(uint64(from), i))
		}
	}
	var to int64
	if i == 63 {
		to = -1 | from
	} else {
		to = (int64(1)<<uint(i+1) - 1) | from
	}
	j := 0
	for ; j < i && b.Get(j) != Unknown; j++ {
		if b.Get(j) == Zero {
			to = int64(clearBit(uint64(to), j))
		}
	}
	if i == j {
		// A single unknown bit leaves two values.
		return Point(int64(b.bits & b.mask)).Union(Point(int64(b.bits | ^b.mask)))
	}
	modBits := ^uint64(0)
	for rem := 0; rem < 64; rem++ {
		for pos := 0; pos < 6; pos++ {
			if b.Get(pos) == tritOf(!isSet(uint64(rem), pos)) {
				modBits = clearBit(modBits, rem)
				break
			}
		}
	}
	if from >= 0 && to < 0 {
		from, to = minInt64, maxInt64
	}
	if from < to {
		return modRange(from, to, 64, modBits)
	}
	return modRange(to, from, 64, modBits)
}
