package rangeset

// Contains reports whether v is a member of s.
func (s Set) Contains(v int64) bool {
	switch s.kind {
	case KindEmpty:
		return false
	case KindPoint:
		return s.from == v
	case KindRange:
		return s.from <= v && v <= s.to
	case KindModRange:
		return s.from <= v && v <= s.to && isSet(s.bits, remainder(v, s.mod))
	case KindDisjoint:
		for i := 0; i < len(s.ranges); i += 2 {
			if v >= s.ranges[i] && v <= s.ranges[i+1] {
				return true
			}
		}
		return false
	default:
		panic("unreachable")
	}
}

// ContainsSet reports whether every member of o is a member of s.
func (s Set) ContainsSet(o Set) bool {
	switch s.kind {
	case KindEmpty:
		return o.IsEmpty()
	case KindPoint:
		return o.IsEmpty() || s.Equal(o)
	case KindRange:
		return o.IsEmpty() || o.from >= s.from && o.to <= s.to
	case KindModRange:
		return s.modContainsSet(o)
	case KindDisjoint:
		if o.IsEmpty() || s.Equal(o) {
			return true
		}
		if o.kind == KindPoint {
			return s.Contains(o.from)
		}
		result := o
		for i := 0; i < len(s.ranges); i += 2 {
			result = result.Subtract(rng(s.ranges[i], s.ranges[i+1]))
			if result.IsEmpty() {
				return true
			}
		}
		return false
	default:
		panic("unreachable")
	}
}

// Intersects reports whether s and o have at least one member in common.
func (s Set) Intersects(o Set) bool {
	switch s.kind {
	case KindEmpty:
		return false
	case KindPoint:
		return o.Contains(s.from)
	case KindRange:
		switch o.kind {
		case KindEmpty:
			return false
		case KindModRange:
			return o.modIntersects(s)
		case KindDisjoint:
			for i := 0; i < len(o.ranges) && o.ranges[i] <= s.to; i += 2 {
				if s.to >= o.ranges[i] && s.from <= o.ranges[i+1] {
					return true
				}
			}
			return false
		}
		return s.to >= o.from && s.from <= o.to
	case KindModRange:
		if o.IsEmpty() {
			return false
		}
		return s.modIntersects(o)
	case KindDisjoint:
		switch o.kind {
		case KindEmpty:
			return false
		case KindPoint:
			return s.Contains(o.from)
		case KindModRange:
			return o.modIntersects(s)
		}
		other := o.rangeArray()
		a, b := 0, 0
		for {
			if s.ranges[a] <= other[b+1] && other[b] <= s.ranges[a+1] {
				return true
			}
			if s.ranges[a] > other[b+1] {
				b += 2
				if b >= len(other) {
					return false
				}
			} else {
				a += 2
				if a >= len(s.ranges) {
					return false
				}
			}
		}
	default:
		panic("unreachable")
	}
}

// Union returns a set containing the members of both s and o. The result
// may contain additional values when the exact union isn't representable.
func (s Set) Union(o Set) Set {
	switch s.kind {
	case KindEmpty:
		return o
	case KindPoint:
		return s.pointUnion(o)
	case KindRange:
		return s.intervalUnion(o)
	case KindModRange:
		return s.modUnion(o)
	case KindDisjoint:
		if o.kind != KindDisjoint {
			return o.Union(s)
		}
		if s.Equal(o) || o.ContainsSet(s) {
			return o
		}
		if s.ContainsSet(o) {
			return s
		}
		result := o
		for i := 0; i < len(s.ranges); i += 2 {
			result = rng(s.ranges[i], s.ranges[i+1]).Union(result)
		}
		return result
	default:
		panic("unreachable")
	}
}

func (s Set) pointUnion(o Set) Set {
	v := s.from
	if o.IsEmpty() || s.Equal(o) {
		return s
	}
	if o.Contains(v) {
		return o
	}
	switch o.kind {
	case KindPoint:
		lo, hi := min64(v, o.from), max64(v, o.from)
		if lo+1 == hi {
			return rng(lo, hi)
		}
		return disjoint(lo, lo, hi, hi)
	case KindModRange:
		return o.modUnion(s)
	case KindRange:
		if v < o.from {
			if v+1 == o.from {
				return rng(v, o.to)
			}
			return disjoint(v, v, o.from, o.to)
		}
		if v-1 == o.to {
			return rng(o.from, v)
		}
		return disjoint(o.from, o.to, v, v)
	}
	longs := o.ranges
	pos := -binarySearch(longs, v) - 1
	touchLeft := pos > 0 && longs[pos-1]+1 == v
	touchRight := pos < len(longs)-1 && v+1 == longs[pos]
	var result []int64
	switch {
	case touchLeft && touchRight:
		result = make([]int64, 0, len(longs)-2)
		result = append(result, longs[:pos-1]...)
		result = append(result, longs[pos+1:]...)
	case touchLeft:
		result = append([]int64(nil), longs...)
		result[pos-1] = v
	case touchRight:
		result = append([]int64(nil), longs...)
		result[pos] = v
	default:
		result = make([]int64, 0, len(longs)+2)
		result = append(result, longs[:pos]...)
		result = append(result, v, v)
		result = append(result, longs[pos:]...)
	}
	return fromRanges(result, len(result))
}

// intervalUnion unites a KindRange or KindModRange s, treated as its
// bounding interval, with o.
func (s Set) intervalUnion(o Set) Set {
	if o.IsEmpty() || s.Equal(o) {
		return s
	}
	switch o.kind {
	case KindPoint:
		return o.pointUnion(s)
	case KindRange, KindModRange:
		if o.from <= s.to && s.from <= o.to ||
			o.to < s.from && o.to+1 == s.from ||
			o.from > s.to && s.to+1 == o.from {
			return rng(min64(s.from, o.from), max64(s.to, o.to))
		}
		if o.to < s.from {
			return disjoint(o.from, o.to, s.from, s.to)
		}
		return disjoint(s.from, s.to, o.from, o.to)
	}
	longs := o.ranges
	minIndex := binarySearch(longs, s.from)
	if minIndex < 0 {
		minIndex = -minIndex - 1
		if minIndex%2 == 0 && minIndex > 0 && longs[minIndex-1]+1 == s.from {
			minIndex--
		}
	} else if minIndex%2 == 0 {
		minIndex++
	}
	maxIndex := binarySearch(longs, s.to)
	if maxIndex < 0 {
		maxIndex = -maxIndex - 1
		if maxIndex%2 == 0 && maxIndex < len(longs) && s.to+1 == longs[maxIndex] {
			maxIndex++
		}
	} else if maxIndex%2 == 0 {
		maxIndex++
	}
	result := make([]int64, 0, len(longs)+2)
	result = append(result, longs[:minIndex]...)
	if minIndex%2 == 0 {
		result = append(result, s.from)
	}
	if maxIndex%2 == 0 {
		result = append(result, s.to)
	}
	result = append(result, longs[maxIndex:]...)
	return fromRanges(result, len(result))
}

// TryUnionExactly returns the union of s and o if it can be represented
// without adding values, and false otherwise.
func (s Set) TryUnionExactly(o Set) (Set, bool) {
	if s.kind == KindModRange {
		if s.ContainsSet(o) {
			return s, true
		}
		if o.ContainsSet(s) {
			return o, true
		}
		return Set{}, false
	}
	if o.kind == KindModRange {
		return o.TryUnionExactly(s)
	}
	return s.Union(o), true
}

// Intersect returns the members s and o have in common. The result may
// contain additional values when the exact intersection isn't
// representable.
func (s Set) Intersect(o Set) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		if o.Contains(s.from) {
			return s
		}
		return emptySet
	case KindRange:
		return s.intervalIntersect(o)
	case KindModRange:
		return s.modIntersect(o)
	case KindDisjoint:
		if s.Equal(o) {
			return s
		}
		switch o.kind {
		case KindEmpty:
			return o
		case KindPoint, KindRange, KindModRange:
			return o.Intersect(s)
		}
		return s.Subtract(int64Range.Subtract(o))
	default:
		panic("unreachable")
	}
}

// intervalIntersect intersects the bounding interval of a KindRange or
// KindModRange s with o.
func (s Set) intervalIntersect(o Set) Set {
	if s.Equal(o) {
		return s
	}
	if o.IsEmpty() {
		return o
	}
	if o.kind == KindModRange && s.kind != KindModRange || o.kind == KindPoint {
		return o.Intersect(s)
	}
	if o.isInterval() {
		from, to := o.from, o.to
		if from <= s.from && to >= s.to {
			return s
		}
		if from >= s.from && to <= s.to {
			return o
		}
		from, to = max64(from, s.from), min64(to, s.to)
		if from <= to {
			return rng(from, to)
		}
		return emptySet
	}
	result := make([]int64, 0, len(o.ranges))
	for i := 0; i < len(o.ranges); i += 2 {
		result = append(result, s.Intersect(rng(o.ranges[i], o.ranges[i+1])).rangeArray()...)
	}
	return fromRanges(result, len(result))
}

// Subtract returns the members of s that aren't members of o. The result
// may contain additional values when the exact difference isn't
// representable.
func (s Set) Subtract(o Set) Set {
	switch s.kind {
	case KindEmpty:
		return s
	case KindPoint:
		if o.Contains(s.from) {
			return emptySet
		}
		return s
	case KindRange:
		return s.intervalSubtract(o)
	case KindModRange:
		return s.modSubtract(o)
	case KindDisjoint:
		if o.IsEmpty() {
			return s
		}
		if s.Equal(o) {
			return emptySet
		}
		result := make([]int64, 0, len(s.ranges)+len(o.rangeArray()))
		for i := 0; i < len(s.ranges); i += 2 {
			result = append(result, rng(s.ranges[i], s.ranges[i+1]).Subtract(o).rangeArray()...)
		}
		return fromRanges(result, len(result))
	default:
		panic("unreachable")
	}
}

// intervalSubtract removes o from the bounding interval of a KindRange or
// KindModRange s.
func (s Set) intervalSubtract(o Set) Set {
	if o.IsEmpty() {
		return s
	}
	if s.Equal(o) {
		return emptySet
	}
	switch o.kind {
	case KindPoint:
		v := o.from
		if v < s.from || v > s.to {
			return s
		}
		if v == s.from {
			return rng(s.from+1, s.to)
		}
		if v == s.to {
			return rng(s.from, s.to-1)
		}
		return disjoint(s.from, v-1, v+1, s.to)
	case KindRange, KindModRange:
		from, to := o.from, o.to
		if to < s.from || from > s.to {
			return s
		}
		toJoin := emptySet
		if o.kind == KindModRange {
			// Values of o's interval that o excludes stay.
			toJoin = modRange(max64(from, s.from), min64(to, s.to), o.mod, ^o.bits&o.modMask())
		}
		if from <= s.from && to >= s.to {
			return toJoin
		}
		if from > s.from && to < s.to {
			return disjoint(s.from, from-1, to+1, s.to).Union(toJoin)
		}
		if from <= s.from {
			return rng(to+1, s.to).Union(toJoin)
		}
		return rng(s.from, from-1).Union(toJoin)
	}
	result := s
	for i := 0; i < len(o.ranges); i += 2 {
		result = result.Subtract(rng(o.ranges[i], o.ranges[i+1]))
		if result.IsEmpty() {
			return result
		}
	}
	return result
}

// Without returns s with v removed.
func (s Set) Without(v int64) Set {
	return s.Subtract(Point(v))
}

// Relation is a comparison between two integers.
type Relation uint8

const (
	EQ Relation = iota + 1
	NE
	LT
	LE
	GT
	GE
)

func (r Relation) String() string {
	switch r {
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "Relation(?)"
	}
}

// Negate returns the relation that holds exactly when r doesn't.
func (r Relation) Negate() Relation {
	switch r {
	case EQ:
		return NE
	case NE:
		return EQ
	case LT:
		return GE
	case LE:
		return GT
	case GT:
		return LE
	case GE:
		return LT
	default:
		return r
	}
}

// FromRelation returns every int64 x for which "x rel y" holds for some
// member y of s. For example, {0..10} with GT yields {1..MaxInt64}.
func (s Set) FromRelation(rel Relation) (Set, bool) {
	if s.IsEmpty() {
		return emptySet, true
	}
	switch rel {
	case EQ:
		return s, true
	case NE:
		if v, ok := s.ConstantValue(); ok {
			return int64Range.Without(v), true
		}
		return int64Range, true
	case GT:
		if s.from == maxInt64 {
			return emptySet, true
		}
		return rng(s.from+1, maxInt64), true
	case GE:
		return rng(s.from, maxInt64), true
	case LE:
		return rng(minInt64, s.to), true
	case LT:
		if s.to == minInt64 {
			return emptySet, true
		}
		return rng(minInt64, s.to-1), true
	default:
		return Set{}, false
	}
}

// FromRemainder returns the values x for which x % mod may be a member of
// remainders. The result may contain additional values.
func FromRemainder(mod int64, remainders Set) Set {
	if remainders.IsEmpty() {
		return emptySet
	}
	lo, hi := int64(minInt64), int64(maxInt64)
	if remainders.from > 0 {
		lo = 1
	}
	if remainders.to < 0 {
		hi = -1
	}
	if mod > 1 && mod <= maxMod {
		var bits uint64
		if remainders.Contains(0) {
			bits = 1
		}
		for rem := int64(1); rem < mod; rem++ {
			if remainders.Contains(rem) || remainders.Contains(rem-mod) {
				bits = setBit(bits, int(rem))
			}
		}
		return modRange(lo, hi, int(mod), bits)
	}
	return Range(lo, hi)
}
