// Package rangeset implements an abstract domain over machine integers.
//
// A Set over-approximates the values an integer expression may hold. It
// is one of five shapes: the empty set, a single point, a contiguous
// interval, an interval restricted to a set of remainders modulo a small
// modulus (at most 64), or a union of at least two disjoint, non-adjacent
// intervals. Every operation returns the smallest shape that describes
// its result; equal sets therefore always have equal representations.
//
// Arithmetic is performed with the wrap-around semantics of 32-bit or
// 64-bit two's complement integers, selected by a Width.
//
// Sets are immutable values and may be shared freely between goroutines.
package rangeset

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Kind identifies the shape of a Set.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPoint
	KindRange
	KindModRange
	KindDisjoint
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPoint:
		return "point"
	case KindRange:
		return "range"
	case KindModRange:
		return "modrange"
	case KindDisjoint:
		return "disjoint"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// A Set is an immutable set of int64 values. The zero value is the empty
// set.
type Set struct {
	kind Kind
	// Bounds, inclusive. For points, from == to.
	from, to int64
	// Modulus and allowed remainders of a KindModRange. Bit i of bits is
	// set if values congruent to i modulo mod are members.
	mod  int
	bits uint64
	// Sorted bounds of the sub-ranges of a KindDisjoint, pairwise
	// inclusive. Never modified after construction.
	ranges []int64
}

var (
	emptySet   = Set{}
	zero       = Set{kind: KindPoint}
	one        = Set{kind: KindPoint, from: 1, to: 1}
	int64Range = Set{kind: KindRange, from: minInt64, to: maxInt64}
	int32Range = Set{kind: KindRange, from: minInt32, to: maxInt32}
	indexRange = Set{kind: KindRange, from: 0, to: maxInt32}
)

// Empty returns the empty set.
func Empty() Set { return emptySet }

// All returns the set of every value representable in w.
func All(w Width) Set { return w.Full() }

// IndexRange returns the set of valid indices, [0, MaxInt32].
func IndexRange() Set { return indexRange }

// Point returns the set containing only v.
func Point(v int64) Set {
	switch v {
	case 0:
		return zero
	case 1:
		return one
	default:
		return Set{kind: KindPoint, from: v, to: v}
	}
}

// Range returns the set of all values between from and to, inclusive.
// It returns the empty set if to < from.
func Range(from, to int64) Set {
	if to < from {
		return emptySet
	}
	return rng(from, to)
}

// rng is Range for bounds already known to be ordered.
func rng(from, to int64) Set {
	if from == to {
		return Point(from)
	}
	if to < from {
		panic(fmt.Sprintf("rangeset: invalid range %d..%d", from, to))
	}
	return Set{kind: KindRange, from: from, to: to}
}

// newDisjoint takes ownership of a sorted array of sub-range bounds.
// Sub-ranges that touch are merged; overlapping ones are a bug.
func newDisjoint(ranges []int64) Set {
	if len(ranges) < 4 || len(ranges)%2 != 0 {
		panic(fmt.Sprintf("rangeset: bad length %d: %v", len(ranges), ranges))
	}
	n := 0
	for i := 0; i < len(ranges); i += 2 {
		if ranges[i+1] < ranges[i] {
			panic(fmt.Sprintf("rangeset: bad sub-range #%d: %v", i/2, ranges))
		}
		if i > 0 && (ranges[i-1] == maxInt64 || ranges[i-1]+1 > ranges[i]) {
			panic(fmt.Sprintf("rangeset: bad sub-ranges #%d and #%d: %v", i/2-1, i/2, ranges))
		}
		if n > 0 && ranges[n-1]+1 == ranges[i] {
			ranges[n-1] = ranges[i+1]
			continue
		}
		ranges[n], ranges[n+1] = ranges[i], ranges[i+1]
		n += 2
	}
	if n == 2 {
		return rng(ranges[0], ranges[1])
	}
	ranges = ranges[:n:n]
	return Set{kind: KindDisjoint, from: ranges[0], to: ranges[n-1], ranges: ranges}
}

// disjoint builds a set from literal sub-range bounds.
func disjoint(bounds ...int64) Set { return newDisjoint(bounds) }

// fromRanges builds a set from the first n elements of a sorted bounds
// array whose sub-ranges don't touch.
func fromRanges(ranges []int64, n int) Set {
	switch n {
	case 0:
		return emptySet
	case 2:
		return rng(ranges[0], ranges[1])
	default:
		out := make([]int64, n)
		copy(out, ranges[:n])
		return newDisjoint(out)
	}
}

// Kind returns the shape of s.
func (s Set) Kind() Kind { return s.kind }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s.kind == KindEmpty }

// Min returns the smallest member of s, or ErrEmptySet.
func (s Set) Min() (int64, error) {
	if s.kind == KindEmpty {
		return 0, ErrEmptySet
	}
	return s.from, nil
}

// Max returns the largest member of s, or ErrEmptySet.
func (s Set) Max() (int64, error) {
	if s.kind == KindEmpty {
		return 0, ErrEmptySet
	}
	return s.to, nil
}

// lo and hi are Min and Max for sets known to be non-empty.
func (s Set) lo() int64 {
	if s.kind == KindEmpty {
		panic("rangeset: bounds of empty set")
	}
	return s.from
}

func (s Set) hi() int64 {
	if s.kind == KindEmpty {
		panic("rangeset: bounds of empty set")
	}
	return s.to
}

// ConstantValue returns the only member of s, if s has exactly one.
func (s Set) ConstantValue() (int64, bool) {
	if s.kind == KindPoint {
		return s.from, true
	}
	return 0, false
}

// Congruence returns the modulus and the bit mask of allowed remainders of
// a KindModRange set.
func (s Set) Congruence() (mod int, bits uint64, ok bool) {
	if s.kind != KindModRange {
		return 0, 0, false
	}
	return s.mod, s.bits, true
}

// Equal reports whether s and o contain the same values.
func (s Set) Equal(o Set) bool {
	if s.kind != o.kind || s.from != o.from || s.to != o.to {
		return false
	}
	switch s.kind {
	case KindModRange:
		return s.mod == o.mod && s.bits == o.bits
	case KindDisjoint:
		if len(s.ranges) != len(o.ranges) {
			return false
		}
		for i := range s.ranges {
			if s.ranges[i] != o.ranges[i] {
				return false
			}
		}
	}
	return true
}

// isInterval reports whether s is a KindRange or KindModRange.
func (s Set) isInterval() bool { return s.kind == KindRange || s.kind == KindModRange }

// rangeArray returns the bounds of the intervals covering s. For a
// KindModRange that is the single interval [from, to]. The result must not
// be modified.
func (s Set) rangeArray() []int64 {
	switch s.kind {
	case KindEmpty:
		return nil
	case KindDisjoint:
		return s.ranges
	default:
		return []int64{s.from, s.to}
	}
}

// Interval is an inclusive pair of bounds.
type Interval struct {
	Lo, Hi int64
}

// AsRanges returns the contiguous intervals covering s, in ascending
// order. The intervals of a KindModRange cover values that aren't members.
func (s Set) AsRanges() []Interval {
	arr := s.rangeArray()
	out := make([]Interval, 0, len(arr)/2)
	for i := 0; i < len(arr); i += 2 {
		out = append(out, Interval{arr[i], arr[i+1]})
	}
	return out
}

// Values returns an iterator over the members of s in ascending order.
// The iterator may be restarted. Sets can have up to 2^64 members;
// callers must bound how many values they consume.
func (s Set) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		arr := s.rangeArray()
		for i := 0; i < len(arr); i += 2 {
			for v := arr[i]; ; v++ {
				if (s.kind != KindModRange || s.Contains(v)) && !yield(v) {
					return
				}
				if v == arr[i+1] {
					break
				}
			}
		}
	}
}

// IsCardinalityBigger reports whether s has more than cutoff members.
func (s Set) IsCardinalityBigger(cutoff int64) bool {
	switch s.kind {
	case KindEmpty:
		return cutoff < 0
	case KindPoint:
		return cutoff < 1
	case KindRange:
		diff := s.to - s.from
		return diff < 0 || diff >= cutoff
	case KindModRange:
		return s.modCardinalityBigger(cutoff)
	case KindDisjoint:
		var total int64
		for i := 0; i < len(s.ranges); i += 2 {
			diff := s.ranges[i+1] - s.ranges[i]
			if diff < 0 {
				return true
			}
			total += diff + 1
			if total < 0 || total > cutoff {
				return true
			}
		}
		return false
	default:
		panic("unreachable")
	}
}

func (s Set) modCardinalityBigger(cutoff int64) bool {
	mod := int64(s.mod)
	// bottom is the first multiple of mod at or after from. It wraps
	// near MaxInt64, which the bounds check below rejects.
	bottom := s.from
	if r := remainder(s.from, s.mod); r != 0 {
		bottom += mod - int64(r)
	}
	top := s.to - int64(remainder(s.to, s.mod))
	if bottom >= s.from && top > bottom && s.to >= top {
		count := int64(popCount(s.bits))
		whole, ok := mulExact(top/mod-bottom/mod, count)
		if !ok || whole < 0 || whole > cutoff {
			return true
		}
		for v := s.from; v < bottom; v++ {
			if isSet(s.bits, remainder(v, s.mod)) {
				whole++
			}
		}
		for v := top; ; v++ {
			if isSet(s.bits, remainder(v, s.mod)) {
				whole++
			}
			if v == s.to {
				break
			}
		}
		return whole < 0 || whole > cutoff
	}
	if cutoff < 0 {
		return true
	}
	var n int64
	for range s.Values() {
		n++
		if n > cutoff {
			return true
		}
	}
	return false
}

// binarySearch returns the index of key in a sorted slice, or
// -(insertion point)-1 if key isn't present.
func binarySearch(a []int64, key int64) int {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= key })
	if i < len(a) && a[i] == key {
		return i
	}
	return -i - 1
}

func formatNumber(v int64) string {
	switch v {
	case maxInt64:
		return "MaxInt64"
	case maxInt64 - 1:
		return "MaxInt64-1"
	case minInt64:
		return "MinInt64"
	case minInt64 + 1:
		return "MinInt64+1"
	case maxInt32:
		return "MaxInt32"
	case maxInt32 - 1:
		return "MaxInt32-1"
	case minInt32:
		return "MinInt32"
	case minInt32 + 1:
		return "MinInt32+1"
	default:
		return fmt.Sprint(v)
	}
}

func formatInterval(from, to int64) string {
	if from == to {
		return formatNumber(from)
	}
	sep := ".."
	if to-from == 1 {
		sep = ", "
	}
	return formatNumber(from) + sep + formatNumber(to)
}

// String returns the set in brace notation, e.g. {0..9, 11..20} or
// {0..98}: even.
func (s Set) String() string {
	switch s.kind {
	case KindEmpty:
		return "{}"
	case KindPoint:
		return "{" + formatNumber(s.from) + "}"
	case KindRange:
		return "{" + formatInterval(s.from, s.to) + "}"
	case KindModRange:
		return "{" + formatInterval(s.from, s.to) + "}: " + s.congruenceSuffix()
	case KindDisjoint:
		parts := make([]string, 0, len(s.ranges)/2)
		for i := 0; i < len(s.ranges); i += 2 {
			parts = append(parts, formatInterval(s.ranges[i], s.ranges[i+1]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("Set(%s)", s.kind)
	}
}

func (s Set) congruenceSuffix() string {
	if s.mod == 2 {
		if s.bits == 1 {
			return "even"
		}
		return "odd"
	}
	if s.bits == 1 {
		return fmt.Sprintf("divisible by %d", s.mod)
	}
	var rems []string
	for i := 0; i < s.mod; i++ {
		if isSet(s.bits, i) {
			rems = append(rems, fmt.Sprint(i))
		}
	}
	return fmt.Sprintf("<%s> mod %d", strings.Join(rems, ", "), s.mod)
}
