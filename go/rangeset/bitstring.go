package rangeset

import "strings"

// Trit is the state of a single bit in a BitString.
type Trit int8

const (
	Unknown Trit = iota
	Zero
	One
)

func tritOf(b bool) Trit {
	if b {
		return One
	}
	return Zero
}

func (t Trit) String() string {
	switch t {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "?"
	}
}

// A BitString is a 64-bit value in which every bit is either known to
// be 0, known to be 1, or unknown. Mask marks the known bits, Bits holds
// their values.
type BitString struct {
	bits uint64
	mask uint64
}

var unknownBits = BitString{}

// NewBitString returns a BitString whose known bits are those set in mask,
// with values taken from bits.
func NewBitString(bits, mask uint64) BitString {
	return BitString{bits: bits & mask, mask: mask}
}

// BitStringOf returns a BitString with all bits known.
func BitStringOf(v int64) BitString {
	return BitString{bits: uint64(v), mask: ^uint64(0)}
}

// BitStringFromRange returns the BitString describing every value in
// [from, to]: the high bits common to both bounds are known, the rest are
// unknown.
func BitStringFromRange(from, to int64) BitString {
	if from == to {
		return BitStringOf(from)
	}
	hi := highestOneBit(uint64(from ^ to))
	mask := -(hi << 1)
	return NewBitString(uint64(from), mask)
}

func (b BitString) Bits() uint64 { return b.bits }
func (b BitString) Mask() uint64 { return b.mask }

// Known reports whether every bit is known.
func (b BitString) Known() bool { return b.mask == ^uint64(0) }

// Get returns the state of bit i.
func (b BitString) Get(i int) Trit {
	if !isSet(b.mask, i) {
		return Unknown
	}
	return tritOf(isSet(b.bits, i))
}

// And returns the bits of x&y for any x matching b and y matching o.
func (b BitString) And(o BitString) BitString {
	mask := (b.mask & o.mask) | (b.mask &^ b.bits) | (o.mask &^ o.bits)
	return NewBitString(b.bits&o.bits, mask)
}

// Or returns the bits of x|y for any x matching b and y matching o.
func (b BitString) Or(o BitString) BitString {
	mask := (b.mask & o.mask) | (b.mask & b.bits) | (o.mask & o.bits)
	return NewBitString(b.bits|o.bits, mask)
}

// Xor returns the bits of x^y for any x matching b and y matching o.
func (b BitString) Xor(o BitString) BitString {
	return NewBitString(b.bits^o.bits, b.mask&o.mask)
}

// Intersect returns the BitString matched by the values that match both b
// and o. It returns false if b and o disagree on a bit known to both.
func (b BitString) Intersect(o BitString) (BitString, bool) {
	common := b.mask & o.mask
	if b.bits&common != o.bits&common {
		return BitString{}, false
	}
	return NewBitString(b.bits|o.bits, b.mask|o.mask), true
}

// Union returns a BitString matching every value matched by b or o.
func (b BitString) Union(o BitString) BitString {
	mask := b.mask & o.mask &^ (b.bits ^ o.bits)
	return NewBitString(b.bits, mask)
}

func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(64)
	for i := 63; i >= 0; i-- {
		sb.WriteString(b.Get(i).String())
	}
	return sb.String()
}
