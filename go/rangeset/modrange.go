package rangeset

// maxMod is the largest modulus a KindModRange can track.
const maxMod = 64

// ModRange returns the members of [from, to] whose remainder modulo mod is
// one of the bits set in bits: bit 0 admits multiples of mod, bit 1 values
// congruent to 1, and so on.
//
// A modulus of 1, or one larger than 64, isn't tracked and the plain range
// is returned. A modulus below 1 degrades the same way. The bounds of the
// result are tightened to its smallest and largest members, and the
// modulus is reduced where that loses nothing.
func ModRange(from, to int64, mod int, bits uint64) Set {
	if to < from {
		return emptySet
	}
	if mod < 1 {
		return rng(from, to)
	}
	if mod <= maxMod {
		bits &= lowMask(mod)
	}
	return modRange(from, to, mod, bits)
}

func modRange(from, to int64, mod int, bits uint64) Set {
	if bits == 0 {
		return emptySet
	}
	if mod == 1 || mod > maxMod {
		return Range(from, to)
	}
	// Move the bounds onto the nearest members.
	rotated := rotateRemainders(bits, mod, remainder(from, mod))
	nf := from + int64(trailingZeros(rotated))
	if nf < from {
		return emptySet
	}
	toBit := (remainder(to, mod) + 1) % mod
	rotated = rotateRemainders(bits, mod, toBit)
	nt := to - int64(mod-(64-leadingZeros(rotated)))
	if nt > to {
		return emptySet
	}
	from, to = nf, nt

	if from > to {
		return emptySet
	}
	if from == to {
		return Point(from)
	}
	// A short range can use a smaller modulus.
	if length := to - from; length > 0 && length <= int64(mod/2) {
		for newMod := int(length); newMod <= mod/2; newMod++ {
			if mod%newMod != 0 {
				continue
			}
			var newBits uint64
			for i := from; i >= from && i <= to; i++ {
				if isSet(bits, remainder(i, mod)) {
					newBits = setBit(newBits, remainder(i, newMod))
				}
			}
			mod, bits = newMod, newBits
			if bits == 0 {
				return emptySet
			}
			break
		}
	}
	// Symmetrical remainders halve the modulus.
	if mod%2 == 0 {
		half := mod / 2
		if extractBits(bits, 0, half) == extractBits(bits, half, half) {
			return modRange(from, to, half, extractBits(bits, half, half))
		}
	}
	if mod == 1 || popCount(bits) == mod {
		return rng(from, to)
	}
	s := Set{kind: KindModRange, from: from, to: to, mod: mod, bits: bits}
	if s.containsInterval(from, to) {
		return rng(from, to)
	}
	return s
}

func (s Set) modMask() uint64 { return lowMask(s.mod) }

func (s Set) lcm(otherMod int) int {
	return s.mod * otherMod / gcd(s.mod, otherMod)
}

// widenBits repeats the remainder mask to cover a multiple of the
// modulus.
func (s Set) widenBits(targetMod int) uint64 {
	if targetMod > maxMod || targetMod%s.mod != 0 {
		panic("rangeset: bad target modulus")
	}
	result := s.bits
	for shift := targetMod - s.mod; shift > 0; shift -= s.mod {
		result |= s.bits << uint(shift)
	}
	return result
}

// containsInterval reports whether every value in [from, to] is a member
// of the KindModRange s.
func (s Set) containsInterval(from, to int64) bool {
	if from < s.from || to > s.to {
		return false
	}
	if to == from {
		return s.Contains(from)
	}
	if to-from < 0 || to-from >= int64(s.mod) {
		return false
	}
	fromBit := remainder(from, s.mod)
	toBit := remainder(to, s.mod)
	if fromBit < toBit {
		return trailingZeros(^(s.bits >> uint(fromBit))) > toBit-fromBit
	}
	return trailingZeros(^s.bits) > toBit &&
		64-leadingZeros(^s.bits&s.modMask()) <= fromBit
}

func (s Set) modContainsSet(o Set) bool {
	if o.kind == KindModRange {
		if o.from < s.from || o.to > s.to {
			return false
		}
		if lcm := s.lcm(o.mod); lcm <= maxMod {
			return ^s.widenBits(lcm)&o.widenBits(lcm) == 0
		}
	}
	arr := o.rangeArray()
	for i := 0; i < len(arr); i += 2 {
		if !s.containsInterval(arr[i], arr[i+1]) {
			return false
		}
	}
	return true
}

func (s Set) modSubtract(o Set) Set {
	switch o.kind {
	case KindPoint:
		if o.from == s.from {
			return modRange(s.from+1, s.to, s.mod, s.bits)
		}
		if o.from == s.to {
			return modRange(s.from, s.to-1, s.mod, s.bits)
		}
	case KindRange:
		if o.from <= s.from && o.to >= s.from && o.to < s.to {
			return modRange(o.to+1, s.to, s.mod, s.bits)
		}
		if o.from > s.from && o.from <= s.to && o.to >= s.to {
			return modRange(s.from, o.from-1, s.mod, s.bits)
		}
	}
	return s.intervalSubtract(o)
}

func (s Set) modIntersect(o Set) Set {
	in := s.intervalIntersect(o)
	if in.kind == KindDisjoint {
		lo, hi := in.from, in.to
		if diff := hi - lo; diff > 0 && diff < 64 {
			// A short result is described exactly by a larger modulus.
			for newMod := int(diff) + 1; newMod <= maxMod; newMod++ {
				if newMod%s.mod != 0 {
					continue
				}
				bits := s.widenBits(newMod)
				for off := int64(0); off <= diff; off++ {
					pos := lo + off
					bit := remainder(pos, newMod)
					if isSet(bits, bit) && !in.Contains(pos) {
						bits = clearBit(bits, bit)
					}
				}
				return modRange(lo, hi, newMod, bits)
			}
		}
		emptyHoles := true
		for i := 2; i < len(in.ranges); i += 2 {
			if rng(in.ranges[i-1]+1, in.ranges[i]-1).Intersects(s) {
				emptyHoles = false
				break
			}
		}
		if emptyHoles {
			in = rng(lo, hi)
		}
	}
	if in.kind != KindRange && in.kind != KindModRange && in.kind != KindPoint {
		return in
	}
	bits, mod := s.bits, s.mod
	if o.kind == KindModRange {
		if lcm := s.lcm(o.mod); lcm <= maxMod {
			bits = s.widenBits(lcm) & o.widenBits(lcm)
			mod = lcm
		} else if o.mod > s.mod {
			// The common modulus is too big; keep the finer one.
			bits, mod = o.bits, o.mod
		}
	}
	return modRange(in.from, in.to, mod, bits)
}

func (s Set) modIntersects(o Set) bool {
	if o.kind == KindPoint {
		return s.Contains(o.from)
	}
	if o.kind == KindModRange {
		if lcm := s.lcm(o.mod); lcm <= maxMod && o.widenBits(lcm)&s.widenBits(lcm) == 0 {
			return false
		}
	}
	arr := o.rangeArray()
	for i := 0; i < len(arr) && arr[i] <= s.to; i += 2 {
		if s.to >= arr[i] && s.from <= arr[i+1] && !modRange(arr[i], arr[i+1], s.mod, s.bits).IsEmpty() {
			return true
		}
	}
	return false
}

func (s Set) modUnion(o Set) Set {
	switch o.kind {
	case KindModRange:
		if lcm := s.lcm(o.mod); lcm <= maxMod {
			bits := s.widenBits(lcm) | o.widenBits(lcm)
			if s.to >= o.from && s.from <= o.to ||
				s.to < o.from && modRange(s.to+1, o.from-1, lcm, bits).IsEmpty() ||
				o.to < s.from && modRange(o.to+1, s.from-1, lcm, bits).IsEmpty() {
				return modRange(min64(s.from, o.from), max64(s.to, o.to), lcm, bits)
			}
		}
	case KindPoint:
		v := o.from
		if isSet(s.bits, remainder(v, s.mod)) {
			if v >= s.from && v <= s.to {
				return s
			}
			if v < s.from && modRange(v+1, s.from-1, s.mod, s.bits).IsEmpty() ||
				v > s.to && modRange(s.to+1, v-1, s.mod, s.bits).IsEmpty() {
				return modRange(min64(s.from, v), max64(s.to, v), s.mod, s.bits)
			}
		}
		return o.pointUnion(rng(s.from, s.to))
	}
	return s.intervalUnion(o)
}

func (s Set) modNegate(w Width) Set {
	negated := s.intervalNegate(w)
	if negated.kind != KindRange {
		return negated
	}
	// Remainder 0 stays in place, the rest are mirrored.
	reverse := reverse64(s.bits &^ 1)
	var nb uint64
	if s.mod == 64 {
		nb = reverse << 1
	} else {
		nb = reverse >> uint(64-s.mod-1)
	}
	return modRange(negated.from, negated.to, s.mod, nb|s.bits&1)
}

func (s Set) modPlus(o Set, w Width) Set {
	set := s.intervalPlus(o, w)
	var bit int
	switch {
	case o.kind == KindPoint:
		bit = remainder(o.from, s.mod)
	case o.kind == KindModRange && o.mod == s.mod && popCount(o.bits) == 1:
		bit = trailingZeros(o.bits)
	default:
		return set
	}
	bits := rotateRemainders(s.bits, s.mod, s.mod-bit)
	// Wrap-around preserves congruences modulo powers of two only.
	keep := popCount(uint64(s.mod)) == 1 || !s.AdditionMayOverflow(o, w)
	arr := set.rangeArray()
	result := emptySet
	for i := 0; i < len(arr); i += 2 {
		var plus Set
		if keep {
			plus = modRange(arr[i], arr[i+1], s.mod, bits)
		} else {
			plus = rng(arr[i], arr[i+1])
		}
		result = result.Union(plus)
	}
	return result
}

func (s Set) modMod(divisor Set) Set {
	if d, ok := divisor.ConstantValue(); ok && d > 1 && d <= maxMod {
		dv := int(d)
		if lcm := s.lcm(dv); lcm <= maxMod {
			from := clamp64(s.from, -d+1, 0)
			to := clamp64(s.to, 0, d-1)
			possible := s.widenBits(lcm)
			for 64-leadingZeros(possible) > dv {
				possible = extractBits(possible, dv, 64) | extractBits(possible, 0, dv)
			}
			return modRange(from, to, dv, possible)
		}
	}
	return rng(s.from, s.to).Mod(divisor)
}

// modBitwiseMask derives known low bits from the remainders that are
// congruent modulo the largest power of two dividing the modulus.
func (s Set) modBitwiseMask() BitString {
	known := trailingZeros(uint64(s.mod))
	pow := 1 << uint(known)
	result := ^uint64(0)
	mask := uint64(pow - 1)
	for rem := 0; rem < s.mod; rem++ {
		if !isSet(s.bits, rem) {
			continue
		}
		set := uint64(rem % pow)
		if result != ^uint64(0) {
			mask &^= result ^ set
		}
		result = set
	}
	rangeMask := BitStringFromRange(s.from, s.to)
	in, ok := NewBitString(result, mask).Intersect(rangeMask)
	if !ok {
		return rangeMask
	}
	return in
}
