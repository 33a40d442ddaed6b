package rangeset

// PlusWiden is Plus for values computed repeatedly in a loop. It discards
// the bounds of its result, keeping at most a congruence, so that
// iterating it reaches a fixed point after a few steps.
func (s Set) PlusWiden(o Set, w Width) Set {
	if s.kind == KindPoint && o.kind == KindPoint {
		v1, v2 := s.from, o.from
		tz1, tz2 := 0, 0
		if v1 != 0 {
			tz1 = trailingZeros(uint64(v1))
		}
		if v2 != 0 {
			tz2 = trailingZeros(uint64(v2))
		}
		constant, mod := s, 1<<uint(min(6, tz2))
		if tz1 > tz2 {
			constant, mod = o, 1<<uint(min(6, tz1))
		}
		if mod < 2 {
			return w.Full()
		}
		return modRange(w.Min(), w.Max(), mod, 1).Plus(constant, w)
	}
	if s.kind == KindPoint && o.kind == KindModRange {
		v := s.from
		if v%int64(o.mod) == 0 {
			return modRange(w.Min(), w.Max(), o.mod, o.bits)
		}
		if o.bits == 1 {
			return s.Plus(o, w)
		}
		if v >= -64 && v < 64 {
			if g := gcd(int(abs64(v)), o.mod); g > 1 {
				// Fold the remainders onto the common divisor.
				var bits uint64
				for i := 0; i < o.mod/g; i++ {
					bits |= (o.bits >> uint(i*g)) & lowMask(g)
				}
				return modRange(w.Min(), w.Max(), g, bits)
			}
		}
	}
	if o.kind == KindPoint && s.kind == KindModRange {
		return o.PlusWiden(s, w)
	}
	return w.Full()
}

// MulWiden is Mul for values computed repeatedly in a loop. Only the
// parity of the result survives.
func (s Set) MulWiden(o Set, w Width) Set {
	switch {
	case s.Equal(zero):
		return s
	case o.Equal(zero):
		return o
	case s.Equal(one):
		return o
	case o.Equal(one):
		return s
	}
	two := Point(2)
	if s.Mod(two).Equal(zero) || o.Mod(two).Equal(zero) {
		return modRange(w.Min(), w.Max(), 2, 1)
	}
	return w.Full()
}
