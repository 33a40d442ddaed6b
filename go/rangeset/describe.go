package rangeset

import "fmt"

// Describe returns a short human-readable summary of s, such as ">= 0",
// "even" or "!= 1". typeRange is the set of values of the declared type;
// bounds that coincide with it are left out.
func (s Set) Describe(typeRange Set) string {
	switch s.kind {
	case KindEmpty:
		return "unknown"
	case KindPoint:
		return formatNumber(s.from)
	case KindRange:
		return s.describeRange(typeRange)
	case KindModRange:
		return s.describeModRange(typeRange)
	case KindDisjoint:
		return s.describeDisjoint(typeRange)
	default:
		return s.String()
	}
}

func twoValues(a, b string) string { return fmt.Sprintf("%s or %s", a, b) }

func inSet(s string) string { return "in " + s }

func (s Set) describeRange(typeRange Set) string {
	if !typeRange.IsEmpty() {
		if typeRange.from == s.from {
			if typeRange.to == s.to {
				return "any value"
			}
			return "<= " + formatNumber(s.to)
		}
		if typeRange.to == s.to {
			return ">= " + formatNumber(s.from)
		}
	}
	if s.to-s.from == 1 {
		return twoValues(formatNumber(s.from), formatNumber(s.to))
	}
	return inSet(s.String())
}

func (s Set) describeModRange(typeRange Set) string {
	suffix := s.congruenceSuffix()
	if !typeRange.IsEmpty() {
		// The type's range restricted to the same congruence.
		full := modRange(typeRange.lo(), typeRange.hi(), s.mod, s.bits)
		if !full.IsEmpty() {
			if full.from == s.from {
				if full.to == s.to {
					return suffix
				}
				return "<= " + formatNumber(s.to) + "; " + suffix
			}
			if full.to == s.to {
				return ">= " + formatNumber(s.from) + "; " + suffix
			}
		}
	}
	return inSet("{"+formatInterval(s.from, s.to)+"}") + "; " + suffix
}

func (s Set) describeDisjoint(typeRange Set) string {
	if !typeRange.IsEmpty() {
		diff := typeRange.Subtract(s)
		if v, ok := diff.ConstantValue(); ok {
			return "!= " + formatNumber(v)
		}
		if diff.kind == KindRange && !diff.Intersects(s) {
			var lo, hi string
			switch diff.from {
			case typeRange.from:
			case typeRange.from + 1:
				lo = formatNumber(typeRange.from)
			default:
				lo = "<= " + formatNumber(diff.from-1)
			}
			switch diff.to {
			case typeRange.to:
			case typeRange.to - 1:
				hi = formatNumber(typeRange.to)
			default:
				hi = ">= " + formatNumber(diff.to+1)
			}
			if lo == "" {
				return hi
			}
			if hi == "" {
				return lo
			}
			return twoValues(lo, hi)
		}
	}
	if len(s.ranges) == 4 && s.ranges[0] == s.ranges[1] && s.ranges[2] == s.ranges[3] {
		return twoValues(formatNumber(s.ranges[0]), formatNumber(s.ranges[2]))
	}
	return inSet(s.String())
}
