package pkg

func fn(x int32) {
	//rangecheck:ignore RC1000 the mask is documented
	if x&7 > 7 {
	}
	//rangecheck:ignore RC1001 unrelated check
	if x&7 > 7 { // want `comparison is always false`
	}
	//rangecheck:ignore RC* all checks
	_ = x / (x & 0)
	//rangecheck:ignore RC1000,RC1001 both checks
	if x/(x&0) == 7 {
	}
	/* want `malformed rangecheck:ignore directive` */ //rangecheck:ignore RC1000
	if x&3 == 4 { // want `comparison is always false`
	}
}
