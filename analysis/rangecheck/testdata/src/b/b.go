package pkg

func fn(i int, x int32) {
	if int64(i) > 1<<40 { // want `comparison is always false`
	}
	_ = x / (x & 0)
}
