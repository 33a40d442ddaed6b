// Code generated by hand. DO NOT EDIT.

package pkg

func gen(x int32) bool {
	_ = x / (x & 0)
	return x&7 > 7
}
