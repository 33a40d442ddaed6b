package rangeset

import "fmt"

// EmptySetError is returned when the bounds of an empty set are requested.
type EmptySetError struct{}

func (*EmptySetError) Error() string { return "rangeset: empty set has no bounds" }

// ErrEmptySet is the error returned by Set.Min and Set.Max on the empty set.
var ErrEmptySet error = &EmptySetError{}

// UnsupportedWidthError is returned when a set is cast to, or a type is
// mapped onto, an integer width the domain doesn't model.
type UnsupportedWidthError struct {
	Width int
	// Type is the name of the offending type, if the width was derived from one.
	Type string
}

func (e *UnsupportedWidthError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("rangeset: unsupported integer type %s", e.Type)
	}
	return fmt.Sprintf("rangeset: unsupported integer width %d", e.Width)
}
