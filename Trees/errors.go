package Trees

import "fmt"

// InvalidSliceError is the panic value of MustFrom. V is the first element
// that was already in the tree and At is its index in the input.
type InvalidSliceError[T any] struct {
	V  T
	At int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("duplicate element %v at index %d", e.V, e.At)
}
