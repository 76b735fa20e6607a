package Trees

import "fmt"

// A node in the BSTree.
// level is the number of edges from the root at the time of insertion.
// Nodes are only modified to attach a child.
type Node[T any] struct {
	v     T
	level uint
	l, r  *Node[T]
}

func (u *Node[T]) Element() T {
	return u.v
}

func (u *Node[T]) Level() uint {
	return u.level
}

// Left child, nil if absent.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right child, nil if absent.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}

// DefaultVisitor renders n as "\t<element>(<level>)\t".
func DefaultVisitor[T any](n *Node[T]) string {
	return fmt.Sprintf("\t%v(%d)\t", n.v, n.level)
}
