package Trees

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values. The
// shape of the tree is determined only by the order of insertions, so the
// height D is O(n) in the worst case and O(log n) on average for random
// orders. Every node records its level when it's inserted; since nodes are
// never rotated or removed, the level stays equal to the depth.
// The zero value is an empty tree ready to use. BSTree isn't safe for
// concurrent use.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return new(BSTree[T])
}

// From returns a BSTree built by inserting vs in the given order. Repeated
// elements are ignored.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *BSTree[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// MustFrom is like From but panics with InvalidSliceError if vs contains a
// repeated element.
func MustFrom[T constraints.Ordered](vs ...T) *BSTree[T] {
	u := New[T]()
	for i, v := range vs {
		if !u.Insert(v) {
			panic(InvalidSliceError[T]{v, i})
		}
	}
	return u
}

// Insert [Tree.Insert]
// Walks down from the root and attaches a new node at the first absent
// child on the way. Nothing changes when v is already in u.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	var level uint
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v == cur.v {
			return false
		} else {
			curPtr = &cur.r
		}
		level = cur.level + 1
	}
	*curPtr = &Node[T]{v: v, level: level}
	u.size++
	return true
}

// Root [Tree.Root]
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() int {
	return u.size
}

func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear drops every node at once. Single elements can't be removed.
func (u *BSTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

func (u *BSTree[T]) height(c *Node[T]) int {
	if c == nil {
		return -1
	}
	return max(int(c.level), u.height(c.l), u.height(c.r))
}

// Height is the largest level in the tree, -1 when empty. Recursive.
func (u *BSTree[T]) Height() int {
	return u.height(u.root)
}

// inOrder, preOrder and postOrder append the output of fn for every node of
// the subtree rooting at c to sb.
func inOrder[T any](c *Node[T], fn Visitor[T], sb *strings.Builder) {
	if c != nil {
		inOrder(c.l, fn, sb)
		sb.WriteString(fn(c))
		inOrder(c.r, fn, sb)
	}
}

func preOrder[T any](c *Node[T], fn Visitor[T], sb *strings.Builder) {
	if c != nil {
		sb.WriteString(fn(c))
		preOrder(c.l, fn, sb)
		preOrder(c.r, fn, sb)
	}
}

func postOrder[T any](c *Node[T], fn Visitor[T], sb *strings.Builder) {
	if c != nil {
		postOrder(c.l, fn, sb)
		postOrder(c.r, fn, sb)
		sb.WriteString(fn(c))
	}
}

// InOrder [Tree.InOrder]. Recursive.
// For a valid tree fn sees the elements in ascending order. n doesn't have
// to be the root, any node of u can be given to render its subtree. A nil n
// gives "".
// Time: O(size of subtree); Space: O(D)
func (u *BSTree[T]) InOrder(n *Node[T], fn Visitor[T]) string {
	var sb strings.Builder
	inOrder(n, fn, &sb)
	return sb.String()
}

// PreOrder [Tree.PreOrder]. Recursive.
// Inserting the elements in this order into an empty tree reproduces the
// shape of the subtree.
func (u *BSTree[T]) PreOrder(n *Node[T], fn Visitor[T]) string {
	var sb strings.Builder
	preOrder(n, fn, &sb)
	return sb.String()
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *BSTree[T]) PostOrder(n *Node[T], fn Visitor[T]) string {
	var sb strings.Builder
	postOrder(n, fn, &sb)
	return sb.String()
}

// String is the in-order traversal of the whole tree rendered with
// DefaultVisitor.
func (u *BSTree[T]) String() string {
	return u.InOrder(u.root, DefaultVisitor[T])
}

func (u *BSTree[T]) walk(c *Node[T], f func(*Node[T])) {
	if c != nil {
		u.walk(c.l, f)
		f(c)
		u.walk(c.r, f)
	}
}

// Elements returns all elements in ascending order.
func (u *BSTree[T]) Elements() []T {
	vs := make([]T, 0, u.size)
	u.walk(u.root, func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// Values is Elements boxed for containers.Container.
func (u *BSTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	u.walk(u.root, func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// corrupt checks the subtree rooting at c, whose elements must lie strictly
// between lo and hi when they are non nil, and whose root must be at level.
func (u *BSTree[T]) corrupt(c *Node[T], lo, hi *T, level uint, cnt *int) bool {
	if c == nil {
		return false
	}
	*cnt++
	if c.level != level || (lo != nil && c.v <= *lo) || (hi != nil && c.v >= *hi) {
		return true
	}
	return u.corrupt(c.l, lo, &c.v, level+1, cnt) || u.corrupt(c.r, &c.v, hi, level+1, cnt)
}

// Corrupt [Tree.Corrupt]
// Also reports a tree whose node count disagrees with Size.
func (u *BSTree[T]) Corrupt() bool {
	cnt := 0
	return u.corrupt(u.root, nil, nil, 0, &cnt) || cnt != u.size
}
