package Trees

import "github.com/emirpasic/gods/trees"

// Tree represents a binary search tree implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false). In this case x is the zero value
// of T and shouldn't be used.
// Traversal methods are implemented recursively, lookups and insertion
// iteratively.
type Tree[T any] interface {
	trees.Tree
	//Insert v to the Tree. Returning true if successful, false if v is
	//already present.
	Insert(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Root of the tree, nil when the tree is empty.
	Root() *Node[T]
	//InOrder applies fn to the subtree rooting at n as left, n, right and
	//concatenates the results.
	InOrder(n *Node[T], fn Visitor[T]) string
	//PreOrder applies fn to the subtree rooting at n as n, left, right and
	//concatenates the results.
	PreOrder(n *Node[T], fn Visitor[T]) string
	//PostOrder applies fn to the subtree rooting at n as left, right, n and
	//concatenates the results.
	PostOrder(n *Node[T], fn Visitor[T]) string
	//Corrupt returns whether some node violates the ordering or holds a
	//level that isn't its depth.
	Corrupt() bool
}

// Visitor renders a single node during a traversal. Whatever it returns is
// appended to the traversal result as is, no separators are added.
type Visitor[T any] func(*Node[T]) string
