package domain

import "iter"

// ObjectKind discriminates the two shapes of a mission tree node.
type ObjectKind string

const (
	// KindInstruction is a leaf carrying actions.
	KindInstruction ObjectKind = "instruction"
	// KindGroup is a composite owning ordered children.
	KindGroup ObjectKind = "group"
)

// Object is a node in the mission tree. It is implemented only by
// *Instruction and *Group.
type Object interface {
	// ID returns the process-wide unique id assigned at construction.
	ID() int64
	// Name returns the optional name given at construction.
	Name() string
	// Kind reports which variant the object is.
	Kind() ObjectKind
	// Children yields the direct children only. Leaves yield nothing.
	Children() iter.Seq[Object]

	sealed()
}

// header carries the identity shared by every Object.
type header struct {
	id   int64
	name string
}

func newHeader(name string) header {
	return header{id: nextID(), name: name}
}

func (h *header) ID() int64 { return h.id }
func (h *header) Name() string { return h.name }
func (h *header) sealed() {}

// Walk visits root and its whole subtree depth-first in pre-order, children in
// insertion order. depth is 0 for root. Returning false from fn stops the walk.
func Walk(root Object, fn func(obj Object, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, fn)
}

func walk(obj Object, depth int, fn func(Object, int) bool) bool {
	if !fn(obj, depth) {
		return false
	}
	for child := range obj.Children() {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at root, root included.
func Count(root Object) int {
	n := 0
	Walk(root, func(Object, int) bool {
		n++
		return true
	})
	return n
}
