package domain

import (
	"fmt"
	"iter"
	"slices"
)

// Group is a composite node owning an ordered, mutable list of children.
// A Group is not safe for concurrent mutation; its owner serializes access.
type Group struct {
	header
	children []Object
}

// NewGroup creates a group holding children in the given order. Nil children are skipped.
func NewGroup(name string, children ...Object) *Group {
	g := &Group{
		header:   newHeader(name),
		children: make([]Object, 0, len(children)),
	}
	for _, c := range children {
		if isNil(c) {
			continue
		}
		g.children = append(g.children, c)
	}
	return g
}

// Kind returns KindGroup.
func (g *Group) Kind() ObjectKind { return KindGroup }

// Add appends child at the tail. Duplicates are allowed.
// It fails with ErrNilChild for nil and ErrCycle if child is g or already contains g.
func (g *Group) Add(child Object) error {
	if isNil(child) {
		return ErrNilChild
	}
	if reaches(child, g) {
		return fmt.Errorf("%w: adding %d to %d", ErrCycle, child.ID(), g.ID())
	}
	g.children = append(g.children, child)
	return nil
}

// Remove deletes the first occurrence of child, compared by identity.
// Surviving children keep their order. It reports whether anything was removed.
func (g *Group) Remove(child Object) bool {
	idx := slices.Index(g.children, child)
	if idx < 0 {
		return false
	}
	g.children = slices.Delete(g.children, idx, idx+1)
	return true
}

// Contains reports whether child is a direct child of g.
func (g *Group) Contains(child Object) bool {
	return slices.Contains(g.children, child)
}

// Clear drops every child.
func (g *Group) Clear() {
	clear(g.children)
	g.children = g.children[:0]
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Children yields the direct children in insertion order.
func (g *Group) Children() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, c := range g.children {
			if !yield(c) {
				return
			}
		}
	}
}

// reaches reports whether target is obj or lies in obj's subtree.
func reaches(obj Object, target *Group) bool {
	found := false
	Walk(obj, func(o Object, _ int) bool {
		if g, ok := o.(*Group); ok && g == target {
			found = true
		}
		return !found
	})
	return found
}

func isNil(o Object) bool {
	switch v := o.(type) {
	case nil:
		return true
	case *Group:
		return v == nil
	case *Instruction:
		return v == nil
	}
	return false
}
