package domain

import (
	"iter"
	"slices"
)

// Instruction is a leaf of the mission tree. Its actions are fixed at
// construction and are payload, not tree structure.
type Instruction struct {
	header
	actions []Action
}

// NewInstruction creates an unnamed instruction with the given actions.
func NewInstruction(actions ...Action) *Instruction {
	return ConcatInstruction("", nil, actions...)
}

// NewNamedInstruction creates a named instruction with the given actions.
func NewNamedInstruction(name string, actions ...Action) *Instruction {
	return ConcatInstruction(name, nil, actions...)
}

// ConcatInstruction creates an instruction whose actions are base followed by extra.
func ConcatInstruction(name string, base []Action, extra ...Action) *Instruction {
	actions := make([]Action, 0, len(base)+len(extra))
	actions = append(actions, base...)
	actions = append(actions, extra...)
	return &Instruction{
		header:  newHeader(name),
		actions: actions,
	}
}

// Kind returns KindInstruction.
func (i *Instruction) Kind() ObjectKind { return KindInstruction }

// Actions returns a copy of the instruction's actions in order.
func (i *Instruction) Actions() []Action {
	return slices.Clone(i.actions)
}

// Len returns the number of actions.
func (i *Instruction) Len() int { return len(i.actions) }

// Children yields nothing.
func (i *Instruction) Children() iter.Seq[Object] {
	return func(yield func(Object) bool) {}
}
