package domain

import "errors"

// ErrNilChild is returned when a nil object is added to a group.
var ErrNilChild = errors.New("nil child")

// ErrCycle is returned when adding a child would make a group its own descendant.
var ErrCycle = errors.New("instruction cycle")

// ErrUnknownActionKind is returned when an action is built for a kind outside the catalog.
var ErrUnknownActionKind = errors.New("unknown action kind")

// ErrInvalidParameters is returned when action parameters do not match the kind's shape.
var ErrInvalidParameters = errors.New("invalid action parameters")
