package codec

import "github.com/benfrussell/AutoCopilot/pkg/domain"

// Document is the serialized shape of one node and its subtree.
type Document struct {
	ID       int64             `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Type     domain.ObjectKind `json:"type" yaml:"type"`
	Children *[]Document       `json:"children,omitempty" yaml:"children,omitempty"`
	Actions  *[]ActionDocument `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// ActionDocument is the serialized shape of an action.
type ActionDocument struct {
	Kind       domain.ActionKind `json:"kind" yaml:"kind"`
	Parameters []any             `json:"parameters" yaml:"parameters"`
}

// FromObject builds the document tree for obj, recursing through every group.
func FromObject(obj domain.Object) Document {
	doc := Document{
		ID:   obj.ID(),
		Name: obj.Name(),
		Type: obj.Kind(),
	}

	switch o := obj.(type) {
	case *domain.Instruction:
		actions := make([]ActionDocument, 0, o.Len())
		for _, a := range o.Actions() {
			actions = append(actions, ActionDocument{
				Kind:       a.Kind(),
				Parameters: a.Parameters(),
			})
		}
		doc.Actions = &actions
	case *domain.Group:
		children := make([]Document, 0, o.Len())
		for child := range o.Children() {
			children = append(children, FromObject(child))
		}
		doc.Children = &children
	}

	return doc
}
