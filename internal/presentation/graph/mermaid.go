package graph

import (
	"fmt"
	"strings"

	"github.com/benfrussell/AutoCopilot/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the tree rooted at root.
// It applies semantic styling:
// - Group: [[Subroutine]]
// - Instruction: [Rectangle], labelled with its action count
// Edges run parent --> child in insertion order, so the output is stable for
// an unchanged tree.
func GenerateMermaid(root domain.Object) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	declared := make(map[int64]bool)
	domain.Walk(root, func(obj domain.Object, _ int) bool {
		// A subtree shared between parents is drawn once.
		if declared[obj.ID()] {
			return true
		}
		declared[obj.ID()] = true
		sb.WriteString(fmt.Sprintf("    %s\n", shape(obj)))

		id := nodeID(obj)
		for child := range obj.Children() {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, nodeID(child)))
		}
		return true
	})

	return sb.String()
}

func nodeID(obj domain.Object) string {
	return fmt.Sprintf("n%d", obj.ID())
}

func shape(obj domain.Object) string {
	label := obj.Name()
	if label == "" {
		label = fmt.Sprintf("#%d", obj.ID())
	}
	label = sanitizeLabel(label)

	switch o := obj.(type) {
	case *domain.Group:
		return fmt.Sprintf("%s[[\"%s\"]]", nodeID(obj), label)
	case *domain.Instruction:
		return fmt.Sprintf("%s[\"%s <br/> %d action(s)\"]", nodeID(obj), label, o.Len())
	}
	return fmt.Sprintf("%s[\"%s\"]", nodeID(obj), label)
}

// sanitizeLabel escapes double quotes, which would close the Mermaid label.
func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
