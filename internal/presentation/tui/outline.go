package tui

import (
	"fmt"
	"strings"

	"github.com/benfrussell/AutoCopilot/pkg/domain"
)

// Outline renders the tree as a markdown nested list. Groups are bold,
// instructions list their actions inline as code spans.
func Outline(root domain.Object) string {
	var sb strings.Builder
	sb.WriteString("# Instructions\n\n")
	if root == nil {
		sb.WriteString("_empty_\n")
		return sb.String()
	}

	domain.Walk(root, func(obj domain.Object, depth int) bool {
		indent := strings.Repeat("  ", depth)
		name := obj.Name()
		if name == "" {
			name = "(unnamed)"
		}

		switch o := obj.(type) {
		case *domain.Group:
			fmt.Fprintf(&sb, "%s- **%s** `#%d` (%d children)\n", indent, escape(name), o.ID(), o.Len())
		case *domain.Instruction:
			fmt.Fprintf(&sb, "%s- %s `#%d`", indent, escape(name), o.ID())
			for _, a := range o.Actions() {
				fmt.Fprintf(&sb, " `%s`", strings.ReplaceAll(a.String(), "`", "'"))
			}
			sb.WriteString("\n")
		}
		return true
	})
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
