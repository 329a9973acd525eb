/*
Package codec converts a mission tree into its serialized text form.

Every node is written as a Document with a stable field order:

	id        integer, unique per process
	name      string, possibly empty
	type      "group" or "instruction"
	children  groups only: nested documents in insertion order
	actions   instructions only: list of {kind, parameters}

Groups always carry "children" and instructions always carry "actions", even
when empty. The format is write-only; nothing in this module parses it back
into a tree.
*/
package codec
