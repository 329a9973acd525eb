/*
Package domain contains the mission tree model driven by the copilot.

A mission is a tree of instruction objects. Leaves are Instructions carrying
an ordered, immutable list of Actions. Composites are Groups owning an
ordered, mutable list of children, which may be Instructions or nested Groups.
The package performs no I/O: it only models intent for an external executor.

# Key Entities

  - Action: An immutable command (Log, servo, PWM, GPIO, timers, flags, stage changes).
  - Instruction: A leaf node with a fixed action list. Iterating it yields no children.
  - Group: A composite node. Iterating it yields its direct children in insertion order.
  - Object: The sealed interface implemented by both node shapes.

Every Object receives a process-wide unique id at construction. Ids start at 0
and increase monotonically, including under concurrent construction.

Children only ever yields one level. Use Walk for a full depth-first pass.
*/
package domain
