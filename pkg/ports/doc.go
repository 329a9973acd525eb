/*
Package ports defines the driven ports (interfaces) of the copilot.

These interfaces decouple the mission tree from the transports that carry it
to the external executor.

# Key Interfaces

  - Publisher: Delivers a serialized instruction tree (e.g., in memory or over Redis Pub/Sub).
*/
package ports
