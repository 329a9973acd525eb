/*
Package observability exposes Prometheus metrics for the copilot.

Collectors live on a private registry so several Copilots (and tests) never
collide on the global default registry. Serve them with Handler.
*/
package observability
