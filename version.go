package autocopilot

// Version is the release of the copilot module, reported by the CLI and the MCP server.
var Version = "0.3.0"
