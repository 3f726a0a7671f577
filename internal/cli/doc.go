// Package cli implements the mcp-toggl command tree.
//
// Commands are thin: each one loads configuration, wires the Toggl accessor,
// entity store, cache manager, and tool service together, then invokes a
// tool through the same registry an agent transport would use and prints the
// resulting JSON. Exit codes distinguish usage, auth, tool, and runtime
// failures for scripting.
package cli
