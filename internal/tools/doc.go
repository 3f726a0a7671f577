// Package tools exposes the core to an agent/tool-calling surface.
//
// Each tool is a named handler taking raw JSON arguments and returning a
// discriminated Result: either a value or an error kind plus message. Tool
// failures are values, never panics or Go errors, so the surrounding
// dispatch layer can marshal them directly.
//
// Mutating tools invalidate the affected cache kind after a successful
// upstream write, which keeps cached names from outliving the entities they
// describe. The wire transport itself (MCP framing) is not part of this
// package; the CLI drives the same registry directly.
package tools
