// Mcp-toggl exposes the Toggl Track time-tracking API as agent-callable
// tools and as a CLI.
//
// Time entries are returned hydrated: workspace, project, and client IDs are
// resolved to names through a bounded, TTL-expiring local cache so that a
// batch of records costs at most a handful of upstream calls instead of one
// per record.
//
// Usage:
//
//	mcp-toggl entries list --start 2026-08-01     # hydrated time entries
//	mcp-toggl entries start --description "standup"
//	mcp-toggl cache warm                          # pre-fetch reference data
//	mcp-toggl tools list                          # available agent tools
//	mcp-toggl tools call toggl_current_entry
//
// Configuration comes from TOGGL_-prefixed environment variables;
// TOGGL_API_TOKEN is required.
package main
