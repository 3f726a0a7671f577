package hydrate

import (
	"context"

	"github.com/84emllc/mcp-toggl/internal/toggl"
)

// Resolver resolves entity IDs to display names. Implementations must not
// fail: an unresolvable ID yields a placeholder name. ProjectName also
// reports the resolved project's client ID, zero when the project has no
// client or could not be resolved.
type Resolver interface {
	WorkspaceName(ctx context.Context, id int64) string
	ProjectName(ctx context.Context, workspaceID, projectID int64) (name string, clientID int64)
	ClientName(ctx context.Context, workspaceID, clientID int64) string
}

// Entry is a time entry enriched with resolved names. It is computed per
// request and never persisted.
type Entry struct {
	toggl.TimeEntry
	WorkspaceName string `json:"workspace_name"`
	ProjectName   string `json:"project_name,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
}

// Entries hydrates a batch of time entries, preserving input order and
// length. The workspace name is always resolved; the project name only when
// the entry has a project; the client name only when the resolved project
// carries a client.
func Entries(ctx context.Context, r Resolver, entries []toggl.TimeEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, te := range entries {
		h := Entry{TimeEntry: te}
		h.WorkspaceName = r.WorkspaceName(ctx, te.WorkspaceID)
		if te.ProjectID != 0 {
			name, clientID := r.ProjectName(ctx, te.WorkspaceID, te.ProjectID)
			h.ProjectName = name
			if clientID != 0 {
				h.ClientName = r.ClientName(ctx, te.WorkspaceID, clientID)
			}
		}
		out = append(out, h)
	}
	return out
}
