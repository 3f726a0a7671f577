package toggl

import (
	"context"
	"fmt"
	"net/http"
)

// ListWorkspaces returns all workspaces visible to the account.
func (a *API) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	if err := a.do(ctx, http.MethodGet, "/me/workspaces", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return out, nil
}

// GetWorkspace fetches a single workspace by ID.
func (a *API) GetWorkspace(ctx context.Context, id int64) (Workspace, error) {
	var out Workspace
	path := fmt.Sprintf("/workspaces/%d", id)
	if err := a.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return Workspace{}, fmt.Errorf("getting workspace %d: %w", id, err)
	}
	return out, nil
}
