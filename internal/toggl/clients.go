package toggl

import (
	"context"
	"fmt"
	"net/http"
)

// ListClients returns the clients of a workspace.
func (a *API) ListClients(ctx context.Context, workspaceID int64) ([]Client, error) {
	var out []Client
	path := fmt.Sprintf("/workspaces/%d/clients", workspaceID)
	if err := a.do(ctx, http.MethodGet, path, a.listQuery(), nil, &out); err != nil {
		return nil, fmt.Errorf("listing clients for workspace %d: %w", workspaceID, err)
	}
	return out, nil
}

// GetClient fetches a single client.
func (a *API) GetClient(ctx context.Context, workspaceID, clientID int64) (Client, error) {
	var out Client
	path := fmt.Sprintf("/workspaces/%d/clients/%d", workspaceID, clientID)
	if err := a.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return Client{}, fmt.Errorf("getting client %d: %w", clientID, err)
	}
	return out, nil
}

// CreateClient creates a client in the workspace.
func (a *API) CreateClient(ctx context.Context, workspaceID int64, c NewClient) (Client, error) {
	var out Client
	path := fmt.Sprintf("/workspaces/%d/clients", workspaceID)
	if err := a.do(ctx, http.MethodPost, path, nil, c, &out); err != nil {
		return Client{}, fmt.Errorf("creating client: %w", err)
	}
	return out, nil
}
