package toggl

import (
	"context"
	"fmt"
	"net/http"
)

// ListProjects returns the projects of a workspace.
func (a *API) ListProjects(ctx context.Context, workspaceID int64) ([]Project, error) {
	var out []Project
	path := fmt.Sprintf("/workspaces/%d/projects", workspaceID)
	if err := a.do(ctx, http.MethodGet, path, a.listQuery(), nil, &out); err != nil {
		return nil, fmt.Errorf("listing projects for workspace %d: %w", workspaceID, err)
	}
	return out, nil
}

// GetProject fetches a single project.
func (a *API) GetProject(ctx context.Context, workspaceID, projectID int64) (Project, error) {
	var out Project
	path := fmt.Sprintf("/workspaces/%d/projects/%d", workspaceID, projectID)
	if err := a.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return Project{}, fmt.Errorf("getting project %d: %w", projectID, err)
	}
	return out, nil
}

// CreateProject creates a project in the workspace.
func (a *API) CreateProject(ctx context.Context, workspaceID int64, p NewProject) (Project, error) {
	var out Project
	path := fmt.Sprintf("/workspaces/%d/projects", workspaceID)
	if err := a.do(ctx, http.MethodPost, path, nil, p, &out); err != nil {
		return Project{}, fmt.Errorf("creating project: %w", err)
	}
	return out, nil
}

// UpdateProject applies a partial update; only non-nil fields are sent.
func (a *API) UpdateProject(ctx context.Context, workspaceID, projectID int64, u ProjectUpdate) (Project, error) {
	var out Project
	path := fmt.Sprintf("/workspaces/%d/projects/%d", workspaceID, projectID)
	if err := a.do(ctx, http.MethodPut, path, nil, u, &out); err != nil {
		return Project{}, fmt.Errorf("updating project %d: %w", projectID, err)
	}
	return out, nil
}
