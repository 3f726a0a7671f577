package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/84emllc/mcp-toggl/internal/store"
	"github.com/84emllc/mcp-toggl/internal/toggl"
)

var errUnreachable = errors.New("upstream unreachable")

// fakeUpstream implements Upstream with overridable behavior per method.
// Unset methods fail, which doubles as an "upstream down" default.
type fakeUpstream struct {
	listWorkspaces func(ctx context.Context) ([]toggl.Workspace, error)
	listProjects   func(ctx context.Context, workspaceID int64) ([]toggl.Project, error)
	listClients    func(ctx context.Context, workspaceID int64) ([]toggl.Client, error)
	getWorkspace   func(ctx context.Context, id int64) (toggl.Workspace, error)
	getProject     func(ctx context.Context, workspaceID, projectID int64) (toggl.Project, error)
	getClient      func(ctx context.Context, workspaceID, clientID int64) (toggl.Client, error)
}

func (f *fakeUpstream) ListWorkspaces(ctx context.Context) ([]toggl.Workspace, error) {
	if f.listWorkspaces == nil {
		return nil, errUnreachable
	}
	return f.listWorkspaces(ctx)
}

func (f *fakeUpstream) ListProjects(ctx context.Context, workspaceID int64) ([]toggl.Project, error) {
	if f.listProjects == nil {
		return nil, errUnreachable
	}
	return f.listProjects(ctx, workspaceID)
}

func (f *fakeUpstream) ListClients(ctx context.Context, workspaceID int64) ([]toggl.Client, error) {
	if f.listClients == nil {
		return nil, errUnreachable
	}
	return f.listClients(ctx, workspaceID)
}

func (f *fakeUpstream) GetWorkspace(ctx context.Context, id int64) (toggl.Workspace, error) {
	if f.getWorkspace == nil {
		return toggl.Workspace{}, errUnreachable
	}
	return f.getWorkspace(ctx, id)
}

func (f *fakeUpstream) GetProject(ctx context.Context, workspaceID, projectID int64) (toggl.Project, error) {
	if f.getProject == nil {
		return toggl.Project{}, errUnreachable
	}
	return f.getProject(ctx, workspaceID, projectID)
}

func (f *fakeUpstream) GetClient(ctx context.Context, workspaceID, clientID int64) (toggl.Client, error) {
	if f.getClient == nil {
		return toggl.Client{}, errUnreachable
	}
	return f.getClient(ctx, workspaceID, clientID)
}

func newTestManager(up Upstream) *Manager {
	return NewManager(up, store.New(time.Minute, 100))
}

func TestWarmThenHydrateHitsCache(t *testing.T) {
	up := &fakeUpstream{
		listWorkspaces: func(context.Context) ([]toggl.Workspace, error) {
			return []toggl.Workspace{{ID: 1, Name: "Acme"}}, nil
		},
		listProjects: func(context.Context, int64) ([]toggl.Project, error) {
			return []toggl.Project{{ID: 10, WorkspaceID: 1, Name: "Website"}}, nil
		},
		listClients: func(context.Context, int64) ([]toggl.Client, error) {
			return nil, nil
		},
	}
	m := newTestManager(up)
	require.NoError(t, m.Warm(context.Background(), 0))

	out := m.HydrateTimeEntries(context.Background(), []toggl.TimeEntry{
		{ID: 100, WorkspaceID: 1, ProjectID: 10},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].WorkspaceName)
	assert.Equal(t, "Website", out[0].ProjectName)
	assert.Empty(t, out[0].ClientName)

	stats := m.Stats()
	assert.Equal(t, int64(2), stats.Hits, "workspace and project should both hit the warmed cache")
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 1.0, stats.HitRate)
}

func TestWarmCoversClients(t *testing.T) {
	up := &fakeUpstream{
		listWorkspaces: func(context.Context) ([]toggl.Workspace, error) {
			return []toggl.Workspace{{ID: 1, Name: "Acme"}}, nil
		},
		listProjects: func(context.Context, int64) ([]toggl.Project, error) {
			return []toggl.Project{{ID: 10, WorkspaceID: 1, ClientID: 5, Name: "Website"}}, nil
		},
		listClients: func(context.Context, int64) ([]toggl.Client, error) {
			return []toggl.Client{{ID: 5, WorkspaceID: 1, Name: "Initech"}}, nil
		},
	}
	m := newTestManager(up)
	require.NoError(t, m.Warm(context.Background(), 0))

	out := m.HydrateTimeEntries(context.Background(), []toggl.TimeEntry{
		{ID: 100, WorkspaceID: 1, ProjectID: 10},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Initech", out[0].ClientName)

	stats := m.Stats()
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
}

func TestHydrateDegradesToPlaceholder(t *testing.T) {
	// Workspace is cached, the project is not, and the upstream is down:
	// hydration must still return the full batch.
	up := &fakeUpstream{
		listWorkspaces: func(context.Context) ([]toggl.Workspace, error) {
			return []toggl.Workspace{{ID: 1, Name: "Acme"}}, nil
		},
		listProjects: func(context.Context, int64) ([]toggl.Project, error) {
			return nil, nil
		},
		listClients: func(context.Context, int64) ([]toggl.Client, error) {
			return nil, nil
		},
	}
	m := newTestManager(up)
	require.NoError(t, m.Warm(context.Background(), 0))

	// getProject stays unset, so the fallback fetch fails.
	out := m.HydrateTimeEntries(context.Background(), []toggl.TimeEntry{
		{ID: 100, WorkspaceID: 1, ProjectID: 10},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].WorkspaceName)
	assert.Equal(t, PlaceholderName, out[0].ProjectName)
	assert.Empty(t, out[0].ClientName, "client must not be resolved through a placeholder project")

	stats := m.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses, "the failed fallback fetch still counts as a miss")
}

func TestFallbackFetchStoresEntity(t *testing.T) {
	fetches := 0
	up := &fakeUpstream{
		getWorkspace: func(_ context.Context, id int64) (toggl.Workspace, error) {
			fetches++
			return toggl.Workspace{ID: id, Name: "Acme"}, nil
		},
	}
	m := newTestManager(up)

	assert.Equal(t, "Acme", m.WorkspaceName(context.Background(), 1))
	assert.Equal(t, "Acme", m.WorkspaceName(context.Background(), 1))

	assert.Equal(t, 1, fetches, "second lookup must be served from the cache")
	stats := m.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestWarmFailsWhenWorkspacesFail(t *testing.T) {
	m := newTestManager(&fakeUpstream{})

	err := m.Warm(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnreachable)
}

func TestWarmKeepsPartialResults(t *testing.T) {
	up := &fakeUpstream{
		listWorkspaces: func(context.Context) ([]toggl.Workspace, error) {
			return []toggl.Workspace{{ID: 1, Name: "Acme"}}, nil
		},
		// projects fail, clients succeed
		listClients: func(context.Context, int64) ([]toggl.Client, error) {
			return []toggl.Client{{ID: 5, WorkspaceID: 1, Name: "Initech"}}, nil
		},
	}
	m := newTestManager(up)

	err := m.Warm(context.Background(), 0)
	require.Error(t, err, "project failure must surface as an aggregate error")

	// What was fetched before and after the failure stays cached.
	assert.Equal(t, "Acme", m.WorkspaceName(context.Background(), 1))
	assert.Equal(t, "Initech", m.ClientName(context.Background(), 1, 5))
	assert.Equal(t, int64(0), m.Stats().Misses)
}

func TestWarmSingleWorkspace(t *testing.T) {
	up := &fakeUpstream{
		getWorkspace: func(_ context.Context, id int64) (toggl.Workspace, error) {
			return toggl.Workspace{ID: id, Name: "Acme"}, nil
		},
		listProjects: func(context.Context, int64) ([]toggl.Project, error) { return nil, nil },
		listClients:  func(context.Context, int64) ([]toggl.Client, error) { return nil, nil },
	}
	m := newTestManager(up)

	require.NoError(t, m.Warm(context.Background(), 1))
	assert.Equal(t, "Acme", m.WorkspaceName(context.Background(), 1))
	assert.Equal(t, int64(1), m.Stats().Hits)
}

func TestClearResetsStats(t *testing.T) {
	up := &fakeUpstream{
		getWorkspace: func(_ context.Context, id int64) (toggl.Workspace, error) {
			return toggl.Workspace{ID: id, Name: "Acme"}, nil
		},
	}
	m := newTestManager(up)

	m.WorkspaceName(context.Background(), 1) // miss
	m.WorkspaceName(context.Background(), 1) // hit

	m.Clear()

	assert.Equal(t, Stats{}, m.Stats())
}

func TestStatsHitRateZeroWithoutLookups(t *testing.T) {
	m := newTestManager(&fakeUpstream{})
	assert.Equal(t, 0.0, m.Stats().HitRate)
}

func TestInvalidateForcesRefetchAfterWrite(t *testing.T) {
	name := "Website"
	up := &fakeUpstream{
		listWorkspaces: func(context.Context) ([]toggl.Workspace, error) {
			return []toggl.Workspace{{ID: 1, Name: "Acme"}}, nil
		},
		listProjects: func(context.Context, int64) ([]toggl.Project, error) {
			return []toggl.Project{{ID: 10, WorkspaceID: 1, Name: name}}, nil
		},
		listClients: func(context.Context, int64) ([]toggl.Client, error) { return nil, nil },
		getProject: func(_ context.Context, _, projectID int64) (toggl.Project, error) {
			return toggl.Project{ID: projectID, WorkspaceID: 1, Name: name}, nil
		},
	}
	m := newTestManager(up)
	require.NoError(t, m.Warm(context.Background(), 0))

	got, _ := m.ProjectName(context.Background(), 1, 10)
	assert.Equal(t, "Website", got)

	// The caller renamed the project upstream and invalidated the kind.
	name = "Website v2"
	m.InvalidateProjects()

	got, _ = m.ProjectName(context.Background(), 1, 10)
	assert.Equal(t, "Website v2", got, "lookup after a write must not serve the stale name")
}
