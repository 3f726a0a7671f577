package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/84emllc/mcp-toggl/internal/hydrate"
	"github.com/84emllc/mcp-toggl/internal/store"
	"github.com/84emllc/mcp-toggl/internal/toggl"
)

// PlaceholderName is returned when an entity name cannot be resolved.
const PlaceholderName = "Unknown"

// Upstream is the slice of the Toggl accessor the manager depends on. The
// manager never calls mutation endpoints; invalidation after writes is the
// caller's responsibility.
type Upstream interface {
	ListWorkspaces(ctx context.Context) ([]toggl.Workspace, error)
	ListProjects(ctx context.Context, workspaceID int64) ([]toggl.Project, error)
	ListClients(ctx context.Context, workspaceID int64) ([]toggl.Client, error)
	GetWorkspace(ctx context.Context, id int64) (toggl.Workspace, error)
	GetProject(ctx context.Context, workspaceID, projectID int64) (toggl.Project, error)
	GetClient(ctx context.Context, workspaceID, clientID int64) (toggl.Client, error)
}

// Stats is a point-in-time snapshot of cache statistics.
type Stats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hitRate"`
}

// Manager coordinates the entity store and the upstream accessor. One
// Manager lives for the whole process.
type Manager struct {
	upstream Upstream
	store    *store.Store
	group    singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewManager creates a Manager on top of an entity store.
func NewManager(upstream Upstream, s *store.Store) *Manager {
	return &Manager{upstream: upstream, store: s}
}

// Warm populates the cache with workspaces, then each workspace's projects
// and clients. With a non-zero workspaceID only that workspace is warmed.
// A failed workspace fetch fails the warm outright; project and client
// failures are joined into one aggregate error while everything already
// stored is kept.
func (m *Manager) Warm(ctx context.Context, workspaceID int64) error {
	var workspaces []toggl.Workspace
	if workspaceID != 0 {
		ws, err := m.upstream.GetWorkspace(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("warming cache: %w", err)
		}
		workspaces = []toggl.Workspace{ws}
	} else {
		var err error
		workspaces, err = m.upstream.ListWorkspaces(ctx)
		if err != nil {
			return fmt.Errorf("warming cache: %w", err)
		}
	}

	for _, ws := range workspaces {
		m.store.Put(store.KindWorkspace, ws.ID, ws)
	}

	var errs []error
	for _, ws := range workspaces {
		projects, err := m.upstream.ListProjects(ctx, ws.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("warming projects for workspace %d: %w", ws.ID, err))
		} else {
			for _, p := range projects {
				m.store.Put(store.KindProject, p.ID, p)
			}
		}

		clients, err := m.upstream.ListClients(ctx, ws.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("warming clients for workspace %d: %w", ws.ID, err))
		} else {
			for _, c := range clients {
				m.store.Put(store.KindClient, c.ID, c)
			}
		}
	}

	zap.L().Debug("cache warmed",
		zap.Int("workspaces", len(workspaces)),
		zap.Int("size", m.store.Len()),
		zap.Int("failures", len(errs)))

	return errors.Join(errs...)
}

// WorkspaceName resolves a workspace ID to its name, fetching on miss.
func (m *Manager) WorkspaceName(ctx context.Context, id int64) string {
	if v, ok := m.store.Get(store.KindWorkspace, id); ok {
		m.hits.Add(1)
		return v.(toggl.Workspace).Name
	}
	m.misses.Add(1)

	v, err, _ := m.group.Do(flightKey(store.KindWorkspace, id), func() (any, error) {
		ws, err := m.upstream.GetWorkspace(ctx, id)
		if err != nil {
			return nil, err
		}
		m.store.Put(store.KindWorkspace, ws.ID, ws)
		return ws, nil
	})
	if err != nil {
		zap.L().Warn("workspace lookup failed", zap.Int64("id", id), zap.Error(err))
		return PlaceholderName
	}
	return v.(toggl.Workspace).Name
}

// ProjectName resolves a project ID to its name and client ID, fetching on
// miss. The client ID is zero when the project has no client or the lookup
// degraded to the placeholder.
func (m *Manager) ProjectName(ctx context.Context, workspaceID, projectID int64) (string, int64) {
	if v, ok := m.store.Get(store.KindProject, projectID); ok {
		m.hits.Add(1)
		p := v.(toggl.Project)
		return p.Name, p.ClientID
	}
	m.misses.Add(1)

	v, err, _ := m.group.Do(flightKey(store.KindProject, projectID), func() (any, error) {
		p, err := m.upstream.GetProject(ctx, workspaceID, projectID)
		if err != nil {
			return nil, err
		}
		m.store.Put(store.KindProject, p.ID, p)
		return p, nil
	})
	if err != nil {
		zap.L().Warn("project lookup failed", zap.Int64("id", projectID), zap.Error(err))
		return PlaceholderName, 0
	}
	p := v.(toggl.Project)
	return p.Name, p.ClientID
}

// ClientName resolves a client ID to its name, fetching on miss.
func (m *Manager) ClientName(ctx context.Context, workspaceID, clientID int64) string {
	if v, ok := m.store.Get(store.KindClient, clientID); ok {
		m.hits.Add(1)
		return v.(toggl.Client).Name
	}
	m.misses.Add(1)

	v, err, _ := m.group.Do(flightKey(store.KindClient, clientID), func() (any, error) {
		c, err := m.upstream.GetClient(ctx, workspaceID, clientID)
		if err != nil {
			return nil, err
		}
		m.store.Put(store.KindClient, c.ID, c)
		return c, nil
	})
	if err != nil {
		zap.L().Warn("client lookup failed", zap.Int64("id", clientID), zap.Error(err))
		return PlaceholderName
	}
	return v.(toggl.Client).Name
}

// HydrateTimeEntries resolves names for a batch of raw time entries,
// preserving input order and length.
func (m *Manager) HydrateTimeEntries(ctx context.Context, entries []toggl.TimeEntry) []hydrate.Entry {
	return hydrate.Entries(ctx, m, entries)
}

// Clear empties the store and resets all counters to zero.
func (m *Manager) Clear() {
	m.store.InvalidateAll()
	m.hits.Store(0)
	m.misses.Store(0)
}

// InvalidateWorkspaces drops all cached workspaces.
func (m *Manager) InvalidateWorkspaces() { m.store.InvalidateKind(store.KindWorkspace) }

// InvalidateProjects drops all cached projects.
func (m *Manager) InvalidateProjects() { m.store.InvalidateKind(store.KindProject) }

// InvalidateClients drops all cached clients.
func (m *Manager) InvalidateClients() { m.store.InvalidateKind(store.KindClient) }

// InvalidateAll drops every cached entity without touching hit/miss counters.
func (m *Manager) InvalidateAll() { m.store.InvalidateAll() }

// Stats returns a snapshot of the cache counters. The hit rate is
// hits/(hits+misses), zero when there have been no lookups.
func (m *Manager) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()
	s := Stats{
		Hits:      hits,
		Misses:    misses,
		Evictions: m.store.Evictions(),
		Size:      m.store.Len(),
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}

func flightKey(kind store.Kind, id int64) string {
	return string(kind) + "/" + strconv.FormatInt(id, 10)
}
