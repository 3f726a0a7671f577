package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/84emllc/mcp-toggl/internal/cache"
	"github.com/84emllc/mcp-toggl/internal/toggl"
)

// Upstream is the slice of the Toggl accessor the tool layer needs beyond
// what the cache manager already covers: time-entry reads and the mutation
// endpoints whose writes trigger cache invalidation.
type Upstream interface {
	ListTimeEntries(ctx context.Context, start, end time.Time) ([]toggl.TimeEntry, error)
	CurrentTimeEntry(ctx context.Context) (*toggl.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, e toggl.NewTimeEntry) (toggl.TimeEntry, error)
	StopTimeEntry(ctx context.Context, workspaceID, entryID int64) (toggl.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, workspaceID, entryID int64) error
	CreateProject(ctx context.Context, workspaceID int64, p toggl.NewProject) (toggl.Project, error)
	UpdateProject(ctx context.Context, workspaceID, projectID int64, u toggl.ProjectUpdate) (toggl.Project, error)
	CreateClient(ctx context.Context, workspaceID int64, c toggl.NewClient) (toggl.Client, error)
}

// Service binds the upstream accessor and the cache manager into a tool
// registry.
type Service struct {
	api              Upstream
	cache            *cache.Manager
	defaultWorkspace int64
}

// NewService creates a Service. defaultWorkspace, when non-zero, fills in
// the workspace for tools invoked without one.
func NewService(api Upstream, m *cache.Manager, defaultWorkspace int64) *Service {
	return &Service{api: api, cache: m, defaultWorkspace: defaultWorkspace}
}

// Registry returns the full tool registry backed by this service.
func (s *Service) Registry() *Registry {
	reg := NewRegistry()
	reg.Register(Tool{
		Name:        "toggl_list_entries",
		Description: "List time entries between start_date and end_date (RFC 3339 or YYYY-MM-DD), hydrated with workspace, project, and client names",
		Handler:     s.listEntries,
	})
	reg.Register(Tool{
		Name:        "toggl_current_entry",
		Description: "Get the currently running time entry, hydrated with names; null when nothing is tracked",
		Handler:     s.currentEntry,
	})
	reg.Register(Tool{
		Name:        "toggl_start_entry",
		Description: "Start a new time entry with description, optional project_id, tags, and billable",
		Handler:     s.startEntry,
	})
	reg.Register(Tool{
		Name:        "toggl_stop_entry",
		Description: "Stop a running time entry by entry_id",
		Handler:     s.stopEntry,
	})
	reg.Register(Tool{
		Name:        "toggl_delete_entry",
		Description: "Delete a time entry by entry_id",
		Handler:     s.deleteEntry,
	})
	reg.Register(Tool{
		Name:        "toggl_create_project",
		Description: "Create a project with name and optional client_id, billable, color",
		Handler:     s.createProject,
	})
	reg.Register(Tool{
		Name:        "toggl_update_project",
		Description: "Update a project by project_id; only the fields present in the arguments are changed",
		Handler:     s.updateProject,
	})
	reg.Register(Tool{
		Name:        "toggl_create_client",
		Description: "Create a client with name",
		Handler:     s.createClient,
	})
	reg.Register(Tool{
		Name:        "cache_warm",
		Description: "Pre-fetch workspaces, projects, and clients into the local cache",
		Handler:     s.cacheWarm,
	})
	reg.Register(Tool{
		Name:        "cache_clear",
		Description: "Empty the local cache and reset its statistics",
		Handler:     s.cacheClear,
	})
	reg.Register(Tool{
		Name:        "cache_stats",
		Description: "Report cache hits, misses, evictions, size, and hit rate",
		Handler:     s.cacheStats,
	})
	return reg
}

func (s *Service) workspaceID(requested int64) (int64, error) {
	if requested != 0 {
		return requested, nil
	}
	if s.defaultWorkspace != 0 {
		return s.defaultWorkspace, nil
	}
	return 0, errors.New("workspace_id is required (or set TOGGL_DEFAULT_WORKSPACE_ID)")
}

type listEntriesArgs struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (s *Service) listEntries(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[listEntriesArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	start, err := parseDate(a.StartDate)
	if err != nil {
		return Errf(ErrInvalidArgs, "start_date: %v", err)
	}
	end, err := parseDate(a.EndDate)
	if err != nil {
		return Errf(ErrInvalidArgs, "end_date: %v", err)
	}

	entries, err := s.api.ListTimeEntries(ctx, start, end)
	if err != nil {
		return upstreamFailure(err)
	}
	return Ok(s.cache.HydrateTimeEntries(ctx, entries))
}

func (s *Service) currentEntry(ctx context.Context, _ json.RawMessage) Result {
	entry, err := s.api.CurrentTimeEntry(ctx)
	if err != nil {
		return upstreamFailure(err)
	}
	if entry == nil {
		return Ok(nil)
	}
	hydrated := s.cache.HydrateTimeEntries(ctx, []toggl.TimeEntry{*entry})
	return Ok(hydrated[0])
}

type startEntryArgs struct {
	WorkspaceID int64    `json:"workspace_id"`
	ProjectID   int64    `json:"project_id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Billable    bool     `json:"billable"`
}

func (s *Service) startEntry(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[startEntryArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}

	entry, err := s.api.CreateTimeEntry(ctx, toggl.NewTimeEntry{
		WorkspaceID: wid,
		ProjectID:   a.ProjectID,
		Description: a.Description,
		Start:       time.Now().UTC().Format(time.RFC3339),
		Duration:    -1,
		Tags:        a.Tags,
		Billable:    a.Billable,
		CreatedWith: "mcp-toggl",
	})
	if err != nil {
		return upstreamFailure(err)
	}
	return Ok(entry)
}

type entryRefArgs struct {
	WorkspaceID int64 `json:"workspace_id"`
	EntryID     int64 `json:"entry_id"`
}

func (s *Service) stopEntry(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[entryRefArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}
	if a.EntryID == 0 {
		return Errf(ErrInvalidArgs, "entry_id is required")
	}

	entry, err := s.api.StopTimeEntry(ctx, wid, a.EntryID)
	if err != nil {
		return upstreamFailure(err)
	}
	return Ok(entry)
}

func (s *Service) deleteEntry(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[entryRefArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}
	if a.EntryID == 0 {
		return Errf(ErrInvalidArgs, "entry_id is required")
	}

	if err := s.api.DeleteTimeEntry(ctx, wid, a.EntryID); err != nil {
		return upstreamFailure(err)
	}
	return Ok(nil)
}

type createProjectArgs struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
	ClientID    int64  `json:"client_id"`
	Billable    bool   `json:"billable"`
	Color       string `json:"color"`
}

func (s *Service) createProject(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[createProjectArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}
	if a.Name == "" {
		return Errf(ErrInvalidArgs, "name is required")
	}

	project, err := s.api.CreateProject(ctx, wid, toggl.NewProject{
		Name:     a.Name,
		ClientID: a.ClientID,
		Active:   true,
		Billable: a.Billable,
		Color:    a.Color,
	})
	if err != nil {
		return upstreamFailure(err)
	}
	s.cache.InvalidateProjects()
	return Ok(project)
}

type updateProjectArgs struct {
	WorkspaceID int64   `json:"workspace_id"`
	ProjectID   int64   `json:"project_id"`
	Name        *string `json:"name"`
	ClientID    *int64  `json:"client_id"`
	Active      *bool   `json:"active"`
	Billable    *bool   `json:"billable"`
	Color       *string `json:"color"`
}

func (s *Service) updateProject(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[updateProjectArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}
	if a.ProjectID == 0 {
		return Errf(ErrInvalidArgs, "project_id is required")
	}
	update := toggl.ProjectUpdate{
		Name:     a.Name,
		ClientID: a.ClientID,
		Active:   a.Active,
		Billable: a.Billable,
		Color:    a.Color,
	}
	if update == (toggl.ProjectUpdate{}) {
		return Errf(ErrInvalidArgs, "no fields to update")
	}

	project, err := s.api.UpdateProject(ctx, wid, a.ProjectID, update)
	if err != nil {
		return upstreamFailure(err)
	}
	s.cache.InvalidateProjects()
	return Ok(project)
}

type createClientArgs struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
}

func (s *Service) createClient(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[createClientArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid, err := s.workspaceID(a.WorkspaceID)
	if err != nil {
		return Errf(ErrInvalidArgs, "%v", err)
	}
	if a.Name == "" {
		return Errf(ErrInvalidArgs, "name is required")
	}

	client, err := s.api.CreateClient(ctx, wid, toggl.NewClient{Name: a.Name})
	if err != nil {
		return upstreamFailure(err)
	}
	s.cache.InvalidateClients()
	return Ok(client)
}

type warmArgs struct {
	WorkspaceID int64 `json:"workspace_id"`
}

func (s *Service) cacheWarm(ctx context.Context, args json.RawMessage) Result {
	a, err := decode[warmArgs](args)
	if err != nil {
		return Errf(ErrInvalidArgs, "decoding arguments: %v", err)
	}
	wid := a.WorkspaceID
	if wid == 0 {
		wid = s.defaultWorkspace
	}
	if err := s.cache.Warm(ctx, wid); err != nil {
		return upstreamFailure(err)
	}
	return Ok(nil)
}

func (s *Service) cacheClear(_ context.Context, _ json.RawMessage) Result {
	s.cache.Clear()
	return Ok(nil)
}

func (s *Service) cacheStats(_ context.Context, _ json.RawMessage) Result {
	return Ok(s.cache.Stats())
}

func upstreamFailure(err error) Result {
	if errors.Is(err, toggl.ErrNotFound) {
		return Errf(ErrNotFound, "%v", err)
	}
	return Errf(ErrUpstream, "%v", err)
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates. An empty
// string is the zero time.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", raw)
	}
	return t, nil
}
