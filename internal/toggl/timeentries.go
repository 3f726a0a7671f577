package toggl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ListTimeEntries returns the account's time entries between start and end.
// Zero times are omitted, which makes the upstream default to recent entries.
func (a *API) ListTimeEntries(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start_date", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		q.Set("end_date", end.Format(time.RFC3339))
	}
	var out []TimeEntry
	if err := a.do(ctx, http.MethodGet, "/me/time_entries", q, nil, &out); err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	return out, nil
}

// CurrentTimeEntry returns the running entry, or (nil, nil) when nothing is
// being tracked.
func (a *API) CurrentTimeEntry(ctx context.Context) (*TimeEntry, error) {
	var out TimeEntry
	if err := a.do(ctx, http.MethodGet, "/me/time_entries/current", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("getting current time entry: %w", err)
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

// CreateTimeEntry starts or records a time entry.
func (a *API) CreateTimeEntry(ctx context.Context, e NewTimeEntry) (TimeEntry, error) {
	var out TimeEntry
	path := fmt.Sprintf("/workspaces/%d/time_entries", e.WorkspaceID)
	if err := a.do(ctx, http.MethodPost, path, nil, e, &out); err != nil {
		return TimeEntry{}, fmt.Errorf("creating time entry: %w", err)
	}
	return out, nil
}

// StopTimeEntry stops a running entry.
func (a *API) StopTimeEntry(ctx context.Context, workspaceID, entryID int64) (TimeEntry, error) {
	var out TimeEntry
	path := fmt.Sprintf("/workspaces/%d/time_entries/%d/stop", workspaceID, entryID)
	if err := a.do(ctx, http.MethodPatch, path, nil, nil, &out); err != nil {
		return TimeEntry{}, fmt.Errorf("stopping time entry %d: %w", entryID, err)
	}
	return out, nil
}

// DeleteTimeEntry deletes an entry.
func (a *API) DeleteTimeEntry(ctx context.Context, workspaceID, entryID int64) error {
	path := fmt.Sprintf("/workspaces/%d/time_entries/%d", workspaceID, entryID)
	if err := a.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting time entry %d: %w", entryID, err)
	}
	return nil
}
