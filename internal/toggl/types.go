package toggl

import "time"

// Workspace is a Toggl workspace.
type Workspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is a Toggl project. ClientID is zero when the project has no
// client assigned.
type Project struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"workspace_id"`
	ClientID    int64  `json:"client_id,omitempty"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	Billable    bool   `json:"billable"`
	Color       string `json:"color,omitempty"`
}

// Client is a Toggl client (the customer a project is billed to, not the
// HTTP client).
type Client struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"wid"`
	Name        string `json:"name"`
}

// TimeEntry is a raw time-tracking record as returned by the upstream.
// ProjectID and TaskID are zero when unset; Stop is nil and Duration
// negative while the entry is still running.
type TimeEntry struct {
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	ProjectID   int64      `json:"project_id,omitempty"`
	TaskID      int64      `json:"task_id,omitempty"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop,omitempty"`
	Duration    int64      `json:"duration"`
	Tags        []string   `json:"tags,omitempty"`
	Billable    bool       `json:"billable"`
}

// Running reports whether the entry has not been stopped yet.
func (e *TimeEntry) Running() bool {
	return e.Stop == nil && e.Duration < 0
}

// NewTimeEntry describes a time entry to create.
type NewTimeEntry struct {
	WorkspaceID int64    `json:"workspace_id"`
	ProjectID   int64    `json:"project_id,omitempty"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	Duration    int64    `json:"duration"`
	Tags        []string `json:"tags,omitempty"`
	Billable    bool     `json:"billable,omitempty"`
	CreatedWith string   `json:"created_with"`
}

// NewProject describes a project to create.
type NewProject struct {
	Name     string `json:"name"`
	ClientID int64  `json:"client_id,omitempty"`
	Active   bool   `json:"active"`
	Billable bool   `json:"billable,omitempty"`
	Color    string `json:"color,omitempty"`
}

// ProjectUpdate is a partial update. Nil fields are omitted from the request
// body, so only the fields the caller actually set reach the upstream.
type ProjectUpdate struct {
	Name     *string `json:"name,omitempty"`
	ClientID *int64  `json:"client_id,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Billable *bool   `json:"billable,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// NewClient describes a client to create.
type NewClient struct {
	Name string `json:"name"`
}
