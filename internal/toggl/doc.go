// Package toggl implements the upstream accessor for the Toggl Track v9 API.
//
// All requests share a single pacer that enforces the upstream's one request
// per second limit, and a common retry helper with exponential back-off for
// rate-limit (429) and server (5xx) responses. Authentication is HTTP basic
// auth with a static API token; auth failures are terminal and never retried.
//
// The HTTP client and base URL are plain fields so that tests can redirect
// calls to local httptest servers without making live API requests.
package toggl
