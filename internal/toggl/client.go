package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.track.toggl.com/api/v9"

// API talks to the Toggl Track v9 API on behalf of a single account.
type API struct {
	apiToken string
	baseURL  string
	client   *http.Client
	perPage  int

	maxRetries int
	retryBase  time.Duration

	// paceMu serializes requests so the upstream's 1 req/s limit holds
	// even under concurrent callers.
	paceMu      sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewAPI creates an accessor for the given API token. perPage bounds the
// page size requested from list endpoints.
func NewAPI(apiToken, baseURL string, perPage int) *API {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &API{
		apiToken:    apiToken,
		baseURL:     baseURL,
		client:      &http.Client{Timeout: 30 * time.Second},
		perPage:     perPage,
		maxRetries:  3,
		retryBase:   time.Second,
		minInterval: time.Second,
	}
}

// pace blocks until the minimum inter-request interval has elapsed. The lock
// is held across the wait so concurrent callers queue up one at a time.
func (a *API) pace(ctx context.Context) error {
	a.paceMu.Lock()
	defer a.paceMu.Unlock()
	if wait := a.minInterval - time.Since(a.lastRequest); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	a.lastRequest = time.Now()
	return nil
}

func (a *API) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
	}

	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return retryWithBackoff(ctx, a.maxRetries, a.retryBase, func() error {
		if err := a.pace(ctx); err != nil {
			return err
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(a.apiToken, "api_token")

		resp, err := a.client.Do(req)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			zap.L().Debug("toggl rate limited", zap.String("path", path))
			return &rateLimitError{}
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return &authError{message: string(respBody)}
		case resp.StatusCode == http.StatusNotFound:
			return ErrNotFound
		case resp.StatusCode >= 500:
			return &serverError{status: resp.StatusCode, body: string(respBody)}
		case resp.StatusCode >= 300:
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}

		if out == nil || len(respBody) == 0 || string(respBody) == "null" {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
		return nil
	})
}

func (a *API) listQuery() url.Values {
	q := url.Values{}
	if a.perPage > 0 {
		q.Set("per_page", fmt.Sprintf("%d", a.perPage))
	}
	return q
}
