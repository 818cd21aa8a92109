// Package api is a minimal client for the Logfire project-listing endpoint.
// The tool makes exactly one authenticated GET per run; failures degrade to
// "could not fetch" at the call site rather than aborting the wizard.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the single outbound request.
const DefaultTimeout = 10 * time.Second

// Project is one entry of the writable-projects listing.
type Project struct {
	OrganizationName string `json:"organization_name"`
	ProjectName      string `json:"project_name"`
}

// Path returns the project as "org/name".
func (p Project) Path() string {
	return p.OrganizationName + "/" + p.ProjectName
}

// Client calls the Logfire API of a single instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given instance base URL and bearer
// token. A zero timeout falls back to DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WritableProjects fetches the projects the authenticated user can write to.
// A non-200 response or transport failure is returned as an error; callers
// treat any error as "unavailable", not fatal.
func (c *Client) WritableProjects(ctx context.Context) ([]Project, error) {
	url := c.baseURL + "/v1/writable-projects/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request; %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed; %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var projects []Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("failed to decode project list; %w", err)
	}

	slog.Debug("fetched writable projects", "count", len(projects), "base_url", c.baseURL)

	return projects, nil
}
