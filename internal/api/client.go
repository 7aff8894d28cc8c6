// Package api is the HTTP client for the simplyjobs server. It covers
// the four queue operations the engine needs plus the profile and
// withdrawal endpoints; wire format is the server's concern, callers
// only see typed results and error signals.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const contentType = "application/json"

// ErrAlreadyApplied is returned when the server rejects a duplicate
// application.
var ErrAlreadyApplied = errors.New("already applied to this job")

// StatusError is a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
}

// Client talks to the simplyjobs API with a bearer token.
type Client struct {
	baseURL    string
	token      string
	logger     zerolog.Logger
	HTTPClient *http.Client
}

// New creates an API client. timeout bounds each request.
func New(baseURL, token string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListJobs fetches the job queue. The server scopes the result to the
// caller: all jobs for jobseekers, own jobs for employers.
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.get(ctx, "/api/jobs/", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListApplied fetches the jobseeker's own applications.
func (c *Client) ListApplied(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.get(ctx, "/api/applied/", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Apply submits an application for the given job. A duplicate maps to
// ErrAlreadyApplied.
func (c *Client) Apply(ctx context.Context, jobID int) error {
	err := c.send(ctx, http.MethodPost, "/api/jobs/apply/", map[string]int{"job": jobID}, nil)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && strings.Contains(strings.ToLower(statusErr.Body), "already applied") {
		return ErrAlreadyApplied
	}
	return err
}

// ListApplicants fetches the respondent queue for one job.
func (c *Client) ListApplicants(ctx context.Context, jobID int) ([]Applicant, error) {
	var applicants []Applicant
	if err := c.get(ctx, fmt.Sprintf("/api/jobs/%d/applicants/", jobID), &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// UpdateApplications sets status on a batch of applications.
func (c *Client) UpdateApplications(ctx context.Context, ids []int, status string) error {
	payload := map[string]any{
		"application_ids": ids,
		"status":          status,
	}
	return c.send(ctx, http.MethodPut, "/api/applications/update/", payload, nil)
}

// WithdrawApplication deletes one of the caller's applications.
func (c *Client) WithdrawApplication(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/applied/delete/%d/", id), nil, nil)
}

// DeleteJob removes one of the employer's job postings.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/delete/%d/", id), nil, nil)
}

// TutorialSeen reports whether the account has dismissed the tutorial.
func (c *Client) TutorialSeen(ctx context.Context) (bool, error) {
	var resp struct {
		HasSeenTutorial bool `json:"has_seen_tutorial"`
	}
	if err := c.get(ctx, "/api/tutorial_seen/", &resp); err != nil {
		return false, err
	}
	return resp.HasSeenTutorial, nil
}

// MarkTutorialSeen records the tutorial as dismissed.
func (c *Client) MarkTutorialSeen(ctx context.Context) error {
	return c.send(ctx, http.MethodPatch, "/api/tutorial_seen/", nil, nil)
}

// Profile fetches a jobseeker profile by username.
func (c *Client) Profile(ctx context.Context, username string) (Profile, error) {
	var p Profile
	if err := c.get(ctx, fmt.Sprintf("/api/profile/%s/", username), &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)
	return c.do(req, dest)
}

// send issues a mutating request. Every mutation carries a request id
// so server-side logs can be correlated with client retries.
func (c *Client) send(ctx context.Context, method, path string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("X-Request-ID", uuid.NewString())

	return c.do(req, dest)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request, dest any) error {
	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if dest == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
