package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.github.com"

// Client is a minimal GitHub REST v3 API client covering the operations
// the GitOps agents need.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GitHub client authenticated with a personal access
// token via oauth2. An empty token yields an unauthenticated client
// (read-only public data, low rate limits).
func NewClient(token string) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: httpClient,
	}
}

// WithBaseURL overrides the API base URL (GitHub Enterprise, tests).
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// ListBranches lists branches of a repository.
func (c *Client) ListBranches(ctx context.Context, repo string) ([]Branch, error) {
	var branches []Branch
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/branches", repo), nil, &branches)
	return branches, err
}

// CreateBranch creates a new branch pointing at the head of base.
func (c *Client) CreateBranch(ctx context.Context, repo, branch, base string) error {
	var baseRef reference
	path := fmt.Sprintf("/repos/%s/git/ref/heads/%s", repo, base)
	if err := c.do(ctx, http.MethodGet, path, nil, &baseRef); err != nil {
		return fmt.Errorf("failed to resolve base %q: %w", base, err)
	}

	req := createRefRequest{
		Ref: "refs/heads/" + branch,
		SHA: baseRef.Object.SHA,
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/git/refs", repo), req, nil)
}

// ListCommits lists commits on a branch, optionally since an RFC3339 time.
func (c *Client) ListCommits(ctx context.Context, repo, branch, since string) ([]Commit, error) {
	q := url.Values{}
	if branch != "" {
		q.Set("sha", branch)
	}
	if since != "" {
		q.Set("since", since)
	}
	path := fmt.Sprintf("/repos/%s/commits", repo)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var commits []Commit
	err := c.do(ctx, http.MethodGet, path, nil, &commits)
	return commits, err
}

// ListPullRequests lists pull requests in the given state (open|closed|all).
func (c *Client) ListPullRequests(ctx context.Context, repo, state string) ([]PullRequest, error) {
	if state == "" {
		state = "open"
	}
	var prs []PullRequest
	path := fmt.Sprintf("/repos/%s/pulls?state=%s", repo, url.QueryEscape(state))
	err := c.do(ctx, http.MethodGet, path, nil, &prs)
	return prs, err
}

// CreateIssue opens an issue on the repository.
func (c *Client) CreateIssue(ctx context.Context, repo, title, body string) (*Issue, error) {
	var issue Issue
	req := createIssueRequest{Title: title, Body: body}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/issues", repo), req, &issue)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetContents fetches a file and returns its decoded content plus blob SHA.
func (c *Client) GetContents(ctx context.Context, repo, path, ref string) (*FileContent, string, error) {
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)
	if ref != "" {
		apiPath += "?ref=" + url.QueryEscape(ref)
	}

	var file FileContent
	if err := c.do(ctx, http.MethodGet, apiPath, nil, &file); err != nil {
		return nil, "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode file content: %w", err)
	}
	return &file, string(decoded), nil
}

// PutContents creates or updates a file on a branch with the given commit
// message. sha must be the current blob SHA when updating, empty when creating.
func (c *Client) PutContents(ctx context.Context, repo, path, branch, message, content, sha string) (*PutFileResult, error) {
	req := putFileRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  branch,
		SHA:     sha,
	}

	var result PutFileResult
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)
	if err := c.do(ctx, http.MethodPut, apiPath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompareBranches compares base...head and reports ahead/behind counts.
func (c *Client) CompareBranches(ctx context.Context, repo, base, head string) (*Comparison, error) {
	var cmp Comparison
	path := fmt.Sprintf("/repos/%s/compare/%s...%s", repo, url.PathEscape(base), url.PathEscape(head))
	if err := c.do(ctx, http.MethodGet, path, nil, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// do executes one API call, marshaling body in and result out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("github API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode github response: %w", err)
	}
	return nil
}
