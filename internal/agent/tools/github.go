package tools

import (
	"context"
	"fmt"
	"strings"

	"gitops-manager/internal/agent"
	"gitops-manager/internal/commitlint"
	"gitops-manager/pkg/github"
)

// AutoBranchPrefix is the only prefix agents may use when creating
// branches. Everything else is reserved for humans.
const AutoBranchPrefix = "auto/"

// GitHubAPI is the subset of pkg/github.Client the tools need.
type GitHubAPI interface {
	ListBranches(ctx context.Context, repo string) ([]github.Branch, error)
	CreateBranch(ctx context.Context, repo, branch, base string) error
	ListCommits(ctx context.Context, repo, branch, since string) ([]github.Commit, error)
	ListPullRequests(ctx context.Context, repo, state string) ([]github.PullRequest, error)
	CreateIssue(ctx context.Context, repo, title, body string) (*github.Issue, error)
	GetContents(ctx context.Context, repo, path, ref string) (*github.FileContent, string, error)
	PutContents(ctx context.Context, repo, path, branch, message, content, sha string) (*github.PutFileResult, error)
}

// GitHubToolConfig carries the repository defaults and write guards
// shared by the GitHub-backed tools.
type GitHubToolConfig struct {
	DefaultRepo    string
	DefaultBranch  string
	WhitelistPaths []string
}

func (c GitHubToolConfig) repoOrDefault(params map[string]interface{}) (string, error) {
	repo, _ := params["repo_full_name"].(string)
	if repo == "" {
		repo = c.DefaultRepo
	}
	if repo == "" {
		return "", fmt.Errorf("repo_full_name parameter is required")
	}
	return repo, nil
}

func (c GitHubToolConfig) pathAllowed(path string) bool {
	for _, prefix := range c.WhitelistPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

var repoParam = map[string]interface{}{
	"type":        "string",
	"description": "Repository in owner/name form (defaults to the configured repo)",
}

// ListBranchesTool lists repository branches.
type ListBranchesTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewListBranchesTool creates a new list_branches tool.
func NewListBranchesTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &ListBranchesTool{api: api, cfg: cfg}
}

func (t *ListBranchesTool) Name() string        { return "list_branches" }
func (t *ListBranchesTool) Description() string { return "List branches of a GitHub repository." }

func (t *ListBranchesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{"repo_full_name": repoParam},
	}
}

func (t *ListBranchesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	branches, err := t.api.ListBranches(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(branches))
	for _, b := range branches {
		results = append(results, map[string]interface{}{
			"name":      b.Name,
			"sha":       b.Commit.SHA,
			"protected": b.Protected,
		})
	}
	return map[string]interface{}{"count": len(results), "branches": results}, nil
}

// CreateBranchTool creates a branch from a base ref. Only auto/
// prefixed names are accepted.
type CreateBranchTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewCreateBranchTool creates a new create_branch tool.
func NewCreateBranchTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &CreateBranchTool{api: api, cfg: cfg}
}

func (t *CreateBranchTool) Name() string { return "create_branch" }

func (t *CreateBranchTool) Description() string {
	return "Create a new branch from a base branch. Branch names must start with 'auto/'."
}

func (t *CreateBranchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"branch": map[string]interface{}{
				"type":        "string",
				"description": "New branch name; must start with 'auto/'",
			},
			"base": map[string]interface{}{
				"type":        "string",
				"description": "Base branch to fork from (defaults to the configured default branch)",
			},
		},
		"required": []string{"branch"},
	}
}

func (t *CreateBranchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	branch, _ := params["branch"].(string)
	if branch == "" {
		return nil, fmt.Errorf("branch parameter is required")
	}
	if !strings.HasPrefix(branch, AutoBranchPrefix) {
		return nil, fmt.Errorf("branch %q rejected: automated branches must start with %q", branch, AutoBranchPrefix)
	}

	base, _ := params["base"].(string)
	if base == "" {
		base = t.cfg.DefaultBranch
	}

	if err := t.api.CreateBranch(ctx, repo, branch, base); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return map[string]interface{}{"status": "created", "branch": branch, "base": base}, nil
}

// ListCommitsTool lists recent commits on a branch.
type ListCommitsTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewListCommitsTool creates a new list_commits tool.
func NewListCommitsTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &ListCommitsTool{api: api, cfg: cfg}
}

func (t *ListCommitsTool) Name() string { return "list_commits" }

func (t *ListCommitsTool) Description() string {
	return "List recent commits on a branch, optionally only those after an ISO timestamp."
}

func (t *ListCommitsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"branch": map[string]interface{}{
				"type":        "string",
				"description": "Branch to inspect (defaults to the configured default branch)",
			},
			"since": map[string]interface{}{
				"type":        "string",
				"description": "Only commits after this ISO 8601 timestamp",
			},
		},
	}
}

func (t *ListCommitsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	branch, _ := params["branch"].(string)
	if branch == "" {
		branch = t.cfg.DefaultBranch
	}
	since, _ := params["since"].(string)

	commits, err := t.api.ListCommits(ctx, repo, branch, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(commits))
	for _, c := range commits {
		results = append(results, map[string]interface{}{
			"sha":     c.SHA,
			"message": c.Commit.Message,
			"author":  c.Commit.Author.Name,
			"date":    c.Commit.Author.Date,
		})
	}
	return map[string]interface{}{"count": len(results), "commits": results}, nil
}

// ListPullRequestsTool lists pull requests.
type ListPullRequestsTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewListPullRequestsTool creates a new list_pull_requests tool.
func NewListPullRequestsTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &ListPullRequestsTool{api: api, cfg: cfg}
}

func (t *ListPullRequestsTool) Name() string { return "list_pull_requests" }

func (t *ListPullRequestsTool) Description() string {
	return "List pull requests by state (open, closed or all)."
}

func (t *ListPullRequestsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"state": map[string]interface{}{
				"type":        "string",
				"description": "PR state filter: open, closed or all (default open)",
			},
		},
	}
}

func (t *ListPullRequestsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	state, _ := params["state"].(string)
	if state == "" {
		state = "open"
	}

	prs, err := t.api.ListPullRequests(ctx, repo, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(prs))
	for _, pr := range prs {
		results = append(results, map[string]interface{}{
			"number":    pr.Number,
			"title":     pr.Title,
			"state":     pr.State,
			"author":    pr.User.Login,
			"head":      pr.Head.Ref,
			"base":      pr.Base.Ref,
			"merged_at": pr.MergedAt,
		})
	}
	return map[string]interface{}{"count": len(results), "pull_requests": results}, nil
}

// CreateIssueTool opens a GitHub issue.
type CreateIssueTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewCreateIssueTool creates a new create_issue tool.
func NewCreateIssueTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &CreateIssueTool{api: api, cfg: cfg}
}

func (t *CreateIssueTool) Name() string { return "create_issue" }

func (t *CreateIssueTool) Description() string {
	return "Open a GitHub issue, e.g. to flag a failed deployment check."
}

func (t *CreateIssueTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Issue title",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "Issue body in markdown",
			},
		},
		"required": []string{"title"},
	}
}

func (t *CreateIssueTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	title, _ := params["title"].(string)
	if title == "" {
		return nil, fmt.Errorf("title parameter is required")
	}
	body, _ := params["body"].(string)

	issue, err := t.api.CreateIssue(ctx, repo, title, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return map[string]interface{}{"number": issue.Number, "url": issue.HTMLURL}, nil
}

// GetFileContentTool fetches a file from the repository.
type GetFileContentTool struct {
	api GitHubAPI
	cfg GitHubToolConfig
}

// NewGetFileContentTool creates a new get_file_content tool.
func NewGetFileContentTool(api GitHubAPI, cfg GitHubToolConfig) agent.Tool {
	return &GetFileContentTool{api: api, cfg: cfg}
}

func (t *GetFileContentTool) Name() string { return "get_file_content" }

func (t *GetFileContentTool) Description() string {
	return "Fetch a file's decoded content and blob SHA from the repository."
}

func (t *GetFileContentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"path": map[string]interface{}{
				"type":        "string",
				"description": "File path within the repository",
			},
			"ref": map[string]interface{}{
				"type":        "string",
				"description": "Branch, tag or commit SHA (defaults to the default branch)",
			},
		},
		"required": []string{"path"},
	}
}

func (t *GetFileContentTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	path, _ := params["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("path parameter is required")
	}
	ref, _ := params["ref"].(string)

	file, decoded, err := t.api.GetContents(ctx, repo, path, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get file content: %w", err)
	}

	return map[string]interface{}{
		"path":    file.Path,
		"sha":     file.SHA,
		"content": decoded,
	}, nil
}

// PutFileTool creates or updates a file. Writes are restricted to
// whitelisted path prefixes and the commit message must pass validation.
type PutFileTool struct {
	api  GitHubAPI
	cfg  GitHubToolConfig
	lint commitlint.Service
}

// NewPutFileTool creates a new put_file tool.
func NewPutFileTool(api GitHubAPI, cfg GitHubToolConfig, lint commitlint.Service) agent.Tool {
	return &PutFileTool{api: api, cfg: cfg, lint: lint}
}

func (t *PutFileTool) Name() string { return "put_file" }

func (t *PutFileTool) Description() string {
	return "Create or update a file in the repository. Only whitelisted paths are writable and the commit message must follow Conventional Commits."
}

func (t *PutFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": repoParam,
			"path": map[string]interface{}{
				"type":        "string",
				"description": "File path within the repository",
			},
			"branch": map[string]interface{}{
				"type":        "string",
				"description": "Branch to commit to",
			},
			"message": map[string]interface{}{
				"type":        "string",
				"description": "Commit message (Conventional Commits format)",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "New file content (plain text)",
			},
			"sha": map[string]interface{}{
				"type":        "string",
				"description": "Existing blob SHA; required when updating an existing file",
			},
		},
		"required": []string{"path", "message", "content"},
	}
}

func (t *PutFileTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, err := t.cfg.repoOrDefault(params)
	if err != nil {
		return nil, err
	}

	path, _ := params["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("path parameter is required")
	}
	if !t.cfg.pathAllowed(path) {
		return nil, fmt.Errorf("path %q rejected: automated writes are limited to %v", path, t.cfg.WhitelistPaths)
	}

	message, _ := params["message"].(string)
	if res := t.lint.Validate(message); !res.Valid {
		return nil, fmt.Errorf("commit message rejected: %s", res.Reason)
	}

	content, _ := params["content"].(string)
	branch, _ := params["branch"].(string)
	if branch == "" {
		branch = t.cfg.DefaultBranch
	}
	sha, _ := params["sha"].(string)

	result, err := t.api.PutContents(ctx, repo, path, branch, message, content, sha)
	if err != nil {
		return nil, fmt.Errorf("failed to put file: %w", err)
	}

	return map[string]interface{}{
		"status":     "committed",
		"path":       result.Content.Path,
		"commit_sha": result.Commit.SHA,
	}, nil
}
