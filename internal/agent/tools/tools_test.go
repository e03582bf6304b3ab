package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gitops-manager/internal/agent/tools"
	"gitops-manager/internal/commitlint"
	"gitops-manager/internal/knowledge"
	"gitops-manager/internal/pipeline"
	"gitops-manager/internal/report"
	"gitops-manager/pkg/github"
)

// mockMemoryStore
type mockMemoryStore struct {
	data   map[string]any
	setErr error
}

func newMockMemoryStore() *mockMemoryStore {
	return &mockMemoryStore{data: map[string]any{}}
}

func (m *mockMemoryStore) All(ctx context.Context) (map[string]any, error) {
	return m.data, nil
}

func (m *mockMemoryStore) Get(ctx context.Context, key string) (map[string]any, error) {
	v, ok := m.data[key]
	if !ok {
		return map[string]any{key: nil}, nil
	}
	return map[string]any{key: v}, nil
}

func (m *mockMemoryStore) Set(ctx context.Context, key string, value any) (map[string]any, error) {
	if m.setErr != nil {
		return nil, m.setErr
	}
	m.data[key] = value
	return map[string]any{"status": "ok", "key": key, "value": value}, nil
}

// mockGitHubAPI
type mockGitHubAPI struct {
	branches      []github.Branch
	commits       []github.Commit
	prs           []github.PullRequest
	issue         *github.Issue
	fileContent   *github.FileContent
	decoded       string
	putResult     *github.PutFileResult
	err           error
	createdBranch string
	putPath       string
}

func (m *mockGitHubAPI) ListBranches(ctx context.Context, repo string) ([]github.Branch, error) {
	return m.branches, m.err
}

func (m *mockGitHubAPI) CreateBranch(ctx context.Context, repo, branch, base string) error {
	m.createdBranch = branch
	return m.err
}

func (m *mockGitHubAPI) ListCommits(ctx context.Context, repo, branch, since string) ([]github.Commit, error) {
	return m.commits, m.err
}

func (m *mockGitHubAPI) ListPullRequests(ctx context.Context, repo, state string) ([]github.PullRequest, error) {
	return m.prs, m.err
}

func (m *mockGitHubAPI) CreateIssue(ctx context.Context, repo, title, body string) (*github.Issue, error) {
	return m.issue, m.err
}

func (m *mockGitHubAPI) GetContents(ctx context.Context, repo, path, ref string) (*github.FileContent, string, error) {
	return m.fileContent, m.decoded, m.err
}

func (m *mockGitHubAPI) PutContents(ctx context.Context, repo, path, branch, message, content, sha string) (*github.PutFileResult, error) {
	m.putPath = path
	return m.putResult, m.err
}

// mockKnowledge
type mockKnowledge struct {
	snippets []knowledge.Snippet
	err      error
}

func (m *mockKnowledge) Search(ctx context.Context, topic, query string, limit int) ([]knowledge.Snippet, error) {
	return m.snippets, m.err
}

var testGHConfig = tools.GitHubToolConfig{
	DefaultRepo:    "acme/platform",
	DefaultBranch:  "main",
	WhitelistPaths: []string{"configs/", "infra/", "data/"},
}

func TestMemoryTools(t *testing.T) {
	ctx := context.Background()

	t.Run("read whole memory", func(t *testing.T) {
		store := newMockMemoryStore()
		store.data["last_known_commit"] = "abc123"

		tool := tools.NewReadSharedMemoryTool(store)
		out, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, ok := out.(map[string]any)
		if !ok || m["last_known_commit"] != "abc123" {
			t.Errorf("unexpected output: %v", out)
		}
	})

	t.Run("read single key returns null for absent", func(t *testing.T) {
		tool := tools.NewReadSharedMemoryTool(newMockMemoryStore())
		out, err := tool.Execute(ctx, map[string]interface{}{"key": "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]any)
		if v, present := m["missing"]; !present || v != nil {
			t.Errorf("expected null value for missing key, got %v", out)
		}
	})

	t.Run("write requires key", func(t *testing.T) {
		tool := tools.NewWriteSharedMemoryTool(newMockMemoryStore())
		if _, err := tool.Execute(ctx, map[string]interface{}{"value": 1}); err == nil {
			t.Errorf("expected error for missing key")
		}
	})

	t.Run("write stores value", func(t *testing.T) {
		store := newMockMemoryStore()
		tool := tools.NewWriteSharedMemoryTool(store)
		out, err := tool.Execute(ctx, map[string]interface{}{"key": "last_merged_pr", "value": float64(42)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]any)
		if m["status"] != "ok" || store.data["last_merged_pr"] != float64(42) {
			t.Errorf("unexpected result: %v", out)
		}
	})
}

func TestGitOpsTools(t *testing.T) {
	ctx := context.Background()

	t.Run("validate_commit_message", func(t *testing.T) {
		tool := tools.NewValidateCommitMessageTool(commitlint.New())

		out, err := tool.Execute(ctx, map[string]interface{}{"message": "feat(api): add webhook receiver"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res := out.(commitlint.Result); !res.Valid {
			t.Errorf("expected valid message, got %+v", res)
		}

		out, _ = tool.Execute(ctx, map[string]interface{}{"message": "added stuff"})
		if res := out.(commitlint.Result); res.Valid || res.Reason == "" {
			t.Errorf("expected invalid with reason, got %+v", res)
		}
	})

	t.Run("trigger_pipeline uses default repo", func(t *testing.T) {
		fixed := time.Date(2025, 10, 6, 12, 30, 45, 0, time.UTC)
		tool := tools.NewTriggerPipelineTool(pipeline.NewWithClock(func() time.Time { return fixed }), "acme/platform")

		out, err := tool.Execute(ctx, map[string]interface{}{"branch": "main"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rec := out.(pipeline.Record)
		if rec.Status != pipeline.StatusTriggered || rec.Repo != "acme/platform" {
			t.Errorf("unexpected record: %+v", rec)
		}
		if !strings.HasPrefix(rec.PipelineID, "mock-pipeline-acme-platform-main-") {
			t.Errorf("unexpected pipeline id: %s", rec.PipelineID)
		}
	})

	t.Run("trigger_pipeline requires branch", func(t *testing.T) {
		tool := tools.NewTriggerPipelineTool(pipeline.New(), "acme/platform")
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Errorf("expected error for missing branch")
		}
	})

	t.Run("create_report_file", func(t *testing.T) {
		dir := t.TempDir()
		tool := tools.NewCreateReportFileTool(report.New(dir), "acme/platform")

		out, err := tool.Execute(ctx, map[string]interface{}{
			"title":      "Deployment Check",
			"content_md": "All good.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res := out.(report.WriteResult)
		if res.Status != report.StatusWritten || !strings.Contains(res.Path, "acme_platform_deployment-check_") {
			t.Errorf("unexpected result: %+v", res)
		}
	})
}

func TestGitHubTools(t *testing.T) {
	ctx := context.Background()

	t.Run("list_branches formats results", func(t *testing.T) {
		api := &mockGitHubAPI{}
		api.branches = []github.Branch{{Name: "main"}, {Name: "auto/update-config"}}

		tool := tools.NewListBranchesTool(api, testGHConfig)
		out, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["count"] != 2 {
			t.Errorf("unexpected count: %v", m["count"])
		}
	})

	t.Run("create_branch rejects non-auto prefix", func(t *testing.T) {
		api := &mockGitHubAPI{}
		tool := tools.NewCreateBranchTool(api, testGHConfig)

		_, err := tool.Execute(ctx, map[string]interface{}{"branch": "feature/manual"})
		if err == nil || !strings.Contains(err.Error(), "auto/") {
			t.Fatalf("expected auto/ prefix rejection, got %v", err)
		}
		if api.createdBranch != "" {
			t.Errorf("branch should not have been created")
		}
	})

	t.Run("create_branch accepts auto prefix", func(t *testing.T) {
		api := &mockGitHubAPI{}
		tool := tools.NewCreateBranchTool(api, testGHConfig)

		out, err := tool.Execute(ctx, map[string]interface{}{"branch": "auto/update-config"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["status"] != "created" || m["base"] != "main" || api.createdBranch != "auto/update-config" {
			t.Errorf("unexpected result: %v", m)
		}
	})

	t.Run("put_file rejects non-whitelisted path", func(t *testing.T) {
		api := &mockGitHubAPI{}
		tool := tools.NewPutFileTool(api, testGHConfig, commitlint.New())

		_, err := tool.Execute(ctx, map[string]interface{}{
			"path":    "src/main.go",
			"message": "feat(core): update",
			"content": "x",
		})
		if err == nil || !strings.Contains(err.Error(), "rejected") {
			t.Fatalf("expected whitelist rejection, got %v", err)
		}
		if api.putPath != "" {
			t.Errorf("file should not have been written")
		}
	})

	t.Run("put_file rejects bad commit message", func(t *testing.T) {
		tool := tools.NewPutFileTool(&mockGitHubAPI{}, testGHConfig, commitlint.New())
		_, err := tool.Execute(ctx, map[string]interface{}{
			"path":    "configs/app.yaml",
			"message": "updated config",
			"content": "x",
		})
		if err == nil || !strings.Contains(err.Error(), "commit message") {
			t.Fatalf("expected commit message rejection, got %v", err)
		}
	})

	t.Run("put_file commits whitelisted path", func(t *testing.T) {
		api := &mockGitHubAPI{putResult: &github.PutFileResult{}}
		api.putResult.Content.Path = "configs/app.yaml"
		api.putResult.Commit.SHA = "deadbeef"

		tool := tools.NewPutFileTool(api, testGHConfig, commitlint.New())
		out, err := tool.Execute(ctx, map[string]interface{}{
			"path":    "configs/app.yaml",
			"message": "chore(configs): bump image tag",
			"content": "image: v2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["status"] != "committed" || m["commit_sha"] != "deadbeef" {
			t.Errorf("unexpected result: %v", m)
		}
	})

	t.Run("create_issue", func(t *testing.T) {
		api := &mockGitHubAPI{issue: &github.Issue{Number: 7, HTMLURL: "https://github.com/acme/platform/issues/7"}}
		tool := tools.NewCreateIssueTool(api, testGHConfig)

		out, err := tool.Execute(ctx, map[string]interface{}{"title": "Deployment drift detected"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["number"] != 7 {
			t.Errorf("unexpected issue: %v", m)
		}
	})

	t.Run("api errors propagate", func(t *testing.T) {
		api := &mockGitHubAPI{err: errors.New("github down")}
		tool := tools.NewListCommitsTool(api, testGHConfig)
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Errorf("expected error from API failure")
		}
	})
}

func TestSearchKnowledgeTool(t *testing.T) {
	ctx := context.Background()

	t.Run("returns snippets", func(t *testing.T) {
		svc := &mockKnowledge{snippets: []knowledge.Snippet{{Text: "Always branch from main.", Score: 0.9}}}
		tool := tools.NewSearchKnowledgeTool(svc)

		out, err := tool.Execute(ctx, map[string]interface{}{"topic": "kb_branching", "query": "branching", "limit": float64(2)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["count"] != 1 {
			t.Errorf("unexpected count: %v", m["count"])
		}
	})

	t.Run("requires topic and query", func(t *testing.T) {
		tool := tools.NewSearchKnowledgeTool(&mockKnowledge{})
		if _, err := tool.Execute(ctx, map[string]interface{}{"topic": "kb_commits"}); err == nil {
			t.Errorf("expected error for missing query")
		}
	})
}
