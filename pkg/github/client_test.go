package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitops-manager/pkg/github"
)

func TestGitHubClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(path, "/branches"):
			w.Write([]byte(`[{"name":"main","commit":{"sha":"abc123"}},{"name":"auto/config-sync","commit":{"sha":"def456"}}]`))

		case r.Method == http.MethodGet && strings.Contains(path, "/git/ref/heads/"):
			if strings.HasSuffix(path, "/missing") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"ref":"refs/heads/main","object":{"sha":"abc123"}}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/git/refs"):
			var req struct {
				Ref string `json:"ref"`
				SHA string `json:"sha"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if req.SHA != "abc123" || !strings.HasPrefix(req.Ref, "refs/heads/") {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"ref":"` + req.Ref + `"}`))

		case r.Method == http.MethodGet && strings.HasSuffix(path, "/commits"):
			if r.URL.Query().Get("sha") != "main" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`[{"sha":"abc123","commit":{"message":"feat: x","author":{"name":"dev","date":"2025-10-06T00:00:00Z"}}}]`))

		case r.Method == http.MethodGet && strings.HasSuffix(path, "/pulls"):
			w.Write([]byte(`[{"number":12,"title":"chore: sync","state":"open","head":{"ref":"auto/config-sync","sha":"def456"}}]`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/issues"):
			var req struct {
				Title string `json:"title"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"number":7,"title":"` + req.Title + `","html_url":"https://example.com/7"}`))

		case r.Method == http.MethodGet && strings.Contains(path, "/contents/"):
			encoded := base64.StdEncoding.EncodeToString([]byte("app: config"))
			w.Write([]byte(`{"path":"configs/app.yaml","sha":"blob1","content":"` + encoded + `","encoding":"base64"}`))

		case r.Method == http.MethodPut && strings.Contains(path, "/contents/"):
			var req struct {
				Message string `json:"message"`
				Content string `json:"content"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if req.Message == "" || req.Content == "" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"content":{"path":"configs/app.yaml","sha":"blob2"},"commit":{"sha":"newsha"}}`))

		case r.Method == http.MethodGet && strings.Contains(path, "/compare/"):
			w.Write([]byte(`{"status":"behind","ahead_by":0,"behind_by":3}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := github.NewClient("test-token").WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("ListBranches", func(t *testing.T) {
		branches, err := client.ListBranches(ctx, "o/r")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(branches) != 2 || branches[0].Name != "main" || branches[0].Commit.SHA != "abc123" {
			t.Errorf("unexpected branches: %+v", branches)
		}
	})

	t.Run("CreateBranch", func(t *testing.T) {
		if err := client.CreateBranch(ctx, "o/r", "auto/feature-x", "main"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("CreateBranch missing base", func(t *testing.T) {
		err := client.CreateBranch(ctx, "o/r", "auto/feature-x", "missing")
		if err == nil {
			t.Errorf("expected error for missing base branch")
		}
	})

	t.Run("ListCommits", func(t *testing.T) {
		commits, err := client.ListCommits(ctx, "o/r", "main", "2025-10-01T00:00:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(commits) != 1 || commits[0].SHA != "abc123" {
			t.Errorf("unexpected commits: %+v", commits)
		}
	})

	t.Run("ListPullRequests", func(t *testing.T) {
		prs, err := client.ListPullRequests(ctx, "o/r", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(prs) != 1 || prs[0].Number != 12 {
			t.Errorf("unexpected prs: %+v", prs)
		}
	})

	t.Run("CreateIssue", func(t *testing.T) {
		issue, err := client.CreateIssue(ctx, "o/r", "Deployment log", "details")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if issue.Number != 7 {
			t.Errorf("unexpected issue: %+v", issue)
		}
	})

	t.Run("GetContents", func(t *testing.T) {
		file, decoded, err := client.GetContents(ctx, "o/r", "configs/app.yaml", "main")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.SHA != "blob1" || decoded != "app: config" {
			t.Errorf("unexpected contents: %+v %q", file, decoded)
		}
	})

	t.Run("PutContents", func(t *testing.T) {
		res, err := client.PutContents(ctx, "o/r", "configs/app.yaml", "auto/config-sync", "chore(config): sync", "new content", "blob1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Commit.SHA != "newsha" {
			t.Errorf("unexpected put result: %+v", res)
		}
	})

	t.Run("CompareBranches", func(t *testing.T) {
		cmp, err := client.CompareBranches(ctx, "o/r", "main", "auto/config-sync")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmp.Status != "behind" || cmp.BehindBy != 3 {
			t.Errorf("unexpected comparison: %+v", cmp)
		}
	})
}
