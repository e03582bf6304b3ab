package webhook_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gitops-manager/internal/automation"
	"gitops-manager/internal/webhook"
	pkgLog "gitops-manager/pkg/log"
)

type fakeAutomation struct {
	events []automation.ProcessWebhookInput
	err    error
}

func (f *fakeAutomation) ProcessWebhook(ctx context.Context, input automation.ProcessWebhookInput) (automation.ProcessWebhookOutput, error) {
	f.events = append(f.events, input)
	if f.err != nil {
		return automation.ProcessWebhookOutput{}, f.err
	}
	return automation.ProcessWebhookOutput{
		KeysUpdated: []string{"last_known_commit"},
		Message:     "recorded",
	}, nil
}

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func setupRouter(uc automation.UseCase, cfg webhook.SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := webhook.NewHandler(uc, cfg, pkgLog.NewNopLogger())
	r := gin.New()
	r.POST("/webhook/github", h.HandleGitHubWebhook)
	return r
}

func TestHandleGitHubWebhook(t *testing.T) {
	secret := "topsecret"
	cfg := webhook.SecurityConfig{Secret: secret, RateLimitPerMin: 600}

	pushPayload := []byte(`{
		"ref": "refs/heads/main",
		"repository": {"full_name": "acme/platform"},
		"head_commit": {"id": "abc123", "message": "feat(api): add webhook", "author": {"name": "dev"}}
	}`)

	t.Run("valid push event processed", func(t *testing.T) {
		uc := &fakeAutomation{}
		r := setupRouter(uc, cfg)

		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(pushPayload))
		req.Header.Set("X-GitHub-Event", "push")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, pushPayload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(uc.events) != 1 {
			t.Fatalf("expected 1 processed event, got %d", len(uc.events))
		}
		ev := uc.events[0].Event
		if ev.EventType != "push" || ev.Branch != "main" || ev.Commit != "abc123" {
			t.Errorf("unexpected event: %+v", ev)
		}
	})

	t.Run("invalid signature rejected", func(t *testing.T) {
		uc := &fakeAutomation{}
		r := setupRouter(uc, cfg)

		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(pushPayload))
		req.Header.Set("X-GitHub-Event", "push")
		req.Header.Set("X-Hub-Signature-256", signPayload("wrong", pushPayload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if len(uc.events) != 0 {
			t.Errorf("event must not be processed on bad signature")
		}
	})

	t.Run("merged PR reported as merged", func(t *testing.T) {
		uc := &fakeAutomation{}
		r := setupRouter(uc, cfg)

		payload := []byte(`{
			"action": "closed",
			"number": 42,
			"pull_request": {
				"title": "chore: sync config",
				"head": {"ref": "auto/config-sync", "sha": "fff000"},
				"user": {"login": "bot"},
				"merged": true
			},
			"repository": {"full_name": "acme/platform"}
		}`)

		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(payload))
		req.Header.Set("X-GitHub-Event", "pull_request")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		ev := uc.events[0].Event
		if ev.Action != "merged" || ev.PRNumber != 42 {
			t.Errorf("merged takes precedence over closed: %+v", ev)
		}
	})

	t.Run("unsupported event ignored", func(t *testing.T) {
		uc := &fakeAutomation{}
		r := setupRouter(uc, cfg)

		payload := []byte(`{}`)
		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(payload))
		req.Header.Set("X-GitHub-Event", "star")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(uc.events) != 0 {
			t.Errorf("unsupported event must not be processed")
		}
	})

	t.Run("IP whitelist enforced", func(t *testing.T) {
		uc := &fakeAutomation{}
		restricted := webhook.SecurityConfig{Secret: secret, AllowedIPs: []string{"10.0.0.1"}, RateLimitPerMin: 600}
		r := setupRouter(uc, restricted)

		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(pushPayload))
		req.RemoteAddr = "203.0.113.7:1234"
		req.Header.Set("X-GitHub-Event", "push")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, pushPayload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
