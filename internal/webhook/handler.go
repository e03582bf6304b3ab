package webhook

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gitops-manager/internal/automation"
	"gitops-manager/internal/model"
	pkgResponse "gitops-manager/pkg/response"
)

// HandleGitHubWebhook processes GitHub webhook events. Processing is
// synchronous: the only side effect is a shared memory write, so the
// result can be returned in the acknowledgement.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// IP whitelist, when configured
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature
	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateGitHubSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "GitHub signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Get event type
	eventType := c.GetHeader("X-GitHub-Event")

	// Parse event
	var event *model.WebhookEvent
	switch eventType {
	case "push":
		event, err = h.githubParser.ParsePushEvent(body)
	case "pull_request":
		event, err = h.githubParser.ParsePullRequestEvent(body)
	case "issues":
		event, err = h.githubParser.ParseIssueEvent(body)
	default:
		h.l.Infof(ctx, "Unsupported GitHub event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "Failed to parse GitHub event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	output, err := h.automationUC.ProcessWebhook(ctx, automation.ProcessWebhookInput{Event: *event})
	if err != nil {
		h.l.Errorf(ctx, "Webhook processing failed: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	pkgResponse.OK(c, gin.H{
		"status":       "accepted",
		"keys_updated": output.KeysUpdated,
		"message":      output.Message,
	})
}
