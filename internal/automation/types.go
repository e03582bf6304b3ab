package automation

import (
	"gitops-manager/internal/model"
)

// Memory keys written by the webhook processor and read by the agents.
const (
	KeyLastKnownCommit = "last_known_commit"
	KeyLastMergedPR    = "last_merged_pr"
	KeyLastIssue       = "last_issue"
)

// ProcessWebhookInput is input for webhook processing
type ProcessWebhookInput struct {
	Event model.WebhookEvent
}

// ProcessWebhookOutput is result of webhook processing
type ProcessWebhookOutput struct {
	KeysUpdated []string // Shared memory keys that were written
	Message     string   // Summary message
}
