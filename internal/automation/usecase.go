package automation

import (
	"context"
	"fmt"

	pkgLog "gitops-manager/pkg/log"
)

type usecase struct {
	mem           MemoryStore
	defaultBranch string
	l             pkgLog.Logger
}

// ProcessWebhook maps repository events onto shared memory keys.
// A push to the default branch advances last_known_commit; a merged
// pull request records last_merged_pr. A closed-without-merge PR is
// deliberately ignored so a rejected change never looks deployed.
func (uc *usecase) ProcessWebhook(ctx context.Context, input ProcessWebhookInput) (ProcessWebhookOutput, error) {
	event := input.Event

	uc.l.Infof(ctx, "Processing webhook: %s/%s from %s", event.EventType, event.Action, event.Repository)

	switch event.EventType {
	case "push":
		if event.Branch != uc.defaultBranch {
			uc.l.Infof(ctx, "Push to non-default branch %s ignored", event.Branch)
			return ProcessWebhookOutput{
				Message: fmt.Sprintf("push to branch '%s' not tracked", event.Branch),
			}, nil
		}
		if event.Commit == "" {
			return ProcessWebhookOutput{Message: "push event without head commit"}, nil
		}

		if _, err := uc.mem.Set(ctx, KeyLastKnownCommit, event.Commit); err != nil {
			return ProcessWebhookOutput{}, fmt.Errorf("failed to record %s: %w", KeyLastKnownCommit, err)
		}
		return ProcessWebhookOutput{
			KeysUpdated: []string{KeyLastKnownCommit},
			Message:     fmt.Sprintf("recorded commit %s on %s", event.Commit, event.Branch),
		}, nil

	case "pull_request":
		if event.Action != "merged" {
			uc.l.Infof(ctx, "Skipping PR event with action: %s (only 'merged' is recorded)", event.Action)
			return ProcessWebhookOutput{
				Message: fmt.Sprintf("PR action '%s' not processed", event.Action),
			}, nil
		}

		record := map[string]any{
			"number": event.PRNumber,
			"title":  event.Message,
			"branch": event.Branch,
			"commit": event.Commit,
		}
		if _, err := uc.mem.Set(ctx, KeyLastMergedPR, record); err != nil {
			return ProcessWebhookOutput{}, fmt.Errorf("failed to record %s: %w", KeyLastMergedPR, err)
		}
		return ProcessWebhookOutput{
			KeysUpdated: []string{KeyLastMergedPR},
			Message:     fmt.Sprintf("recorded merged PR #%d", event.PRNumber),
		}, nil

	case "issue":
		record := map[string]any{
			"number": event.IssueNumber,
			"title":  event.Message,
			"action": event.Action,
		}
		if _, err := uc.mem.Set(ctx, KeyLastIssue, record); err != nil {
			return ProcessWebhookOutput{}, fmt.Errorf("failed to record %s: %w", KeyLastIssue, err)
		}
		return ProcessWebhookOutput{
			KeysUpdated: []string{KeyLastIssue},
			Message:     fmt.Sprintf("recorded issue #%d (%s)", event.IssueNumber, event.Action),
		}, nil

	default:
		uc.l.Infof(ctx, "Unsupported event type: %s", event.EventType)
		return ProcessWebhookOutput{
			Message: fmt.Sprintf("event type '%s' not processed", event.EventType),
		}, nil
	}
}
