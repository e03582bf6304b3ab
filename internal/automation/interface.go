package automation

import (
	"context"
)

type UseCase interface {
	// ProcessWebhook folds a webhook event into shared memory so the
	// agents see the repository's latest state.
	ProcessWebhook(ctx context.Context, input ProcessWebhookInput) (ProcessWebhookOutput, error)
}

// MemoryStore is the shared memory surface the processor writes to.
// Satisfied by internal/memory.Store.
type MemoryStore interface {
	Set(ctx context.Context, key string, value any) (map[string]any, error)
}
