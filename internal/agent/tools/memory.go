package tools

import (
	"context"
	"fmt"

	"gitops-manager/internal/agent"
)

// MemoryStore is the shared memory surface the memory tools need.
// Satisfied by internal/memory.Store.
type MemoryStore interface {
	All(ctx context.Context) (map[string]any, error)
	Get(ctx context.Context, key string) (map[string]any, error)
	Set(ctx context.Context, key string, value any) (map[string]any, error)
}

// ReadSharedMemoryTool exposes shared memory reads to agents.
type ReadSharedMemoryTool struct {
	store MemoryStore
}

// NewReadSharedMemoryTool creates a new read_shared_memory tool.
func NewReadSharedMemoryTool(store MemoryStore) agent.Tool {
	return &ReadSharedMemoryTool{store: store}
}

func (t *ReadSharedMemoryTool) Name() string {
	return "read_shared_memory"
}

func (t *ReadSharedMemoryTool) Description() string {
	return "Read the shared memory JSON. If key is provided, returns only that key's value (null when absent); otherwise returns the whole object."
}

func (t *ReadSharedMemoryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Memory key to read (e.g., 'last_known_commit'). Omit to read everything.",
			},
		},
	}
}

func (t *ReadSharedMemoryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	key, _ := params["key"].(string)
	if key == "" {
		return t.store.All(ctx)
	}
	return t.store.Get(ctx, key)
}

// WriteSharedMemoryTool exposes shared memory writes to agents.
type WriteSharedMemoryTool struct {
	store MemoryStore
}

// NewWriteSharedMemoryTool creates a new write_shared_memory tool.
func NewWriteSharedMemoryTool(store MemoryStore) agent.Tool {
	return &WriteSharedMemoryTool{store: store}
}

func (t *WriteSharedMemoryTool) Name() string {
	return "write_shared_memory"
}

func (t *WriteSharedMemoryTool) Description() string {
	return "Write a key/value pair into shared memory. Returns a confirmation with the stored key and value."
}

func (t *WriteSharedMemoryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Memory key to write (e.g., 'last_known_commit')",
			},
			"value": map[string]interface{}{
				"description": "Value to store. May be a string, number, boolean, object or list.",
			},
		},
		"required": []string{"key"},
	}
}

func (t *WriteSharedMemoryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter is required")
	}
	return t.store.Set(ctx, key, params["value"])
}
