package tools

import (
	"context"
	"fmt"

	"gitops-manager/internal/agent"
	"gitops-manager/internal/knowledge"
)

// KnowledgeSearcher is the knowledge surface the search tool needs.
// Satisfied by internal/knowledge.Service.
type KnowledgeSearcher interface {
	Search(ctx context.Context, topic, query string, limit int) ([]knowledge.Snippet, error)
}

// SearchKnowledgeTool lets agents query the knowledge collections.
type SearchKnowledgeTool struct {
	svc KnowledgeSearcher
}

// NewSearchKnowledgeTool creates a new search_knowledge tool.
func NewSearchKnowledgeTool(svc KnowledgeSearcher) agent.Tool {
	return &SearchKnowledgeTool{svc: svc}
}

func (t *SearchKnowledgeTool) Name() string {
	return "search_knowledge"
}

func (t *SearchKnowledgeTool) Description() string {
	return "Semantic search over the GitOps knowledge bases (kb_branching, kb_commits, kb_gitops). Returns scored text snippets."
}

func (t *SearchKnowledgeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"topic": map[string]interface{}{
				"type":        "string",
				"description": "Knowledge topic: kb_branching, kb_commits or kb_gitops",
			},
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Natural language search query",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of snippets (default 3)",
			},
		},
		"required": []string{"topic", "query"},
	}
}

func (t *SearchKnowledgeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	topic, _ := params["topic"].(string)
	query, _ := params["query"].(string)
	if topic == "" || query == "" {
		return nil, fmt.Errorf("topic and query parameters are required")
	}

	limit := 0
	if l, ok := params["limit"].(float64); ok {
		limit = int(l)
	}

	snippets, err := t.svc.Search(ctx, topic, query, limit)
	if err != nil {
		return nil, fmt.Errorf("knowledge search failed: %w", err)
	}

	return map[string]interface{}{
		"count":    len(snippets),
		"snippets": snippets,
	}, nil
}
