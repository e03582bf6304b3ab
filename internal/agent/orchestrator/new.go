package orchestrator

import (
	"context"

	"gitops-manager/internal/agent"
	"gitops-manager/internal/knowledge"
	"gitops-manager/pkg/llmprovider"
	pkgLog "gitops-manager/pkg/log"
)

// LLM is the generation surface the orchestrator needs. Satisfied by
// pkg/llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// KnowledgeSearcher augments agent prompts with domain snippets.
// Satisfied by internal/knowledge.Service. May be nil.
type KnowledgeSearcher interface {
	Search(ctx context.Context, topic, query string, limit int) ([]knowledge.Snippet, error)
}

type Orchestrator struct {
	llm       LLM
	registry  *agent.ToolRegistry
	knowledge KnowledgeSearcher
	l         pkgLog.Logger
	agents    map[string]Definition
	order     []string
}

func New(llm LLM, registry *agent.ToolRegistry, kn KnowledgeSearcher, l pkgLog.Logger, defs []Definition) *Orchestrator {
	agents := make(map[string]Definition, len(defs))
	order := make([]string, 0, len(defs))
	for _, def := range defs {
		agents[def.Name] = def
		order = append(order, def.Name)
	}

	return &Orchestrator{
		llm:       llm,
		registry:  registry,
		knowledge: kn,
		l:         l,
		agents:    agents,
		order:     order,
	}
}
