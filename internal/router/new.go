package router

import (
	"context"

	"gitops-manager/pkg/llmprovider"
	"gitops-manager/pkg/log"
)

// LLM is the generation surface the router needs. Satisfied by
// pkg/llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm LLM
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm LLM, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
