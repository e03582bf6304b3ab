package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitops-manager/pkg/llmprovider"
)

// ErrUnknownAgent is returned by Run for a name with no registered agent.
var ErrUnknownAgent = errors.New("unknown agent")

// Agents lists the registered agents in definition order.
func (o *Orchestrator) Agents() []Info {
	infos := make([]Info, 0, len(o.order))
	for _, name := range o.order {
		def := o.agents[name]
		infos = append(infos, Info{
			Name:  def.Name,
			Role:  def.Role,
			Tools: def.Tools,
		})
	}
	return infos
}

// Run executes one agent over the message with a ReAct loop:
// Reason → Act → Observe, bounded by MaxAgentSteps.
func (o *Orchestrator) Run(ctx context.Context, agentName, message string) (RunResult, error) {
	def, ok := o.agents[agentName]
	if !ok {
		return RunResult{}, fmt.Errorf("%w: %s", ErrUnknownAgent, agentName)
	}

	tools := o.registry.Subset(def.Tools)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: o.buildSystemPrompt(ctx, def, message)}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: message}}},
		},
		Tools: tools.ToFunctionDefinitions(),
	}

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, def.Name, step+1, MaxAgentSteps)

		// 1. Reason: ask the LLM what to do
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return RunResult{}, fmt.Errorf(ErrMsgAgentLLMError+": %w", step, err)
		}
		if len(resp.Content.Parts) == 0 {
			return RunResult{}, fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		call := firstFunctionCall(resp.Content.Parts)

		// 2. No tool call means the agent has its final answer
		if call == nil {
			o.l.Infof(ctx, LogMsgAgentFinished, def.Name, step+1)
			return RunResult{
				Agent:  def.Name,
				Output: collectText(resp.Content.Parts),
				Steps:  step + 1,
			}, nil
		}

		// 3. Act: execute the tool
		o.l.Infof(ctx, LogMsgAgentCallingTool, def.Name, call.Name, call.Args)

		tool, ok := tools.Get(call.Name)
		var toolResult interface{}
		if !ok {
			o.l.Errorf(ctx, "Tool %s not found", call.Name)
			toolResult = map[string]string{"error": "tool not found"}
		} else {
			res, err := tool.Execute(ctx, call.Args)
			if err != nil {
				o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
				toolResult = map[string]string{"error": err.Error()}
			} else {
				toolResult = res
			}
		}

		// 4. Observe: feed the tool result back into the conversation
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "model",
			Parts: []llmprovider.Part{{FunctionCall: call}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "function",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					Name:     call.Name,
					Response: toolResult,
				},
			}},
		})
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, def.Name, MaxAgentSteps)
	return RunResult{Agent: def.Name, Output: MaxStepsMessage, Steps: MaxAgentSteps}, nil
}

// buildSystemPrompt combines the agent's instructions with any
// knowledge snippets relevant to the user's message. Knowledge
// failures degrade to the bare prompt.
func (o *Orchestrator) buildSystemPrompt(ctx context.Context, def Definition, message string) string {
	prompt := def.Instructions

	if o.knowledge == nil || def.KnowledgeTopic == "" {
		return prompt
	}

	snippets, err := o.knowledge.Search(ctx, def.KnowledgeTopic, message, KnowledgeSearchSize)
	if err != nil {
		o.l.Warnf(ctx, LogMsgKnowledgeFailed, def.Name, err)
		return prompt
	}
	if len(snippets) == 0 {
		return prompt
	}

	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\nRelevant knowledge:\n")
	for _, s := range snippets {
		sb.WriteString("- ")
		sb.WriteString(s.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func firstFunctionCall(parts []llmprovider.Part) *llmprovider.FunctionCall {
	for _, part := range parts {
		if part.FunctionCall != nil {
			return part.FunctionCall
		}
	}
	return nil
}

func collectText(parts []llmprovider.Part) string {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
