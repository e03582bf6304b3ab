package orchestrator

// Definition describes a single agent: its prompt, the tools it may
// call and the knowledge topic used to augment its context.
type Definition struct {
	Name           string
	Role           string
	Instructions   string
	Tools          []string
	KnowledgeTopic string
}

// Info is the public listing shape for an agent.
type Info struct {
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Tools []string `json:"tools"`
}

// RunResult carries an agent's final answer plus bookkeeping for the
// API layer.
type RunResult struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
	Steps  int    `json:"steps"`
}
