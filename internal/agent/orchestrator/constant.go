package orchestrator

// Agent names
const (
	AgentWatcher       = "watcher"
	AgentCommit        = "commit"
	AgentBranchManager = "branch-manager"
	AgentDeployment    = "deployment"
	AgentReport        = "report"
)

// Configuration
const (
	MaxAgentSteps       = 5
	KnowledgeSearchSize = 3
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgEmptyLLMResponse = "empty LLM response"
)

// Log messages
const (
	LogMsgAgentStep          = "Agent %s step %d/%d"
	LogMsgAgentFinished      = "Agent %s finished at step %d"
	LogMsgAgentCallingTool   = "Agent %s calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent %s exceeded max steps (%d)"
	LogMsgKnowledgeFailed    = "Knowledge lookup for %s failed: %v"
)

// MaxStepsMessage is returned when the agent could not converge within
// the step budget.
const MaxStepsMessage = "The agent could not finish within the allowed number of steps. Try a narrower request."
