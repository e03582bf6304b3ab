package router

import "gitops-manager/internal/agent/orchestrator"

// Intent represents the user's intention
type Intent string

const (
	IntentWatchRepo       Intent = "WATCH_REPO"
	IntentCommitChange    Intent = "COMMIT_CHANGE"
	IntentManageBranch    Intent = "MANAGE_BRANCH"
	IntentCheckDeployment Intent = "CHECK_DEPLOYMENT"
	IntentGenerateReport  Intent = "GENERATE_REPORT"
)

// RouterOutput is the structured response from the semantic router
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`  // Optional: why this intent was chosen
}

// AgentName maps an intent to the agent that handles it. Unknown
// intents go to the read-only watcher.
func (i Intent) AgentName() string {
	switch i {
	case IntentWatchRepo:
		return orchestrator.AgentWatcher
	case IntentCommitChange:
		return orchestrator.AgentCommit
	case IntentManageBranch:
		return orchestrator.AgentBranchManager
	case IntentCheckDeployment:
		return orchestrator.AgentDeployment
	case IntentGenerateReport:
		return orchestrator.AgentReport
	default:
		return orchestrator.AgentWatcher
	}
}
