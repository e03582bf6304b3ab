package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a semantic router for a GitOps automation system. Analyze the message below and decide which agent should handle it.

Current message: "%s"

Possible intents:
1. WATCH_REPO: check for new commits, branches or pull requests; repository status
2. COMMIT_CHANGE: create or update files, commit configuration changes, open a change
3. MANAGE_BRANCH: create an automation branch, list branches, check branch sync
4. CHECK_DEPLOYMENT: deploy, trigger a pipeline, check whether a release happened
5. GENERATE_REPORT: produce an activity or compliance report

Answer with JSON in this format:
{
  "intent": "WATCH_REPO|COMMIT_CHANGE|MANAGE_BRANCH|CHECK_DEPLOYMENT|GENERATE_REPORT",
  "confidence": 0-100,
  "reasoning": "one short sentence"
}`

	PromptHistoryPrefix = "Recent conversation history:\n"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackIntent     = IntentWatchRepo
	RouterFallbackConfidence = 50
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to WATCH_REPO"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to WATCH_REPO"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to parsing error - route to the read-only watcher agent"
	ReasonEmptyResponse = "Fallback due to empty response"
)
