package pipeline

// Record is the result of a simulated CI/CD trigger. It is returned
// synchronously and never persisted here; callers that need it later
// store it in shared memory themselves.
type Record struct {
	Status      string `json:"status"`
	PipelineID  string `json:"pipeline_id"`
	Repo        string `json:"repo"`
	Branch      string `json:"branch"`
	Type        string `json:"type"`
	TriggeredAt string `json:"triggered_at"`
}

// StatusTriggered is the only status a mock trigger produces.
const StatusTriggered = "triggered"

// DefaultPipelineType tags runs produced by the stub.
const DefaultPipelineType = "mock"
