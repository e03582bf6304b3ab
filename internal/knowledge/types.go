package knowledge

// Topic names — each topic is backed by one Qdrant collection.
const (
	TopicBranching = "kb_branching"
	TopicCommits   = "kb_commits"
	TopicGitops    = "kb_gitops"
)

// topicFiles maps each topic to its source document, relative to the
// knowledge directory.
var topicFiles = map[string]string{
	TopicBranching: "branching_strategy.md",
	TopicCommits:   "commit_conventions.md",
	TopicGitops:    "gitops_principles.md",
}

// Topics returns all known topics in a stable order.
func Topics() []string {
	return []string{TopicBranching, TopicCommits, TopicGitops}
}

// IsTopic reports whether name is a known knowledge topic.
func IsTopic(name string) bool {
	_, ok := topicFiles[name]
	return ok
}

// Snippet is a scored text fragment returned from a search.
type Snippet struct {
	Text   string  `json:"text"`
	Source string  `json:"source"`
	Score  float64 `json:"score"`
}

// IngestResult describes the outcome of ingesting one document.
type IngestResult struct {
	Topic   string `json:"topic"`
	File    string `json:"file"`
	Chunks  int    `json:"chunks"`
	Skipped bool   `json:"skipped"`
}
