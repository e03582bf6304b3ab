package commitlint

// Result is the outcome of validating a commit message.
// An invalid message is a normal result, not an error.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
