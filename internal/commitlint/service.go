package commitlint

import (
	"regexp"
	"strings"
)

const (
	// Conventional Commits prefix grammar: type, optional (scope), then
	// ": " and a non-empty description.
	// Example: "feat(watcher): detect new pull requests"
	ConventionalPattern = `^(?i)(feat|fix|chore|docs|refactor|style|perf|test)(\(.+\))?:\s.+`

	// InvalidReason is the fixed remediation hint returned for every
	// non-conforming message.
	InvalidReason = "Commit message must follow Conventional Commits, e.g. 'feat(module): short description'"
)

type Service interface {
	// Validate classifies a commit message against the conventional
	// prefix grammar. Pure: no side effects, never errors.
	Validate(message string) Result
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(ConventionalPattern),
	}
}

func (s *service) Validate(message string) Result {
	if s.pattern.MatchString(strings.TrimSpace(message)) {
		return Result{Valid: true}
	}
	return Result{Valid: false, Reason: InvalidReason}
}
