package pipeline

import (
	"fmt"
	"strings"
	"time"
)

type Service interface {
	// Trigger simulates starting a CI/CD run for repo/branch. It does no
	// I/O and cannot fail; a real CI integration would replace this with
	// provider API calls plus retry semantics.
	Trigger(repoID, branch, pipelineType string) Record
}

type service struct {
	now func() time.Time
}

func New() Service {
	return &service{now: time.Now}
}

// NewWithClock is used by tests to pin the trigger timestamp.
func NewWithClock(now func() time.Time) Service {
	return &service{now: now}
}

func (s *service) Trigger(repoID, branch, pipelineType string) Record {
	if pipelineType == "" {
		pipelineType = DefaultPipelineType
	}

	ts := s.now().UTC()
	safeRepo := strings.ReplaceAll(repoID, "/", "-")

	return Record{
		Status:      StatusTriggered,
		PipelineID:  fmt.Sprintf("mock-pipeline-%s-%s-%d", safeRepo, branch, ts.Unix()),
		Repo:        repoID,
		Branch:      branch,
		Type:        pipelineType,
		TriggeredAt: ts.Format("2006-01-02T15:04:05") + "Z",
	}
}
