package automation

import (
	pkgLog "gitops-manager/pkg/log"
)

func New(mem MemoryStore, defaultBranch string, l pkgLog.Logger) UseCase {
	if defaultBranch == "" {
		defaultBranch = "main"
	}
	return &usecase{
		mem:           mem,
		defaultBranch: defaultBranch,
		l:             l,
	}
}
