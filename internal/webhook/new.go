package webhook

import (
	"gitops-manager/internal/automation"
	pkgLog "gitops-manager/pkg/log"
)

type Handler struct {
	automationUC automation.UseCase
	security     *SecurityValidator
	githubParser *GitHubWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	automationUC automation.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		automationUC: automationUC,
		security:     NewSecurityValidator(securityConfig),
		githubParser: NewGitHubParser(),
		l:            l,
	}
}
