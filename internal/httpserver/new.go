package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitops-manager/internal/agent/orchestrator"
	"gitops-manager/internal/memory"
	"gitops-manager/internal/report"
	"gitops-manager/internal/router"
	"gitops-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Agent orchestration
	orchestrator *orchestrator.Orchestrator
	router       router.Router

	// GitOps state
	memoryStore *memory.Store
	reportSvc   report.Service

	// GitHub webhooks
	webhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Orchestrator *orchestrator.Orchestrator
	Router       router.Router

	MemoryStore *memory.Store
	ReportSvc   report.Service

	WebhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		orchestrator:   cfg.Orchestrator,
		router:         cfg.Router,
		memoryStore:    cfg.MemoryStore,
		reportSvc:      cfg.ReportSvc,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
