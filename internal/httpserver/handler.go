package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gitops-manager/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "Middlewares registered (environment: %s)", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Agent orchestration
	if srv.orchestrator != nil {
		srv.gin.GET("/agents", srv.listAgents)
		srv.gin.POST("/agent/:name", srv.runAgent)

		api := srv.gin.Group("/api")
		api.POST("/watcher/scan", srv.watcherScan)
		api.POST("/commit/create", srv.commitCreate)
		api.POST("/branch/manage", srv.branchManage)
		api.POST("/deployment/check", srv.deploymentCheck)
		api.POST("/report/generate", srv.reportGenerate)

		srv.l.Infof(ctx, "Agent routes registered")
	} else {
		srv.l.Warnf(ctx, "Orchestrator not configured, skipping agent routes")
	}

	// Free-text chat routed to the right agent
	if srv.orchestrator != nil && srv.router != nil {
		srv.gin.POST("/chat", srv.chat)
		srv.l.Infof(ctx, "Chat route registered")
	}

	// Reports
	if srv.reportSvc != nil {
		srv.gin.GET("/api/reports", srv.listReports)
		srv.gin.GET("/api/reports/:filename", srv.readReport)
		srv.l.Infof(ctx, "Report routes registered")
	}

	// Shared memory (read-only introspection)
	if srv.memoryStore != nil {
		srv.gin.GET("/api/memory", srv.readMemory)
		srv.gin.GET("/api/memory/:key", srv.readMemoryKey)
		srv.l.Infof(ctx, "Memory routes registered")
	}

	// GitHub webhook
	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/github", srv.webhookHandler.HandleGitHubWebhook)
		srv.l.Infof(ctx, "GitHub webhook route registered at POST /webhook/github")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping webhook route")
	}

	return nil
}
