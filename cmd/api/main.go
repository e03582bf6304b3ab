package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitops-manager/config"
	_ "gitops-manager/docs" // Swagger docs
	"gitops-manager/internal/agent"
	"gitops-manager/internal/agent/orchestrator"
	"gitops-manager/internal/agent/tools"
	"gitops-manager/internal/automation"
	"gitops-manager/internal/commitlint"
	"gitops-manager/internal/httpserver"
	"gitops-manager/internal/knowledge"
	"gitops-manager/internal/memory"
	"gitops-manager/internal/pipeline"
	"gitops-manager/internal/report"
	"gitops-manager/internal/router"
	"gitops-manager/internal/webhook"
	"gitops-manager/pkg/github"
	"gitops-manager/pkg/llmprovider"
	"gitops-manager/pkg/log"
	"gitops-manager/pkg/qdrant"
	"gitops-manager/pkg/voyage"
)

// @title       GitOps Manager API
// @description Agent-driven GitOps automation: repository watching, commit validation, branch management, deployment checks, and reporting.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitOps Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Repository: %s (default branch: %s)", cfg.GitHub.DefaultRepo, cfg.GitHub.DefaultBranch)

	// 3. Shared memory and GitOps services
	memoryStore := memory.New(cfg.Memory.Path, logger)
	if err := memoryStore.EnsureInitialized(); err != nil {
		logger.Error(ctx, "Failed to initialize shared memory: ", err)
		return
	}

	lintSvc := commitlint.New()
	pipelineSvc := pipeline.New()
	reportSvc := report.New(cfg.Reports.Dir)

	// 4. GitHub client
	githubClient := github.NewClient(cfg.GitHub.Token)
	if cfg.GitHub.BaseURL != "" {
		githubClient = githubClient.WithBaseURL(cfg.GitHub.BaseURL)
	}

	// 5. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 6. Knowledge base (optional: requires Voyage + Qdrant)
	var knowledgeSvc *knowledge.Service
	if cfg.Voyage.APIKey != "" && cfg.Qdrant.URL != "" {
		voyageClient, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Error(ctx, "Failed to initialize Voyage client: ", vErr)
			return
		}
		qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
		knowledgeSvc = knowledge.New(logger, voyageClient, qdrantClient, memoryStore, cfg.Knowledge.Dir, cfg.Qdrant.VectorSize)

		if _, err := knowledgeSvc.IngestAll(ctx); err != nil {
			logger.Warnf(ctx, "Knowledge ingestion incomplete: %v", err)
		}
	} else {
		logger.Warn(ctx, "Knowledge base disabled: VOYAGE_API_KEY or QDRANT_URL is missing")
	}

	// 7. Agent tools
	ghCfg := tools.GitHubToolConfig{
		DefaultRepo:    cfg.GitHub.DefaultRepo,
		DefaultBranch:  cfg.GitHub.DefaultBranch,
		WhitelistPaths: cfg.GitHub.WhitelistPaths,
	}

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewReadSharedMemoryTool(memoryStore))
	registry.Register(tools.NewWriteSharedMemoryTool(memoryStore))
	registry.Register(tools.NewValidateCommitMessageTool(lintSvc))
	registry.Register(tools.NewTriggerPipelineTool(pipelineSvc, cfg.GitHub.DefaultRepo))
	registry.Register(tools.NewCreateReportFileTool(reportSvc, cfg.GitHub.DefaultRepo))
	registry.Register(tools.NewListBranchesTool(githubClient, ghCfg))
	registry.Register(tools.NewCreateBranchTool(githubClient, ghCfg))
	registry.Register(tools.NewListCommitsTool(githubClient, ghCfg))
	registry.Register(tools.NewListPullRequestsTool(githubClient, ghCfg))
	registry.Register(tools.NewCreateIssueTool(githubClient, ghCfg))
	registry.Register(tools.NewGetFileContentTool(githubClient, ghCfg))
	registry.Register(tools.NewPutFileTool(githubClient, ghCfg, lintSvc))
	if knowledgeSvc != nil {
		registry.Register(tools.NewSearchKnowledgeTool(knowledgeSvc))
	}

	// 8. Orchestrator and semantic router
	defs := orchestrator.Definitions(cfg.GitHub.DefaultRepo, cfg.GitHub.WhitelistPaths)

	var orch *orchestrator.Orchestrator
	if knowledgeSvc != nil {
		orch = orchestrator.New(llmManager, registry, knowledgeSvc, logger, defs)
	} else {
		orch = orchestrator.New(llmManager, registry, nil, logger, defs)
	}

	semanticRouter := router.New(llmManager, logger)

	// 9. GitHub webhook intake
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		automationUC := automation.New(memoryStore, cfg.GitHub.DefaultBranch, logger)
		webhookHandler = webhook.NewHandler(automationUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Info(ctx, "Webhook intake disabled by config")
	}

	// 10. HTTP Server
	srvCfg := httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Orchestrator: orch,
		Router:       semanticRouter,
		MemoryStore:  memoryStore,
		ReportSvc:    reportSvc,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
