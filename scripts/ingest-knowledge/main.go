package main

import (
	"context"
	"fmt"
	"os"

	"gitops-manager/config"
	"gitops-manager/internal/knowledge"
	"gitops-manager/internal/memory"
	"gitops-manager/pkg/log"
	pkgQdrant "gitops-manager/pkg/qdrant"
	"gitops-manager/pkg/voyage"
)

func main() {
	if len(os.Args) >= 2 {
		os.Setenv("CONFIG_PATH", os.Args[1])
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	if cfg.Voyage.APIKey == "" || cfg.Qdrant.URL == "" {
		logger.Fatalf(ctx, "VOYAGE_API_KEY and QDRANT_URL are required for knowledge ingestion")
	}

	// Initialize clients
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)

	memoryStore := memory.New(cfg.Memory.Path, logger)
	if err := memoryStore.EnsureInitialized(); err != nil {
		logger.Fatalf(ctx, "Failed to initialize shared memory: %v", err)
	}

	svc := knowledge.New(logger, embeddingClient, qdrantClient, memoryStore, cfg.Knowledge.Dir, cfg.Qdrant.VectorSize)

	logger.Infof(ctx, "Ingesting knowledge documents from %s...", cfg.Knowledge.Dir)

	results, err := svc.IngestAll(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Ingestion failed: %v", err)
	}

	for _, res := range results {
		if res.Skipped {
			logger.Infof(ctx, "Topic %s unchanged, skipped (%s)", res.Topic, res.File)
			continue
		}
		logger.Infof(ctx, "Topic %s: embedded %d chunks from %s", res.Topic, res.Chunks, res.File)
	}

	logger.Infof(ctx, "Ingestion complete: %d topics processed.", len(results))
}
