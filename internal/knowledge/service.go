package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	pkgLog "gitops-manager/pkg/log"
	"gitops-manager/pkg/qdrant"
)

// DefaultSearchLimit is used when a caller passes a non-positive limit.
const DefaultSearchLimit = 3

// Embedder turns texts into vectors. Satisfied by pkg/voyage.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore is the subset of the Qdrant client the service needs.
type VectorStore interface {
	CollectionExists(ctx context.Context, name string) (bool, error)
	CreateCollection(ctx context.Context, req qdrant.CreateCollectionRequest) error
	UpsertPoints(ctx context.Context, collectionName string, req qdrant.UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

// MemoryStore tracks ingested content hashes. Satisfied by internal/memory.
type MemoryStore interface {
	Get(ctx context.Context, key string) (map[string]any, error)
	Set(ctx context.Context, key string, value any) (map[string]any, error)
}

// Service ingests markdown documents into per-topic vector collections
// and serves semantic search over them.
type Service struct {
	l          pkgLog.Logger
	embedder   Embedder
	vectors    VectorStore
	mem        MemoryStore
	dir        string
	vectorSize int
}

func New(l pkgLog.Logger, embedder Embedder, vectors VectorStore, mem MemoryStore, dir string, vectorSize int) *Service {
	return &Service{
		l:          l,
		embedder:   embedder,
		vectors:    vectors,
		mem:        mem,
		dir:        dir,
		vectorSize: vectorSize,
	}
}

// IngestAll ingests every known topic. Missing source files are logged
// and skipped so a partial knowledge directory is not fatal.
func (s *Service) IngestAll(ctx context.Context) ([]IngestResult, error) {
	results := make([]IngestResult, 0, len(topicFiles))
	for _, topic := range Topics() {
		res, err := s.Ingest(ctx, topic)
		if err != nil {
			if os.IsNotExist(err) {
				s.l.Warnf(ctx, "knowledge: source for %s not found, skipping", topic)
				continue
			}
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Ingest loads the topic's document, chunks it, embeds the chunks and
// upserts them into the topic's collection. A content hash is recorded
// in shared memory; if it matches on a later run the document is not
// re-embedded.
func (s *Service) Ingest(ctx context.Context, topic string) (IngestResult, error) {
	file, ok := topicFiles[topic]
	if !ok {
		return IngestResult{}, fmt.Errorf("unknown knowledge topic: %s", topic)
	}

	content, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return IngestResult{}, err
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])
	memKey := "knowledge_hash_" + topic

	if stored, err := s.mem.Get(ctx, memKey); err == nil {
		if prev, _ := stored[memKey].(string); prev == hash {
			if exists, err := s.vectors.CollectionExists(ctx, topic); err == nil && exists {
				s.l.Infof(ctx, "knowledge: %s unchanged, skipping ingest", topic)
				return IngestResult{Topic: topic, File: file, Skipped: true}, nil
			}
		}
	}

	chunks := chunkMarkdown(string(content))
	if len(chunks) == 0 {
		return IngestResult{Topic: topic, File: file, Skipped: true}, nil
	}

	vectors, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to embed %s: %w", file, err)
	}
	if len(vectors) != len(chunks) {
		return IngestResult{}, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	if err := s.ensureCollection(ctx, topic); err != nil {
		return IngestResult{}, err
	}

	points := make([]qdrant.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = qdrant.Point{
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"text":   chunk,
				"source": file,
				"topic":  topic,
				"chunk":  i,
			},
		}
	}

	if err := s.vectors.UpsertPoints(ctx, topic, qdrant.UpsertPointsRequest{Points: points}); err != nil {
		return IngestResult{}, fmt.Errorf("failed to upsert %s: %w", topic, err)
	}

	if _, err := s.mem.Set(ctx, memKey, hash); err != nil {
		s.l.Warnf(ctx, "knowledge: failed to record content hash for %s: %v", topic, err)
	}

	s.l.Infof(ctx, "knowledge: ingested %s (%d chunks)", topic, len(chunks))
	return IngestResult{Topic: topic, File: file, Chunks: len(chunks)}, nil
}

// Search embeds the query and returns the top scored snippets for the
// topic. A missing collection yields no snippets, not an error, so
// agents still run before any ingestion happened.
func (s *Service) Search(ctx context.Context, topic, query string, limit int) ([]Snippet, error) {
	if !IsTopic(topic) {
		return nil, fmt.Errorf("unknown knowledge topic: %s", topic)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	exists, err := s.vectors.CollectionExists(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to check collection %s: %w", topic, err)
	}
	if !exists {
		s.l.Warnf(ctx, "knowledge: collection %s does not exist yet", topic)
		return nil, nil
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}

	resp, err := s.vectors.SearchPoints(ctx, topic, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", topic, err)
	}

	snippets := make([]Snippet, 0, len(resp.Result))
	for _, hit := range resp.Result {
		text, _ := hit.Payload["text"].(string)
		if text == "" {
			continue
		}
		source, _ := hit.Payload["source"].(string)
		snippets = append(snippets, Snippet{
			Text:   text,
			Source: source,
			Score:  hit.Score,
		})
	}

	return snippets, nil
}

func (s *Service) ensureCollection(ctx context.Context, topic string) error {
	exists, err := s.vectors.CollectionExists(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", topic, err)
	}
	if exists {
		return nil
	}

	err = s.vectors.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name:    topic,
		Vectors: qdrant.VectorConfig{Size: s.vectorSize, Distance: "Cosine"},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", topic, err)
	}
	return nil
}
