package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	pkgLog "gitops-manager/pkg/log"
)

// Store is the file-backed shared memory used by all agents to coordinate
// cross-invocation state (last seen commit, last deployed commit, ...).
// The file itself is the single source of truth: every operation re-reads
// and re-writes the whole JSON object, no copy is cached between calls.
type Store struct {
	path string
	l    pkgLog.Logger
}

// New creates a Store backed by the JSON file at path.
func New(path string, l pkgLog.Logger) *Store {
	return &Store{path: path, l: l}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized guarantees the backing file exists and holds a JSON
// object, creating parent directories and writing {} when absent. Idempotent.
func (s *Store) EnsureInitialized() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create memory dir: %w", err)
		}
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.flush(map[string]any{}); err != nil {
			return err
		}
	}
	return nil
}

// All returns the entire mapping.
func (s *Store) All(ctx context.Context) (map[string]any, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}
	return s.load(ctx), nil
}

// Get returns a single-entry mapping {key: value}. An absent key yields a
// null value, not an error.
func (s *Store) Get(ctx context.Context, key string) (map[string]any, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}
	data := s.load(ctx)
	value, ok := data[key]
	if !ok {
		value = nil
	}
	return map[string]any{key: value}, nil
}

// Set writes key to value with last-write-wins semantics and returns a
// confirmation echoing both. Not transactional across concurrent writers.
func (s *Store) Set(ctx context.Context, key string, value any) (map[string]any, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}
	data := s.load(ctx)
	data[key] = value
	if err := s.flush(data); err != nil {
		return nil, err
	}
	return map[string]any{"status": "ok", "key": key, "value": value}, nil
}

// load reads the backing file. A missing, empty, or unparsable file is
// treated as an empty object: the next Set overwrites it with valid JSON.
func (s *Store) load(ctx context.Context) map[string]any {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.l.Warnf(ctx, "shared memory unreadable, treating as empty: %v", err)
		return map[string]any{}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		if len(raw) > 0 {
			s.l.Warnf(ctx, "shared memory corrupt at %s, treating as empty", s.path)
		}
		return map[string]any{}
	}
	return data
}

// flush writes the full mapping through a temp file and atomic rename so a
// crash mid-write never leaves a truncated store behind.
func (s *Store) flush(data map[string]any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shared memory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".shared_memory-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write shared memory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace shared memory: %w", err)
	}
	return nil
}
