package knowledge

import (
	"strings"
	"testing"
)

func TestChunkMarkdown(t *testing.T) {
	t.Run("splits on blank lines", func(t *testing.T) {
		chunks := chunkMarkdown("first paragraph\n\nsecond paragraph\n\n\nthird paragraph")
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d: %v", len(chunks), chunks)
		}
	})

	t.Run("merges heading with following paragraph", func(t *testing.T) {
		doc := "# Branching Strategy\n\nAlways branch from main.\n\n## Naming\n\nUse the auto/ prefix."
		chunks := chunkMarkdown(doc)
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
		}
		if !strings.Contains(chunks[0], "# Branching Strategy") || !strings.Contains(chunks[0], "Always branch from main.") {
			t.Errorf("heading not merged: %q", chunks[0])
		}
		if !strings.Contains(chunks[1], "## Naming") {
			t.Errorf("second heading not merged: %q", chunks[1])
		}
	})

	t.Run("windows line endings", func(t *testing.T) {
		chunks := chunkMarkdown("one\r\n\r\ntwo")
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		if chunks := chunkMarkdown("   \n\n  \n"); len(chunks) != 0 {
			t.Fatalf("expected no chunks, got %v", chunks)
		}
	})

	t.Run("trailing heading kept", func(t *testing.T) {
		chunks := chunkMarkdown("body text\n\n# Lone Heading")
		if len(chunks) != 2 || chunks[1] != "# Lone Heading" {
			t.Fatalf("unexpected chunks: %v", chunks)
		}
	})
}
