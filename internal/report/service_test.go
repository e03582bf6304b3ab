package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitops-manager/internal/report"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	ts := time.Date(2025, 10, 6, 9, 15, 0, 0, time.UTC)
	svc := report.NewWithClock(dir, fixedClock(ts))

	res, err := svc.Write("o/r", "My Title!!", "body text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != report.StatusWritten {
		t.Errorf("expected status %q, got %q", report.StatusWritten, res.Status)
	}
	if !strings.HasSuffix(res.Path, ".md") {
		t.Errorf("expected .md path, got %q", res.Path)
	}
	if filepath.Dir(res.Path) != dir {
		t.Errorf("report written outside configured dir: %q", res.Path)
	}

	wantName := "o_r_my-title_20251006T091500Z.md"
	if filepath.Base(res.Path) != wantName {
		t.Errorf("expected filename %q, got %q", wantName, filepath.Base(res.Path))
	}

	raw, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	content := string(raw)
	if !strings.HasPrefix(content, "# My Title!!\n") {
		t.Errorf("content must start with title heading, got %q", content[:30])
	}
	if !strings.Contains(content, "_Generated: 20251006T091500Z_") {
		t.Errorf("content missing generation line: %q", content)
	}
	if !strings.HasSuffix(content, "body text") {
		t.Errorf("body must be verbatim at the end: %q", content)
	}
}

func TestWriteSameSecondOverwrites(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 10, 6, 9, 15, 0, 0, time.UTC)
	svc := report.NewWithClock(dir, fixedClock(ts))

	first, err := svc.Write("o/r", "Weekly Audit", "first body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Write("o/r", "Weekly Audit", "second body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same second, same args: deterministic overwrite, single file.
	if first.Path != second.Path {
		t.Fatalf("expected same path within one second, got %q and %q", first.Path, second.Path)
	}
	raw, _ := os.ReadFile(second.Path)
	if !strings.HasSuffix(string(raw), "second body") {
		t.Errorf("last writer must win, got %q", string(raw))
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
}

func TestSlugTruncation(t *testing.T) {
	dir := t.TempDir()
	svc := report.NewWithClock(dir, fixedClock(time.Unix(0, 0)))

	long := strings.Repeat("abcde ", 40)
	res, err := svc.Write("o/r", long, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := filepath.Base(res.Path)
	parts := strings.Split(name, "_")
	if len(parts) < 3 {
		t.Fatalf("unexpected filename shape: %q", name)
	}
	slug := parts[2]
	if len(slug) > report.MaxSlugLength {
		t.Errorf("slug longer than %d chars: %d", report.MaxSlugLength, len(slug))
	}
}

func TestListAndRead(t *testing.T) {
	dir := t.TempDir()
	svc := report.New(dir)

	res, err := svc.Write("o/r", "Audit", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reports, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].Filename != filepath.Base(res.Path) {
		t.Errorf("unexpected listing: %+v", reports[0])
	}
	if reports[0].Size == 0 {
		t.Errorf("expected non-zero size")
	}

	content, err := svc.Read(reports[0].Filename)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(content, "hello") {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestListMissingDir(t *testing.T) {
	svc := report.New(filepath.Join(t.TempDir(), "never-created"))

	reports, err := svc.List()
	if err != nil {
		t.Fatalf("missing dir must list as empty, got error: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected empty list, got %d", len(reports))
	}
}

func TestReadRejectsTraversal(t *testing.T) {
	svc := report.New(t.TempDir())

	for _, name := range []string{"../secret.md", "a/../../b.md", "", "notes.txt"} {
		if _, err := svc.Read(name); !errors.Is(err, report.ErrInvalidName) {
			t.Errorf("Read(%q) expected ErrInvalidName, got %v", name, err)
		}
	}

	if _, err := svc.Read("missing.md"); !errors.Is(err, report.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
