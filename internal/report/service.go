package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Service interface {
	// Write persists a titled markdown report and returns its path.
	// Calling twice within the same second with identical arguments
	// deterministically overwrites: the filename carries a
	// second-precision timestamp, so the last writer wins.
	Write(repoID, title, body string) (WriteResult, error)

	// List returns the generated reports, newest first.
	List() ([]FileInfo, error)

	// Read returns the content of a single report by filename.
	Read(filename string) (string, error)
}

type service struct {
	dir string
	now func() time.Time
}

func New(dir string) Service {
	return &service{dir: dir, now: time.Now}
}

// NewWithClock is used by tests to pin the filename timestamp.
func NewWithClock(dir string, now func() time.Time) Service {
	return &service{dir: dir, now: now}
}

func (s *service) Write(repoID, title, body string) (WriteResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("failed to create reports dir: %w", err)
	}

	ts := s.now().UTC().Format(TimestampFormat)
	safeRepo := strings.ReplaceAll(repoID, "/", "_")
	filename := fmt.Sprintf("%s_%s_%s.md", safeRepo, slugify(title), ts)
	path := filepath.Join(s.dir, filename)

	content := fmt.Sprintf("# %s\n\n_Generated: %s_\n\n%s", title, ts, body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write report: %w", err)
	}

	return WriteResult{Status: StatusWritten, Path: path}, nil
}

func (s *service) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read reports dir: %w", err)
	}

	reports := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		reports = append(reports, FileInfo{
			Filename: entry.Name(),
			Path:     filepath.Join(s.dir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime().UTC().Format(time.RFC3339),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Modified > reports[j].Modified
	})
	return reports, nil
}

func (s *service) Read(filename string) (string, error) {
	// Reject anything that could escape the reports directory. Reports
	// are always markdown, so other extensions are invalid too.
	if filename == "" || filename != filepath.Base(filename) ||
		strings.Contains(filename, "..") || !strings.HasSuffix(filename, ".md") {
		return "", ErrInvalidName
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read report: %w", err)
	}
	return string(raw), nil
}

// slugify lowercases the title, replaces whitespace with dashes, strips
// everything that is not alphanumeric or a dash, and truncates.
func slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune('-')
		}
	}

	slug := b.String()
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
	}
	return slug
}
