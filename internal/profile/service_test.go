package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

func writeProfile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestServiceLoad(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "jrivera/profile.md", mergeFixture)

	svc, err := NewService(Config{BasePath: root}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	doc, err := svc.Load(context.Background(), "jrivera/profile.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.FilePath != "jrivera/profile.md" {
		t.Fatalf("file path mismatch: %q", doc.FilePath)
	}
	if doc.Sections.Practicum1.Title != "Old Project" {
		t.Fatalf("section not parsed: %#v", doc.Sections.Practicum1)
	}
	if len(doc.Checksum) == 0 {
		t.Fatalf("expected a checksum")
	}
	if doc.LastModified.IsZero() {
		t.Fatalf("expected a modification time")
	}
}

func TestServiceLoadMissingFile(t *testing.T) {
	svc, err := NewService(Config{BasePath: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if _, err := svc.Load(context.Background(), "nope/profile.md", interfaces.LoadOptions{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestServiceLoadDirectory(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "students/alice/profile.md", mergeFixture)
	writeProfile(t, root, "students/bob/profile.md", mergeFixture)
	writeProfile(t, root, "students/bob/README.md", "# not a profile")

	svc, err := NewService(Config{BasePath: root, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	docs, err := svc.LoadDirectory(context.Background(), "students", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].FilePath != "students/alice/profile.md" || docs[1].FilePath != "students/bob/profile.md" {
		t.Fatalf("documents not sorted by path: %q, %q", docs[0].FilePath, docs[1].FilePath)
	}
}

func TestServiceLoadDirectoryNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "profile.md", mergeFixture)
	writeProfile(t, root, "nested/profile.md", mergeFixture)

	svc, err := NewService(Config{BasePath: root}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	docs, err := svc.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].FilePath != "profile.md" {
		t.Fatalf("expected only the root profile, got %#v", docs)
	}
}

func TestServiceCancelledContext(t *testing.T) {
	svc, err := NewService(Config{BasePath: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Load(ctx, "profile.md", interfaces.LoadOptions{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewServiceMissingBasePath(t *testing.T) {
	if _, err := NewService(Config{BasePath: "/definitely/not/here"}, nil); err == nil {
		t.Fatalf("expected error for missing base path")
	}
}
