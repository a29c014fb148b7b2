package document

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

func newTestLoader(t *testing.T, cfg LoaderConfig) *Loader {
	t.Helper()
	return NewLoader(os.DirFS("testdata/docs"), newTestParser(), cfg)
}

func boolPtr(v bool) *bool { return &v }

func TestLoadFile(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "guide.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.FilePath != "guide.md" {
		t.Fatalf("file path = %q", doc.FilePath)
	}
	if doc.Title != "Install Guide" {
		t.Fatalf("title = %q", doc.Title)
	}
	if !doc.FrontMatter.Present || doc.FrontMatter.Author != "ana" {
		t.Fatalf("frontmatter = %+v", doc.FrontMatter)
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("checksum length = %d", len(doc.Checksum))
	}
	if doc.ID == uuid.Nil {
		t.Fatalf("document id not populated")
	}
	again, err := loader.LoadFile(context.Background(), "guide.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile again: %v", err)
	}
	if again.ID != doc.ID {
		t.Fatalf("document id must be stable: %s vs %s", doc.ID, again.ID)
	}
	if doc.LastModified.IsZero() {
		t.Fatalf("last modified not set")
	}
	if len(doc.Variables) != 1 || doc.Variables[0] != "install_dir" {
		t.Fatalf("variables = %v", doc.Variables)
	}
	summary := doc.ChecklistSummary()
	if summary.Total != 2 || summary.Completed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestLoadFileMissing(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	if _, err := loader.LoadFile(context.Background(), "absent.md", interfaces.LoadOptions{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFileCancelledContext(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, "guide.md", interfaces.LoadOptions{}); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoadDirectoryRecursive(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: true})

	docs, err := loader.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	// Sorted by path and filtered to *.md, so notes.txt is skipped.
	paths := docPaths(docs)
	want := []string{"guide.md", "nested/deep.md", "tasks.md"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}

func TestLoadDirectoryNonRecursive(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: false})

	docs, err := loader.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	paths := docPaths(docs)
	if len(paths) != 2 || paths[0] != "guide.md" || paths[1] != "tasks.md" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestLoadDirectoryRecursiveOverride(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: false})

	docs, err := loader.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{
		Recursive: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected option override to enable recursion, got %d docs", len(docs))
	}
}

func TestLoadDirectoryPatternOverride(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: true})

	docs, err := loader.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{
		Pattern: "guide.*",
	})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].FilePath != "guide.md" {
		t.Fatalf("docs = %v", docPaths(docs))
	}
}

func docPaths(docs []*interfaces.Document) []string {
	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		paths = append(paths, doc.FilePath)
	}
	return paths
}
