package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NahomAnteneh/my-svn/core"
)

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "my-svn-test-staging-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	repo, err := core.InitRepository(tempDir)
	if err != nil {
		t.Fatalf("InitRepository failed: %v", err)
	}
	return repo
}

func writeFile(t *testing.T, repo *core.Repository, rel, content string) {
	t.Helper()
	path := filepath.Join(repo.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func TestAddAllStagesAndPrunes(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "a.txt", "hello")
	writeFile(t, repo, "dir/b.txt", "world")

	idx, err := LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}

	if err := AddAll(repo, idx); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}

	if _, ok := idx.Entries["a.txt"]; !ok {
		t.Error("expected 'a.txt' to be staged")
	}
	if _, ok := idx.Entries["dir/b.txt"]; !ok {
		t.Error("expected 'dir/b.txt' to be staged")
	}

	if err := os.Remove(filepath.Join(repo.Root, "a.txt")); err != nil {
		t.Fatalf("failed to remove a.txt: %v", err)
	}
	if err := AddAll(repo, idx); err != nil {
		t.Fatalf("AddAll (second) failed: %v", err)
	}
	if _, ok := idx.Entries["a.txt"]; ok {
		t.Error("expected 'a.txt' to be pruned from the index after deletion")
	}
}

func TestAddPathspecsRemovesMissingPath(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "a.txt", "hello")

	idx, err := LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if err := AddPathspecs(repo, idx, []string{filepath.Join(repo.Root, "a.txt")}); err != nil {
		t.Fatalf("AddPathspecs failed: %v", err)
	}
	if _, ok := idx.Entries["a.txt"]; !ok {
		t.Fatal("expected 'a.txt' to be staged")
	}

	if err := os.Remove(filepath.Join(repo.Root, "a.txt")); err != nil {
		t.Fatalf("failed to remove a.txt: %v", err)
	}
	if err := AddPathspecs(repo, idx, []string{filepath.Join(repo.Root, "a.txt")}); err != nil {
		t.Fatalf("AddPathspecs (removal) failed: %v", err)
	}
	if _, ok := idx.Entries["a.txt"]; ok {
		t.Error("expected 'a.txt' to be removed from the index")
	}
}
