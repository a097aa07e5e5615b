package merge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/checkout"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
)

func fi(hash string) *objects.FileInfo { return &objects.FileInfo{Hash: hash} }

func TestResolvePathUnchangedAtBase(t *testing.T) {
	result, conflict := resolvePath(fi("h"), fi("h"), fi("h"))
	if conflict {
		t.Fatal("expected no conflict when all three match")
	}
	if result == nil || result.Hash != "h" {
		t.Errorf("expected resolved hash 'h', got %v", result)
	}
}

func TestResolvePathTakeTheirsWhenOursUnchanged(t *testing.T) {
	result, conflict := resolvePath(fi("base"), fi("base"), fi("theirs"))
	if conflict {
		t.Fatal("expected no conflict")
	}
	if result == nil || result.Hash != "theirs" {
		t.Errorf("expected 'theirs', got %v", result)
	}
}

func TestResolvePathKeepOursWhenTheirsUnchanged(t *testing.T) {
	result, conflict := resolvePath(fi("base"), fi("ours"), fi("base"))
	if conflict {
		t.Fatal("expected no conflict")
	}
	if result == nil || result.Hash != "ours" {
		t.Errorf("expected 'ours', got %v", result)
	}
}

func TestResolvePathBothDeleted(t *testing.T) {
	result, conflict := resolvePath(fi("base"), nil, nil)
	if conflict {
		t.Fatal("expected no conflict when both sides delete")
	}
	if result != nil {
		t.Errorf("expected nil (absent) result, got %v", result)
	}
}

func TestResolvePathConflictingEdits(t *testing.T) {
	_, conflict := resolvePath(fi("base"), fi("ours"), fi("theirs"))
	if !conflict {
		t.Fatal("expected a conflict when both sides edit differently")
	}
}

func TestResolvePathBothAddedIdentically(t *testing.T) {
	result, conflict := resolvePath(nil, fi("same"), fi("same"))
	if conflict {
		t.Fatal("expected no conflict when both sides add identical content")
	}
	if result == nil || result.Hash != "same" {
		t.Errorf("expected 'same', got %v", result)
	}
}

func TestResolvePathBothAddedDifferently(t *testing.T) {
	_, conflict := resolvePath(nil, fi("a"), fi("b"))
	if !conflict {
		t.Fatal("expected a conflict when both sides add different content at a new path")
	}
}

// --- integration: a merge with no conflicts ---

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "my-svn-test-merge-*")
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

// mtimeClock hands out strictly increasing modification times, one second
// apart, so that every writeFile is seen as a change by the timestamp-based
// change detection even when several writes fall within the same second.
var mtimeClock = time.Now().Unix()

func writeFile(t *testing.T, repo *core.Repository, rel, content string) {
	t.Helper()
	path := filepath.Join(repo.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	mtimeClock++
	mtime := time.Unix(mtimeClock, 0)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("failed to set mtime of %s: %v", rel, err)
	}
}

func commitAll(t *testing.T, repo *core.Repository, message string) string {
	t.Helper()
	idx, err := staging.LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if err := staging.AddAll(repo, idx); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	if err := idx.Write(); err != nil {
		t.Fatalf("idx.Write failed: %v", err)
	}

	files := make(map[string]struct {
		Hash      string
		Timestamp int64
	}, len(idx.Entries))
	for p, info := range idx.Entries {
		files[p] = struct {
			Hash      string
			Timestamp int64
		}{Hash: info.Hash, Timestamp: info.Timestamp}
	}
	treeHash, err := objects.BuildTreeFromPaths(repo.Root, files)
	if err != nil {
		t.Fatalf("BuildTreeFromPaths failed: %v", err)
	}

	branch, err := repo.GetCurrentBranch()
	if err != nil {
		t.Fatalf("GetCurrentBranch failed: %v", err)
	}
	parent, err := repo.ReadBranchHash(branch)
	if err != nil {
		t.Fatalf("ReadBranchHash failed: %v", err)
	}
	var parents []string
	if parent != "" {
		parents = []string{parent}
	}

	commitHash, err := objects.CreateCommit(repo.Root, treeHash, parents, "Test <test@example.com>", message, time.Now().Unix())
	if err != nil {
		t.Fatalf("CreateCommit failed: %v", err)
	}
	if err := repo.WriteRef(filepath.Join("refs", "heads", branch), commitHash); err != nil {
		t.Fatalf("WriteRef failed: %v", err)
	}
	return commitHash
}

func TestMergeNoConflicts(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "shared.txt", "base content")
	base := commitAll(t, repo, "base commit")

	if err := repo.WriteRef(filepath.Join("refs", "heads", "feature"), base); err != nil {
		t.Fatalf("WriteRef failed: %v", err)
	}
	if err := checkout.Checkout(repo, "feature"); err != nil {
		t.Fatalf("Checkout(feature) failed: %v", err)
	}
	writeFile(t, repo, "feature-only.txt", "added on feature")
	commitAll(t, repo, "feature adds a file")

	if err := checkout.Checkout(repo, "main"); err != nil {
		t.Fatalf("Checkout(main) failed: %v", err)
	}
	writeFile(t, repo, "main-only.txt", "added on main")
	commitAll(t, repo, "main adds a file")

	commitHash, err := Merge(repo, "feature")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	commit, err := objects.GetCommit(repo.Root, commitHash)
	if err != nil {
		t.Fatalf("GetCommit failed: %v", err)
	}
	if len(commit.NormalizedParents()) != 2 {
		t.Errorf("expected a two-parent merge commit, got %v", commit.NormalizedParents())
	}

	for _, want := range []string{"shared.txt", "main-only.txt", "feature-only.txt"} {
		if _, err := os.Stat(filepath.Join(repo.Root, want)); err != nil {
			t.Errorf("expected %s to exist in the merged working tree: %v", want, err)
		}
	}
}

func TestMergeConflict(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "shared.txt", "base content")
	base := commitAll(t, repo, "base commit")

	if err := repo.WriteRef(filepath.Join("refs", "heads", "feature"), base); err != nil {
		t.Fatalf("WriteRef failed: %v", err)
	}
	if err := checkout.Checkout(repo, "feature"); err != nil {
		t.Fatalf("Checkout(feature) failed: %v", err)
	}
	writeFile(t, repo, "shared.txt", "feature edit")
	commitAll(t, repo, "feature edits shared.txt")

	if err := checkout.Checkout(repo, "main"); err != nil {
		t.Fatalf("Checkout(main) failed: %v", err)
	}
	writeFile(t, repo, "shared.txt", "main edit")
	commitAll(t, repo, "main edits shared.txt")

	_, err := Merge(repo, "feature")
	if _, ok := err.(*ErrConflict); !ok {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
