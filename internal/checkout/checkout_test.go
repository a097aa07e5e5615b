package checkout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
)

func newTestRepo(t *testing.T) *core.Repository {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "my-svn-test-checkout-*")
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

// commitAll stages everything on the current branch and commits it,
// returning the new commit's hash.
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
	for p, fi := range idx.Entries {
		files[p] = struct {
			Hash      string
			Timestamp int64
		}{Hash: fi.Hash, Timestamp: fi.Timestamp}
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

func TestCheckoutSwitchesWorkingTree(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "a.txt", "on main")
	commitAll(t, repo, "main commit")

	if err := repo.WriteRef(filepath.Join("refs", "heads", "feature"), mustHead(t, repo)); err != nil {
		t.Fatalf("WriteRef failed: %v", err)
	}
	if err := repo.SetCurrentBranch("feature"); err != nil {
		t.Fatalf("SetCurrentBranch failed: %v", err)
	}
	writeFile(t, repo, "a.txt", "on feature")
	commitAll(t, repo, "feature commit")

	if err := Checkout(repo, "main"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(repo.Root, "a.txt"))
	if err != nil {
		t.Fatalf("failed to read a.txt: %v", err)
	}
	if string(content) != "on main" {
		t.Errorf("expected working tree content 'on main', got %q", string(content))
	}
}

func TestCheckoutRefusesUncommittedChanges(t *testing.T) {
	repo := newTestRepo(t)
	writeFile(t, repo, "a.txt", "v1")
	commitAll(t, repo, "main commit")

	if err := repo.WriteRef(filepath.Join("refs", "heads", "feature"), mustHead(t, repo)); err != nil {
		t.Fatalf("WriteRef failed: %v", err)
	}
	if err := repo.SetCurrentBranch("feature"); err != nil {
		t.Fatalf("SetCurrentBranch failed: %v", err)
	}
	writeFile(t, repo, "a.txt", "v2")
	commitAll(t, repo, "feature commit")

	// Simulate returning to main with an unrelated, uncommitted edit still
	// sitting in the working tree (content matching neither branch's tip).
	if err := repo.SetCurrentBranch("main"); err != nil {
		t.Fatalf("SetCurrentBranch failed: %v", err)
	}
	writeFile(t, repo, "a.txt", "v3 dirty")

	err := Checkout(repo, "feature")
	if _, ok := err.(*ErrUncommittedChanges); !ok {
		t.Fatalf("expected ErrUncommittedChanges, got %v", err)
	}
}

func mustHead(t *testing.T, repo *core.Repository) string {
	t.Helper()
	head, err := repo.ReadHead()
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	return head
}
