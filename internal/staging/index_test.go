package staging

import (
	"testing"

	"github.com/NahomAnteneh/my-svn/internal/objects"
)

func TestIndexWriteAndReload(t *testing.T) {
	repo := newTestRepo(t)

	idx, err := LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	idx.Set("a.txt", objects.FileInfo{Hash: "hash-a", Timestamp: 100})
	idx.Set("dir/b.txt", objects.FileInfo{Hash: "hash-b", Timestamp: 200})

	if err := idx.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reloaded, err := LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex (reload) failed: %v", err)
	}
	if len(reloaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reloaded.Entries))
	}
	if reloaded.Entries["a.txt"].Hash != "hash-a" {
		t.Errorf("expected hash-a, got %q", reloaded.Entries["a.txt"].Hash)
	}
}

func TestIndexRemoveDirPrefix(t *testing.T) {
	repo := newTestRepo(t)
	idx, err := LoadIndex(repo)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	idx.Set("dir/a.txt", objects.FileInfo{Hash: "h1"})
	idx.Set("dir/b.txt", objects.FileInfo{Hash: "h2"})
	idx.Set("other.txt", objects.FileInfo{Hash: "h3"})

	if !idx.RemoveDirPrefix("dir") {
		t.Fatal("expected RemoveDirPrefix to report a removal")
	}
	if len(idx.Entries) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(idx.Entries))
	}
	if _, ok := idx.Entries["other.txt"]; !ok {
		t.Error("expected 'other.txt' to remain")
	}
}
