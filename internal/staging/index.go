// Package staging implements the index (§4.F) and the add command's staging
// logic (§4.H).
package staging

import (
	"encoding/json"
	"path/filepath"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
)

// Index is the persistent path → FileInfo mapping representing the proposed
// next commit.
type Index struct {
	Entries map[string]objects.FileInfo
	repo    *core.Repository
}

func indexPath(repo *core.Repository) string {
	return filepath.Join(repo.VecDir, "index")
}

// LoadIndex reads .my_svn/index. A missing or empty file is treated as an
// empty index, matching the "{}" initial state written by init.
func LoadIndex(repo *core.Repository) (*Index, error) {
	idx := &Index{Entries: make(map[string]objects.FileInfo), repo: repo}
	path := indexPath(repo)
	if !core.FileExists(path) {
		return idx, nil
	}
	content, err := core.ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return idx, nil
	}
	if err := json.Unmarshal(content, &idx.Entries); err != nil {
		return nil, core.IndexError("failed to parse index", err)
	}
	return idx, nil
}

// Write serializes the index as pretty-printed JSON (§6 File Formats).
func (idx *Index) Write() error {
	data, err := json.MarshalIndent(idx.Entries, "", "  ")
	if err != nil {
		return core.IndexError("failed to serialize index", err)
	}
	if err := core.WriteFileAtomic(indexPath(idx.repo), data, 0644); err != nil {
		return core.IndexError("failed to write index", err)
	}
	return nil
}

// Set upserts a path's fingerprint.
func (idx *Index) Set(path string, info objects.FileInfo) {
	idx.Entries[path] = info
}

// Remove deletes a path from the index. Idempotent.
func (idx *Index) Remove(path string) {
	delete(idx.Entries, path)
}

// RemoveDirPrefix removes every entry whose path starts with prefix+"/" or
// equals prefix, returning whether anything was removed (used by add's
// directory-pathspec removal case, §4.H).
func (idx *Index) RemoveDirPrefix(prefix string) bool {
	removedAny := false
	for p := range idx.Entries {
		if p == prefix || (len(p) > len(prefix) && p[:len(prefix)+1] == prefix+"/") {
			delete(idx.Entries, p)
			removedAny = true
		}
	}
	return removedAny
}

// ReplaceWith discards current entries and installs files verbatim.
func (idx *Index) ReplaceWith(files map[string]objects.FileInfo) {
	idx.Entries = files
}
