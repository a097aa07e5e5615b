// Package status implements the three-way status report (§4.I).
package status

import (
	"path/filepath"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
)

// Report groups the changes found between the last commit, the index, and
// the working tree.
type Report struct {
	NewFiles          []string
	StagedModified    []string
	StagedDeleted     []string
	ModifiedNotStaged []string
	DeletedNotStaged  []string
	Untracked         []string
}

// IsClean reports whether no changes were found in any category.
func (r *Report) IsClean() bool {
	return len(r.NewFiles) == 0 && len(r.StagedModified) == 0 && len(r.StagedDeleted) == 0 &&
		len(r.ModifiedNotStaged) == 0 && len(r.DeletedNotStaged) == 0 && len(r.Untracked) == 0
}

// Compute builds the report for repo, comparing last-commit tree, index, and
// working tree per §4.I.
func Compute(repo *core.Repository) (*Report, error) {
	branch, err := repo.GetCurrentBranch()
	if err != nil {
		return nil, err
	}
	committed, err := objects.ReadBranchTree(repo, branch)
	if err != nil {
		return nil, err
	}
	idx, err := staging.LoadIndex(repo)
	if err != nil {
		return nil, err
	}
	tree, err := core.ScanWorkingTree(repo.Root)
	if err != nil {
		return nil, err
	}
	rules := core.LoadIgnoreRules(repo.Root)

	r := &Report{}

	remainingCommitted := make(map[string]objects.FileInfo, len(committed))
	for k, v := range committed {
		remainingCommitted[k] = v
	}

	// Staged: index vs last commit.
	for path, entry := range idx.Entries {
		if c, ok := remainingCommitted[path]; ok {
			if c.Hash != entry.Hash {
				r.StagedModified = append(r.StagedModified, path)
			}
			delete(remainingCommitted, path)
		} else {
			r.NewFiles = append(r.NewFiles, path)
		}
	}
	for path := range remainingCommitted {
		r.StagedDeleted = append(r.StagedDeleted, path)
	}

	// Unstaged: working tree vs index.
	seenInIndex := make(map[string]bool, len(idx.Entries))
	for path, fp := range tree.Entries {
		if core.IsIgnored(path, rules) {
			continue
		}
		entry, ok := idx.Entries[path]
		if !ok {
			r.Untracked = append(r.Untracked, path)
			continue
		}
		seenInIndex[path] = true
		if entry.Timestamp == fp.Timestamp {
			continue
		}
		actualHash, err := objects.HashFile(filepath.Join(repo.Root, core.FromSlash(path)))
		if err != nil {
			return nil, err
		}
		if actualHash != entry.Hash {
			r.ModifiedNotStaged = append(r.ModifiedNotStaged, path)
		}
	}
	for path := range idx.Entries {
		if !seenInIndex[path] {
			if _, stillOnDisk := tree.Entries[path]; !stillOnDisk {
				r.DeletedNotStaged = append(r.DeletedNotStaged, path)
			}
		}
	}

	return r, nil
}
