// Package checkout implements branch switching with the uncommitted-changes
// safety protocol (§4.K).
package checkout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
)

// ErrUncommittedChanges is returned (as a plain user-visible condition, not a
// structured error — §7 "Conflict / UncommittedChanges" exits successfully)
// when checkout would discard an edit.
type ErrUncommittedChanges struct {
	Path string
}

func (e *ErrUncommittedChanges) Error() string {
	return fmt.Sprintf("File %s has uncommitted changes. Cannot checkout!", e.Path)
}

// Checkout switches repo's working tree from its current branch to target,
// refusing (via ErrUncommittedChanges) if doing so would silently discard an
// edit. Returns nil on success.
func Checkout(repo *core.Repository, target string) error {
	if !repo.BranchExists(target) {
		return fmt.Errorf("fatal: A branch named '%s' does not exist.", target)
	}
	current, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}
	if current == target {
		return fmt.Errorf("You are already on branch '%s'.", target)
	}

	currentTree, err := objects.ReadBranchTree(repo, current)
	if err != nil {
		return err
	}
	targetTree, err := objects.ReadBranchTree(repo, target)
	if err != nil {
		return err
	}
	wt, err := core.ScanWorkingTree(repo.Root)
	if err != nil {
		return err
	}

	var toDelete, toWrite []string

	// Safety pass over every path tracked in the target tree.
	for path, tInfo := range targetTree {
		if cInfo, ok := currentTree[path]; ok && cInfo.Hash == tInfo.Hash {
			continue // no I/O needed
		}
		fp, inW := wt.Entries[path]
		if !inW {
			toWrite = append(toWrite, path)
			continue
		}
		cInfo, hasC := currentTree[path]
		actual, err := objects.ResolveActualHash(repo.Root, path, fp.Timestamp, tInfo, cInfo)
		if err != nil {
			return err
		}
		if actual == tInfo.Hash {
			continue // already matches target
		}
		if !hasC || actual != cInfo.Hash {
			return &ErrUncommittedChanges{Path: path}
		}
		toWrite = append(toWrite, path)
	}

	// Safety pass over paths tracked in current but absent from target.
	for path, cInfo := range currentTree {
		if _, inTarget := targetTree[path]; inTarget {
			continue
		}
		fp, inW := wt.Entries[path]
		if !inW {
			continue
		}
		actual, err := objects.ResolveActualHash(repo.Root, path, fp.Timestamp, cInfo)
		if err != nil {
			return err
		}
		if actual != cInfo.Hash {
			return &ErrUncommittedChanges{Path: path}
		}
		toDelete = append(toDelete, path)
	}

	// Apply pass: only reached once every path above has cleared safety.
	for _, path := range toDelete {
		if err := os.Remove(filepath.Join(repo.Root, core.FromSlash(path))); err != nil && !os.IsNotExist(err) {
			return core.FSError("failed to remove "+path, err)
		}
	}
	for _, path := range toWrite {
		info := targetTree[path]
		dest := filepath.Join(repo.Root, core.FromSlash(path))
		if err := objects.CopyFileToWorkingTree(repo.Root, info.Hash, dest); err != nil {
			return err
		}
	}

	if err := repo.SetCurrentBranch(target); err != nil {
		return err
	}

	idx, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}
	idx.ReplaceWith(targetTree)
	return idx.Write()
}
