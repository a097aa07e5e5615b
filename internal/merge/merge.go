// Package merge implements three-way merge with conflict detection (§4.L).
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/checkout"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
)

// ErrConflict is returned (as a plain, user-visible condition per §7) when a
// path cannot be reconciled automatically.
type ErrConflict struct {
	Path string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("fatal: Conflict at file %s!", e.Path)
}

// resolvePath applies the §4.L decision table to one path given its
// base/ours/theirs fingerprints (nil = absent). Returns the resolved
// fingerprint (nil = should end up absent) and whether it's a conflict.
func resolvePath(b, o, t *objects.FileInfo) (*objects.FileInfo, bool) {
	if b != nil {
		oEqualsB := o != nil && o.Hash == b.Hash
		tEqualsB := t != nil && t.Hash == b.Hash
		switch {
		case oEqualsB && tEqualsB:
			return o, false
		case oEqualsB && !tEqualsB:
			return t, false
		case !oEqualsB && tEqualsB:
			return o, false
		case o == nil && t == nil:
			return nil, false
		case o != nil && t != nil && o.Hash == t.Hash:
			return o, false
		default:
			return nil, true
		}
	}
	switch {
	case o != nil && t == nil:
		return o, false
	case o == nil && t != nil:
		return t, false
	case o != nil && t != nil && o.Hash == t.Hash:
		return o, false
	default:
		return nil, true
	}
}

// Merge merges branch into repo's current branch. On success it writes a
// two-parent merge commit and returns its hash. On conflict or uncommitted
// changes, it returns an error and leaves refs, index, working tree, and the
// object store untouched.
func Merge(repo *core.Repository, branch string) (string, error) {
	if !repo.BranchExists(branch) {
		return "", fmt.Errorf("fatal: A branch named '%s' does not exist.", branch)
	}
	current, err := repo.GetCurrentBranch()
	if err != nil {
		return "", err
	}
	if current == branch {
		return "", fmt.Errorf("fatal: You are already on branch '%s'.", current)
	}

	currentHash, err := repo.ReadBranchHash(current)
	if err != nil {
		return "", err
	}
	targetHash, err := repo.ReadBranchHash(branch)
	if err != nil {
		return "", err
	}

	ours, err := objects.ReadBranchTree(repo, current)
	if err != nil {
		return "", err
	}
	theirs, err := objects.ReadBranchTree(repo, branch)
	if err != nil {
		return "", err
	}

	base := map[string]objects.FileInfo{}
	if currentHash != "" && targetHash != "" {
		baseHash, found, err := objects.FindMergeBase(repo.Root, currentHash, targetHash)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("fatal: Could not find a common base commit for the merge.")
		}
		if baseHash != "" {
			base, err = objects.ReadCommitTree(repo.Root, baseHash)
			if err != nil {
				return "", err
			}
		}
	}

	wt, err := core.ScanWorkingTree(repo.Root)
	if err != nil {
		return "", err
	}

	paths := make(map[string]struct{})
	for p := range base {
		paths[p] = struct{}{}
	}
	for p := range ours {
		paths[p] = struct{}{}
	}
	for p := range theirs {
		paths[p] = struct{}{}
	}

	resolved := make(map[string]objects.FileInfo, len(ours))
	var toDelete []string
	var toWrite []string

	for path := range paths {
		var b, o, t *objects.FileInfo
		if v, ok := base[path]; ok {
			b = &v
		}
		if v, ok := ours[path]; ok {
			o = &v
		}
		if v, ok := theirs[path]; ok {
			t = &v
		}

		result, conflict := resolvePath(b, o, t)
		if conflict {
			return "", &ErrConflict{Path: path}
		}

		if fp, inW := wt.Entries[path]; inW {
			var known []objects.FileInfo
			if o != nil {
				known = append(known, *o)
			}
			if t != nil {
				known = append(known, *t)
			}
			actual, err := objects.ResolveActualHash(repo.Root, path, fp.Timestamp, known...)
			if err != nil {
				return "", err
			}
			wantsHash := ""
			if result != nil {
				wantsHash = result.Hash
			}
			if actual != wantsHash {
				oursHash := ""
				if o != nil {
					oursHash = o.Hash
				}
				if actual != oursHash {
					return "", &checkout.ErrUncommittedChanges{Path: path}
				}
			}
		}

		if result == nil {
			if o != nil {
				toDelete = append(toDelete, path)
			}
			continue
		}

		resolved[path] = *result
		if o == nil || o.Hash != result.Hash {
			toWrite = append(toWrite, path)
		}
	}

	for _, path := range toDelete {
		if err := os.Remove(filepath.Join(repo.Root, core.FromSlash(path))); err != nil && !os.IsNotExist(err) {
			return "", core.FSError("failed to remove "+path+" during merge", err)
		}
	}
	for _, path := range toWrite {
		info := resolved[path]
		dest := filepath.Join(repo.Root, core.FromSlash(path))
		if err := objects.CopyFileToWorkingTree(repo.Root, info.Hash, dest); err != nil {
			return "", err
		}
	}

	idx, err := staging.LoadIndex(repo)
	if err != nil {
		return "", err
	}
	idx.ReplaceWith(resolved)
	if err := idx.Write(); err != nil {
		return "", err
	}

	files := make(map[string]struct {
		Hash      string
		Timestamp int64
	}, len(resolved))
	for p, fi := range resolved {
		files[p] = struct {
			Hash      string
			Timestamp int64
		}{Hash: fi.Hash, Timestamp: fi.Timestamp}
	}
	treeHash, err := objects.BuildTreeFromPaths(repo.Root, files)
	if err != nil {
		return "", err
	}

	name, _ := core.GetConfigValue(repo.Root, "user.name")
	email, _ := core.GetConfigValue(repo.Root, "user.email")
	author := name
	if email != "" {
		author = fmt.Sprintf("%s <%s>", name, email)
	}

	parents := []string{currentHash, targetHash}
	commitHash, err := objects.CreateCommit(repo.Root, treeHash, parents, author,
		fmt.Sprintf("Merge branch %s", branch), time.Now().Unix())
	if err != nil {
		return "", err
	}

	if err := repo.WriteRef(filepath.Join("refs", "heads", current), commitHash); err != nil {
		return "", err
	}

	return commitHash, nil
}
