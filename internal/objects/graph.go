package objects

import (
	"path"

	"github.com/NahomAnteneh/my-svn/core"
)

// FileInfo is the flat {hash, timestamp} pair carried by index entries,
// tree leaves, and commit-tree materializations.
type FileInfo struct {
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

// ReadCommitTree loads a commit by hash and recursively walks its tree,
// composing a flat repo-relative-path → FileInfo map (§4.G "read_commit").
func ReadCommitTree(repoRoot, commitHash string) (map[string]FileInfo, error) {
	commit, err := GetCommit(repoRoot, commitHash)
	if err != nil {
		return nil, err
	}
	result := make(map[string]FileInfo)
	if err := walkTree(repoRoot, commit.Tree, "", result); err != nil {
		return nil, err
	}
	return result, nil
}

// ReadBranchTree resolves a branch to its tip commit and materializes its
// tree. An empty tip (branch with no commits) yields an empty map.
func ReadBranchTree(repo *core.Repository, branch string) (map[string]FileInfo, error) {
	hash, err := repo.ReadBranchHash(branch)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return map[string]FileInfo{}, nil
	}
	return ReadCommitTree(repo.Root, hash)
}

func walkTree(repoRoot, treeHash, prefix string, out map[string]FileInfo) error {
	if treeHash == "" {
		return nil
	}
	entries, err := GetTree(repoRoot, treeHash)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		full := entry.Name
		if prefix != "" {
			full = path.Join(prefix, entry.Name)
		}
		switch entry.DataType {
		case TreeEntryFile:
			var ts int64
			if entry.Timestamp != nil {
				ts = *entry.Timestamp
			}
			out[full] = FileInfo{Hash: entry.Hash, Timestamp: ts}
		case TreeEntryFolder:
			if err := walkTree(repoRoot, entry.Hash, full, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindMergeBase computes the lowest common ancestor of c1 and c2 in the
// commit DAG (§4.G): BFS from c1 recording every visited ancestor, then BFS
// from c2 returning the first commit already in that set. Returns "", false
// if the histories are disjoint.
func FindMergeBase(repoRoot, c1, c2 string) (string, bool, error) {
	ancestorsOfC1, err := ancestorSet(repoRoot, c1)
	if err != nil {
		return "", false, err
	}

	visited := make(map[string]bool)
	queue := []string{c2}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == "" || visited[current] {
			continue
		}
		visited[current] = true
		if ancestorsOfC1[current] {
			return current, true, nil
		}
		commit, err := GetCommit(repoRoot, current)
		if err != nil {
			return "", false, err
		}
		queue = append(queue, commit.NormalizedParents()...)
	}
	return "", false, nil
}

func ancestorSet(repoRoot, start string) (map[string]bool, error) {
	visited := make(map[string]bool)
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == "" || visited[current] {
			continue
		}
		visited[current] = true
		commit, err := GetCommit(repoRoot, current)
		if err != nil {
			return nil, err
		}
		queue = append(queue, commit.NormalizedParents()...)
	}
	return visited, nil
}

// IsAncestor reports whether ancestor is potentialAncestor of descendant,
// including the case where they are the same commit. Used by branch delete
// to refuse discarding unmerged work.
func IsAncestor(repoRoot, ancestor, descendant string) (bool, error) {
	if ancestor == descendant {
		return true, nil
	}
	set, err := ancestorSet(repoRoot, descendant)
	if err != nil {
		return false, err
	}
	return set[ancestor], nil
}
