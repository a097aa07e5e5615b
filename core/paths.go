package core

import (
	"os"
	"path/filepath"
	"strings"
)

// RepoLocation is the result of locating a repository: the absolute
// filesystem root holding RepoDirName, and the caller's starting path
// relative to it.
type RepoLocation struct {
	Root     string
	Relative string
}

// FindRepoRoot implements §4.A: canonicalize start, then walk parent
// directories until one contains RepoDirName. Returns a NotFound error if the
// filesystem root is reached without finding one.
func FindRepoRoot(start string) (RepoLocation, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return RepoLocation{}, FSError("failed to resolve absolute path", err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return RepoLocation{}, FSError("failed to canonicalize path", err)
	}

	dir := abs
	for {
		if FileExists(filepath.Join(dir, RepoDirName)) {
			rel, err := filepath.Rel(dir, abs)
			if err != nil {
				return RepoLocation{}, FSError("failed to compute relative path", err)
			}
			if rel == "." {
				rel = ""
			}
			return RepoLocation{Root: dir, Relative: ToSlash(rel)}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return RepoLocation{}, NotFoundError(ErrCategoryRepository, "repository (or any of the parent directories): "+RepoDirName)
		}
		dir = parent
	}
}

// ToSlash normalizes a path to forward slashes for storage in index, tree,
// and commit payloads, so repositories are portable across platforms.
func ToSlash(p string) string {
	return filepath.ToSlash(p)
}

// FromSlash converts a stored forward-slash path back to the native
// separator for filesystem calls.
func FromSlash(p string) string {
	return filepath.FromSlash(p)
}

// RelativeToRoot expresses absPath relative to root, using forward slashes.
// Falls back to absPath unchanged if no relative path can be computed.
func RelativeToRoot(root, absPath string) string {
	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return ToSlash(absPath)
	}
	return ToSlash(rel)
}

// IsPathWithin reports whether target is base or a descendant of base.
func IsPathWithin(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// Getwd is a thin wrapper kept so commands can be exercised in tests without
// touching the real process working directory if ever needed.
var Getwd = os.Getwd
