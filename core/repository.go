package core

import (
	"os"
	"path/filepath"
	"strings"
)

// Repository is the single handle threaded through every operation, rather
// than relying on implicit process-wide state (§9 "Global state" note).
type Repository struct {
	Root       string // repository working-tree root
	VecDir     string // <Root>/.my_svn
	ObjectsDir string // <Root>/.my_svn/objects
	RefsDir    string // <Root>/.my_svn/refs
	Relative   string // caller's starting path, relative to Root
}

// FindRepository locates the repository containing the current working
// directory (§4.A) and returns a ready-to-use handle.
func FindRepository() (*Repository, error) {
	wd, err := Getwd()
	if err != nil {
		return nil, FSError("failed to get current directory", err)
	}
	return FindRepositoryFrom(wd)
}

// FindRepositoryFrom locates the repository containing start.
func FindRepositoryFrom(start string) (*Repository, error) {
	loc, err := FindRepoRoot(start)
	if err != nil {
		return nil, err
	}
	return newRepository(loc.Root, loc.Relative), nil
}

func newRepository(root, relative string) *Repository {
	vecDir := filepath.Join(root, RepoDirName)
	return &Repository{
		Root:       root,
		VecDir:     vecDir,
		ObjectsDir: filepath.Join(vecDir, "objects"),
		RefsDir:    filepath.Join(vecDir, "refs"),
		Relative:   relative,
	}
}

// InitRepository creates a brand new repository rooted at dir: the metadata
// directory layout from §3, an empty index, and HEAD pointing at "main" with
// no commits yet (an empty refs/heads/main file).
func InitRepository(dir string) (*Repository, error) {
	vecDir := filepath.Join(dir, RepoDirName)
	if FileExists(vecDir) {
		return nil, AlreadyExistsError(ErrCategoryRepository, "repository at "+dir)
	}

	repo := newRepository(dir, "")

	for _, sub := range []string{
		repo.ObjectsDir,
		filepath.Join(repo.RefsDir, "heads"),
	} {
		if err := EnsureDirExists(sub); err != nil {
			return nil, err
		}
	}

	if err := os.WriteFile(filepath.Join(repo.RefsDir, "heads", "main"), []byte(""), 0644); err != nil {
		return nil, FSError("failed to create initial branch ref", err)
	}
	if err := os.WriteFile(filepath.Join(repo.VecDir, "HEAD"), []byte("main"), 0644); err != nil {
		return nil, FSError("failed to create HEAD file", err)
	}
	if err := WriteFileAtomic(filepath.Join(repo.VecDir, "index"), []byte("{}"), 0644); err != nil {
		return nil, FSError("failed to create initial index", err)
	}
	return repo, nil
}

// ReadHead returns the commit hash that the checked-out branch currently
// points to, or "" if that branch has no commits yet.
func (r *Repository) ReadHead() (string, error) {
	branch, err := r.GetCurrentBranch()
	if err != nil {
		return "", err
	}
	return r.ReadBranchHash(branch)
}

// GetCurrentBranch reads HEAD and returns the checked-out branch name.
// Spec §3: HEAD is a plain-text branch name; there is no detached-HEAD
// state.
func (r *Repository) GetCurrentBranch() (string, error) {
	content, err := ReadFileContent(filepath.Join(r.VecDir, "HEAD"))
	if err != nil {
		return "", RefError("failed to read HEAD", err)
	}
	return strings.TrimSpace(string(content)), nil
}

// SetCurrentBranch overwrites HEAD to point at branch.
func (r *Repository) SetCurrentBranch(branch string) error {
	if err := os.WriteFile(filepath.Join(r.VecDir, "HEAD"), []byte(branch), 0644); err != nil {
		return RefError("failed to update HEAD", err)
	}
	return nil
}

// ReadBranchHash reads the commit hash a branch ref points to ("" if the ref
// is empty). A branch with no ref file yields a not-found error.
func (r *Repository) ReadBranchHash(branch string) (string, error) {
	path := filepath.Join(r.RefsDir, "heads", branch)
	if !FileExists(path) {
		return "", NotFoundError(ErrCategoryRef, "branch '"+branch+"'")
	}
	content, err := ReadFileContent(path)
	if err != nil {
		return "", RefError("failed to read branch ref", err)
	}
	return strings.TrimSpace(string(content)), nil
}

// BranchExists reports whether refs/heads/<branch> exists.
func (r *Repository) BranchExists(branch string) bool {
	return FileExists(filepath.Join(r.RefsDir, "heads", branch))
}

// WriteRef overwrites a ref (relative to VecDir, e.g. "refs/heads/main")
// with a commit hash.
func (r *Repository) WriteRef(relRefPath, commitHash string) error {
	path := filepath.Join(r.VecDir, relRefPath)
	if err := EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(commitHash), 0644); err != nil {
		return RefError("failed to write ref "+relRefPath, err)
	}
	return nil
}
